package repositories

import (
	"errors"
	"fmt"

	"walletlink/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrFamilyNotFound = errors.New("family not found")

type familyRepository struct {
	db *gorm.DB
}

func NewFamilyRepository(db *gorm.DB) FamilyRepositoryInterface {
	return &familyRepository{db: db}
}

// CreateWithAdmin stores a new family and its first admin atomically. The admin's
// ID is assigned up front so the family can reference it.
func (r *familyRepository) CreateWithAdmin(family *models.Family, admin *models.User) error {
	if family == nil || admin == nil {
		return errors.New("family and admin are required")
	}

	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}
	admin.Role = models.RoleAdmin
	family.AdminID = admin.ID

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(family).Error; err != nil {
			return fmt.Errorf("failed to create family: %w", err)
		}

		admin.FamilyID = family.ID
		if err := tx.Create(admin).Error; err != nil {
			if isDuplicateKeyError(err) {
				return ErrUserAlreadyExists
			}
			return fmt.Errorf("failed to create family admin: %w", err)
		}
		return nil
	})
}

func (r *familyRepository) GetByID(id uuid.UUID) (*models.Family, error) {
	var family models.Family
	if err := r.db.Where("id = ?", id).First(&family).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrFamilyNotFound
		}
		return nil, fmt.Errorf("failed to get family: %w", err)
	}
	return &family, nil
}
