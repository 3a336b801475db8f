package repositories

import (
	"errors"
	"fmt"

	"walletlink/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrAccountNotFound = errors.New("account not found")

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{
		db: db,
	}
}

func (r *accountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return r.db.Preload("Icon").Preload("Color").Where("id = ?", account.ID).First(account).Error
}

func (r *accountRepository) GetByID(id uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.withDecorations().Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

func (r *accountRepository) ListByUser(userID uuid.UUID) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.withDecorations().Where("user_id = ?", userID).Order("created_at DESC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (r *accountRepository) ListByFamily(familyID uuid.UUID) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.withDecorations().Preload("User").Where("family_id = ?", familyID).Order("created_at DESC").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list family accounts: %w", err)
	}
	return accounts, nil
}

func (r *accountRepository) Update(account *models.Account) error {
	result := r.db.Model(&models.Account{}).Where("id = ?", account.ID).Updates(map[string]interface{}{
		"name":            account.Name,
		"initial_balance": account.InitialBalance,
		"icon_id":         account.IconID,
		"color_id":        account.ColorID,
		"updated_at":      r.db.NowFunc(),
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *accountRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Account{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

func (r *accountRepository) withDecorations() *gorm.DB {
	return r.db.Preload("Icon").Preload("Color")
}
