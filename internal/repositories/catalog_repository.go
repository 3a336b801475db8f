package repositories

import (
	"errors"
	"fmt"

	"walletlink/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrIconNotFound  = errors.New("icon not found")
	ErrColorNotFound = errors.New("color not found")
)

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepositoryInterface {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListColors() ([]models.Color, error) {
	var colors []models.Color
	if err := r.db.Order("name ASC").Find(&colors).Error; err != nil {
		return nil, fmt.Errorf("failed to list colors: %w", err)
	}
	return colors, nil
}

// ListIcons returns icons sorted by name; an empty iconType returns every icon
func (r *catalogRepository) ListIcons(iconType string) ([]models.Icon, error) {
	var icons []models.Icon

	query := r.db.Order("name ASC")
	if iconType != "" {
		query = query.Where("type = ?", iconType)
	}

	if err := query.Find(&icons).Error; err != nil {
		return nil, fmt.Errorf("failed to list icons: %w", err)
	}
	return icons, nil
}

func (r *catalogRepository) GetColorByID(id uuid.UUID) (*models.Color, error) {
	var color models.Color
	if err := r.db.Where("id = ?", id).First(&color).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrColorNotFound
		}
		return nil, fmt.Errorf("failed to get color: %w", err)
	}
	return &color, nil
}

func (r *catalogRepository) GetIconByID(id uuid.UUID) (*models.Icon, error) {
	var icon models.Icon
	if err := r.db.Where("id = ?", id).First(&icon).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIconNotFound
		}
		return nil, fmt.Errorf("failed to get icon: %w", err)
	}
	return &icon, nil
}
