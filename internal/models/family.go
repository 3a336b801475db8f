package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Family is the tenancy unit; every account, category and transaction carries its id.
type Family struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(150);not null" json:"name"`
	AdminID   uuid.UUID `gorm:"type:uuid;not null;index" json:"adminId"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (f *Family) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if strings.TrimSpace(f.Name) == "" {
		return errors.New("family name is required")
	}
	if f.AdminID == uuid.Nil {
		return errors.New("family admin is required")
	}
	return nil
}

func (f *Family) TableName() string {
	return "families"
}

// DefaultFamilyName names the family created together with its first admin.
func DefaultFamilyName(lastName string) string {
	return strings.TrimSpace(lastName) + "'s family"
}
