package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCategoryNameRequired = errors.New("category name is required")

// Category groups transactions. A shared category is visible to the whole family,
// a private one only to its owner.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Shared    bool      `gorm:"not null;default:false" json:"shared"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	FamilyID  uuid.UUID `gorm:"type:uuid;not null;index" json:"familyId"`
	IconID    uuid.UUID `gorm:"type:uuid;not null" json:"iconId"`
	ColorID   uuid.UUID `gorm:"type:uuid;not null" json:"colorId"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`

	User  *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Icon  *Icon  `gorm:"foreignKey:IconID" json:"icon,omitempty"`
	Color *Color `gorm:"foreignKey:ColorID" json:"color,omitempty"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	if strings.TrimSpace(c.Name) == "" {
		return ErrCategoryNameRequired
	}
	return nil
}

func (c *Category) IsOwnedBy(userID uuid.UUID) bool {
	return c.UserID == userID
}

// VisibleTo reports whether the category may be read or used by the given user.
func (c *Category) VisibleTo(userID, familyID uuid.UUID) bool {
	if c.UserID == userID {
		return true
	}
	return c.Shared && c.FamilyID == familyID
}

func (c *Category) TableName() string {
	return "categories"
}
