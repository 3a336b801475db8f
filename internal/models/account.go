package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrAccountNameRequired = errors.New("account name is required")
	ErrAccountNameTooLong  = errors.New("account name must be at most 100 characters")
)

// Account is a money container owned by one user inside a family. Its current balance is
// never stored; see AccountBalance.
type Account struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name           string          `gorm:"type:varchar(100);not null" json:"name"`
	InitialBalance decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"initialBalance"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index" json:"userId"`
	FamilyID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"familyId"`
	IconID         uuid.UUID       `gorm:"type:uuid;not null" json:"iconId"`
	ColorID        uuid.UUID       `gorm:"type:uuid;not null" json:"colorId"`
	CreatedAt      time.Time       `gorm:"not null" json:"createdAt"`
	UpdatedAt      time.Time       `gorm:"not null" json:"updatedAt"`

	User  *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Icon  *Icon  `gorm:"foreignKey:IconID" json:"icon,omitempty"`
	Color *Color `gorm:"foreignKey:ColorID" json:"color,omitempty"`
}

func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

func (a *Account) Validate() error {
	name := strings.TrimSpace(a.Name)
	if name == "" {
		return ErrAccountNameRequired
	}
	if len(name) > 100 {
		return ErrAccountNameTooLong
	}
	return nil
}

// IsOwnedBy reports whether userID created the account.
func (a *Account) IsOwnedBy(userID uuid.UUID) bool {
	return a.UserID == userID
}

func (a *Account) TableName() string {
	return "accounts"
}
