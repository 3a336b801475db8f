package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// User is a person belonging to exactly one family.
type User struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	FirstName           string     `gorm:"type:varchar(100);not null" json:"firstname"`
	LastName            string     `gorm:"type:varchar(100);not null" json:"lastname"`
	Email               string     `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash        string     `gorm:"type:varchar(255);not null" json:"-"`
	Avatar              string     `gorm:"type:text" json:"avatar"`
	Role                string     `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	FamilyID            uuid.UUID  `gorm:"type:uuid;not null;index" json:"familyId"`
	Verified            bool       `gorm:"not null;default:false" json:"verified"`
	ResetTokenHash      string     `gorm:"type:varchar(64);index" json:"-"`
	ResetTokenExpiresAt *time.Time `json:"-"`
	CreatedAt           time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt           time.Time  `gorm:"not null" json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	return u.Validate()
}

func (u *User) BeforeUpdate(tx *gorm.DB) error {
	// Map-based updates carry an empty struct, nothing to validate.
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	return u.Validate()
}

func (u *User) Validate() error {
	if u.Email == "" {
		return errors.New("email is required")
	}

	if !emailRegex.MatchString(u.Email) {
		return errors.New("invalid email format")
	}

	if strings.TrimSpace(u.FirstName) == "" {
		return errors.New("first name is required")
	}

	if strings.TrimSpace(u.LastName) == "" {
		return errors.New("last name is required")
	}

	if !IsValidRole(u.Role) {
		return fmt.Errorf("invalid role: %s", u.Role)
	}

	if u.FamilyID == uuid.Nil {
		return errors.New("family is required")
	}

	return nil
}

func (u *User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// InFamily reports whether the user belongs to the given family.
func (u *User) InFamily(familyID uuid.UUID) bool {
	return u.FamilyID == familyID
}

// HasValidResetToken reports whether a reset token was issued and has not expired at now.
func (u *User) HasValidResetToken(now time.Time) bool {
	return u.ResetTokenHash != "" && u.ResetTokenExpiresAt != nil && now.Before(*u.ResetTokenExpiresAt)
}

func (u *User) TableName() string {
	return "users"
}

func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleMember
}

// NormalizeEmail lowercases and trims an address before it is stored or looked up.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
