package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invitation records an invite sent by a family admin. Its ID doubles as the jti of the
// signed invitation token, so a token can be redeemed once and only before ExpiresAt.
type Invitation struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Email      string     `gorm:"type:varchar(255);not null;index" json:"email"`
	FamilyID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"familyId"`
	InvitedBy  uuid.UUID  `gorm:"type:uuid;not null" json:"invitedBy"`
	ExpiresAt  time.Time  `gorm:"not null;index" json:"expiresAt"`
	AcceptedAt *time.Time `json:"acceptedAt,omitempty"`
	CreatedAt  time.Time  `gorm:"not null" json:"createdAt"`
}

func (i *Invitation) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.CreatedAt.IsZero() {
		i.CreatedAt = time.Now()
	}
	return nil
}

func (i *Invitation) IsExpired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}

func (i *Invitation) IsAccepted() bool {
	return i.AcceptedAt != nil
}

// Redeemable reports whether the invitation can still be used to join the family.
func (i *Invitation) Redeemable(now time.Time) bool {
	return !i.IsAccepted() && !i.IsExpired(now)
}

func (i *Invitation) TableName() string {
	return "invitations"
}
