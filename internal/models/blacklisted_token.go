package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlacklistedToken marks a session JWT revoked by logout until it would have expired anyway.
type BlacklistedToken struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	JTI           string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"jti"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	ExpiresAt     time.Time `gorm:"not null;index" json:"expiresAt"`
	BlacklistedAt time.Time `gorm:"not null" json:"blacklistedAt"`
}

func NewBlacklistedToken(jti string, userID uuid.UUID, expiresAt time.Time) *BlacklistedToken {
	return &BlacklistedToken{
		JTI:           jti,
		UserID:        userID,
		ExpiresAt:     expiresAt,
		BlacklistedAt: time.Now(),
	}
}

func (bt *BlacklistedToken) IsExpired() bool {
	return time.Now().After(bt.ExpiresAt)
}

func (bt *BlacklistedToken) TableName() string {
	return "blacklisted_tokens"
}

func (bt *BlacklistedToken) BeforeCreate(tx *gorm.DB) error {
	if bt.ID == uuid.Nil {
		bt.ID = uuid.New()
	}
	if bt.BlacklistedAt.IsZero() {
		bt.BlacklistedAt = time.Now()
	}
	return nil
}
