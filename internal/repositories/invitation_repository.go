package repositories

import (
	"errors"
	"fmt"
	"time"

	"walletlink/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvitationNotFound      = errors.New("invitation not found")
	ErrInvitationNotRedeemable = errors.New("invitation already used or expired")
)

type invitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) InvitationRepositoryInterface {
	return &invitationRepository{db: db}
}

func (r *invitationRepository) Create(invitation *models.Invitation) error {
	invitation.Email = models.NormalizeEmail(invitation.Email)
	if err := r.db.Create(invitation).Error; err != nil {
		return fmt.Errorf("failed to create invitation: %w", err)
	}
	return nil
}

func (r *invitationRepository) GetByID(id uuid.UUID) (*models.Invitation, error) {
	var invitation models.Invitation
	if err := r.db.Where("id = ?", id).First(&invitation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}
	return &invitation, nil
}

// Redeem marks the invitation accepted and creates the member in one transaction.
// The conditional update makes a second redemption of the same invitation fail.
func (r *invitationRepository) Redeem(invitationID uuid.UUID, member *models.User, now time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Invitation{}).
			Where("id = ? AND accepted_at IS NULL AND expires_at > ?", invitationID, now).
			Update("accepted_at", now)
		if result.Error != nil {
			return fmt.Errorf("failed to accept invitation: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrInvitationNotRedeemable
		}

		if err := tx.Create(member).Error; err != nil {
			if isDuplicateKeyError(err) {
				return ErrUserAlreadyExists
			}
			return fmt.Errorf("failed to create member: %w", err)
		}
		return nil
	})
}
