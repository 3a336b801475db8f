package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"walletlink/internal/models"
	"walletlink/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidAuditLog = errors.New("invalid audit log")
)

// AuditService handles audit logging operations. The Log* helpers never fail the
// calling operation; write errors are reported to the process log.
type AuditService struct {
	repo   repositories.AuditLogRepositoryInterface
	logger *slog.Logger
}

func NewAuditService(repo repositories.AuditLogRepositoryInterface, logger *slog.Logger) AuditServiceInterface {
	return &AuditService{
		repo:   repo,
		logger: logger,
	}
}

// ValidateActivityType validates that the activity type is one of the allowed types
func ValidateActivityType(action string) error {
	validActions := map[string]bool{
		models.AuditActionRegister:        true,
		models.AuditActionLogin:           true,
		models.AuditActionFailedLogin:     true,
		models.AuditActionLogout:          true,
		models.AuditActionProfileUpdated:  true,
		models.AuditActionAvatarUpdated:   true,
		models.AuditActionPasswordUpdated: true,
		models.AuditActionPasswordReset:   true,
		models.AuditActionMemberInvited:   true,
		models.AuditActionMemberJoined:    true,
		models.AuditActionMemberUpdated:   true,
		models.AuditActionMemberDeleted:   true,
	}

	if !validActions[action] {
		return fmt.Errorf("invalid activity type: %s", action)
	}
	return nil
}

// CreateAuditLog creates a new audit log entry with validation
func (s *AuditService) CreateAuditLog(log *models.AuditLog) error {
	if log == nil {
		return ErrInvalidAuditLog
	}

	if err := ValidateActivityType(log.Action); err != nil {
		return err
	}

	if err := s.repo.Create(log); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}

	return nil
}

func (s *AuditService) LogRegister(user *models.User, ipAddress, userAgent string) {
	s.record(userEntry(user, models.AuditActionRegister, ipAddress, userAgent))
}

func (s *AuditService) LogLogin(user *models.User, ipAddress, userAgent string) {
	s.record(userEntry(user, models.AuditActionLogin, ipAddress, userAgent))
}

// LogFailedLogin records an anonymous attempt keyed by the normalized email, which is
// what CountFailedLogins looks up.
func (s *AuditService) LogFailedLogin(email, ipAddress, userAgent, reason string) {
	s.record(&models.AuditLog{
		Action:     models.AuditActionFailedLogin,
		Resource:   models.AuditResourceUser,
		ResourceID: models.NormalizeEmail(email),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Metadata:   models.JSONBMap{"reason": reason},
	})
}

func (s *AuditService) LogLogout(userID uuid.UUID, ipAddress, userAgent string) {
	s.record(&models.AuditLog{
		UserID:     &userID,
		Action:     models.AuditActionLogout,
		Resource:   models.AuditResourceUser,
		ResourceID: userID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	})
}

func (s *AuditService) LogProfileUpdate(user *models.User, changes map[string]interface{}, ipAddress, userAgent string) {
	action := models.AuditActionProfileUpdated
	if _, ok := changes["avatar"]; ok && len(changes) == 1 {
		action = models.AuditActionAvatarUpdated
	}
	entry := userEntry(user, action, ipAddress, userAgent)
	entry.SetMetadata("changes", changes)
	s.record(entry)
}

func (s *AuditService) LogPasswordUpdate(user *models.User, ipAddress, userAgent string) {
	s.record(userEntry(user, models.AuditActionPasswordUpdated, ipAddress, userAgent))
}

func (s *AuditService) LogPasswordReset(user *models.User, ipAddress, userAgent string) {
	s.record(userEntry(user, models.AuditActionPasswordReset, ipAddress, userAgent))
}

func (s *AuditService) LogMemberInvited(actor models.Actor, invitation *models.Invitation, ipAddress, userAgent string) {
	s.record(&models.AuditLog{
		UserID:     &actor.UserID,
		FamilyID:   &actor.FamilyID,
		Action:     models.AuditActionMemberInvited,
		Resource:   models.AuditResourceInvitation,
		ResourceID: invitation.ID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Metadata: models.JSONBMap{
			"email":      invitation.Email,
			"expires_at": invitation.ExpiresAt.UTC().Format(time.RFC3339),
		},
	})
}

func (s *AuditService) LogMemberJoined(member *models.User, invitationID uuid.UUID, ipAddress, userAgent string) {
	entry := userEntry(member, models.AuditActionMemberJoined, ipAddress, userAgent)
	entry.Resource = models.AuditResourceMember
	entry.SetMetadata("invitation_id", invitationID.String())
	s.record(entry)
}

func (s *AuditService) LogMemberUpdated(actor models.Actor, member *models.User, changes map[string]interface{}, ipAddress, userAgent string) {
	s.record(&models.AuditLog{
		UserID:     &actor.UserID,
		FamilyID:   &actor.FamilyID,
		Action:     models.AuditActionMemberUpdated,
		Resource:   models.AuditResourceMember,
		ResourceID: member.ID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Metadata:   models.JSONBMap{"changes": changes},
	})
}

func (s *AuditService) LogMemberDeleted(actor models.Actor, member *models.User, ipAddress, userAgent string) {
	s.record(&models.AuditLog{
		UserID:     &actor.UserID,
		FamilyID:   &actor.FamilyID,
		Action:     models.AuditActionMemberDeleted,
		Resource:   models.AuditResourceMember,
		ResourceID: member.ID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		Metadata:   models.JSONBMap{"email": member.Email},
	})
}

// CountFailedLogins returns the failed attempts recorded for email since the given instant
func (s *AuditService) CountFailedLogins(email string, since time.Time) (int64, error) {
	return s.repo.CountActionsSince(models.AuditActionFailedLogin, email, since)
}

func (s *AuditService) GetFamilyActivity(familyID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error) {
	if familyID == uuid.Nil {
		return nil, 0, errors.New("family ID is required")
	}
	return s.repo.GetByFamilyID(familyID, offset, limit)
}

func (s *AuditService) record(log *models.AuditLog) {
	if err := s.CreateAuditLog(log); err != nil {
		s.logger.Error("failed to create audit log",
			"error", err,
			"entry", log.String())
	}
}

func userEntry(user *models.User, action, ipAddress, userAgent string) *models.AuditLog {
	return &models.AuditLog{
		UserID:     &user.ID,
		FamilyID:   &user.FamilyID,
		Action:     action,
		Resource:   models.AuditResourceUser,
		ResourceID: user.ID.String(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	}
}
