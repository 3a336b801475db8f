package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"walletlink/internal/dto"
	"walletlink/internal/models"
	"walletlink/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrAdminRequired      = errors.New("admin role required")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrEmailTaken         = errors.New("email is already used by another user")
	ErrInvalidInvite      = errors.New("invalid or expired invitation")
	ErrAdminProtected     = errors.New("admin members cannot be deleted")
	ErrMemberOutsideScope = errors.New("member belongs to another family")
	ErrInvalidRole        = errors.New("invalid role")
)

type memberService struct {
	userRepo       repositories.UserRepositoryInterface
	invitationRepo repositories.InvitationRepositoryInterface
	tokenService   TokenServiceInterface
	passwords      PasswordServiceInterface
	mailer         MailerInterface
	auditService   AuditServiceInterface
	auditLogger    AuditLoggerInterface
	metrics        MetricsRecorderInterface
	clientURL      string
	inviteTTL      time.Duration
	now            func() time.Time
	logger         *slog.Logger
}

func NewMemberService(
	userRepo repositories.UserRepositoryInterface,
	invitationRepo repositories.InvitationRepositoryInterface,
	tokenService TokenServiceInterface,
	passwords PasswordServiceInterface,
	mailer MailerInterface,
	auditService AuditServiceInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	clientURL string,
	inviteTTL time.Duration,
	logger *slog.Logger,
) MemberServiceInterface {
	return &memberService{
		userRepo:       userRepo,
		invitationRepo: invitationRepo,
		tokenService:   tokenService,
		passwords:      passwords,
		mailer:         mailer,
		auditService:   auditService,
		auditLogger:    auditLogger,
		metrics:        metrics,
		clientURL:      strings.TrimRight(clientURL, "/"),
		inviteTTL:      inviteTTL,
		now:            time.Now,
		logger:         logger,
	}
}

// Invite persists a single-use invitation and mails its signed link
func (s *memberService) Invite(ctx context.Context, actor models.Actor, email, ipAddress, userAgent string) (*models.Invitation, error) {
	if err := s.requireAdmin(ctx, actor, "invite_member"); err != nil {
		return nil, err
	}

	email = models.NormalizeEmail(email)
	if err := s.ensureEmailFree(email); err != nil {
		return nil, err
	}

	invitation := &models.Invitation{
		Email:     email,
		FamilyID:  actor.FamilyID,
		InvitedBy: actor.UserID,
		ExpiresAt: s.now().Add(s.inviteTTL).UTC(),
	}
	if err := s.invitationRepo.Create(invitation); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}

	token, err := s.tokenService.GenerateInviteToken(invitation)
	if err != nil {
		return nil, fmt.Errorf("failed to sign invitation: %w", err)
	}

	link := s.clientURL + "/invite?token=" + url.QueryEscape(token)
	if err := s.mailer.SendInvitation(ctx, email, link, invitation.ExpiresAt); err != nil {
		return nil, fmt.Errorf("failed to send invitation: %w", err)
	}

	s.auditService.LogMemberInvited(actor, invitation, ipAddress, userAgent)
	s.metrics.IncrementCounter(MetricDomainWrite, map[string]string{"entity": "invitation", "operation": "create"})
	return invitation, nil
}

// AcceptInvite registers the invited person as a member of the inviting family. The
// invitation row is consumed in the same database transaction that creates the user.
func (s *memberService) AcceptInvite(token string, req *dto.AcceptInviteRequest, ipAddress, userAgent string) (*models.User, error) {
	claims, err := s.tokenService.ValidateInviteToken(token)
	if err != nil {
		return nil, ErrInvalidInvite
	}

	invitationID, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, ErrInvalidInvite
	}
	invitation, err := s.invitationRepo.GetByID(invitationID)
	if err != nil {
		if errors.Is(err, repositories.ErrInvitationNotFound) {
			return nil, ErrInvalidInvite
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	now := s.now()
	if invitation.Email != models.NormalizeEmail(claims.Email) ||
		invitation.FamilyID.String() != claims.FamilyID ||
		!invitation.Redeemable(now) {
		return nil, ErrInvalidInvite
	}

	if err := s.ensureEmailFree(invitation.Email); err != nil {
		return nil, err
	}

	hash, err := s.passwords.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	member := &models.User{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        invitation.Email,
		PasswordHash: hash,
		Role:         models.RoleMember,
		FamilyID:     invitation.FamilyID,
	}

	if err := s.invitationRepo.Redeem(invitation.ID, member, now); err != nil {
		switch {
		case errors.Is(err, repositories.ErrInvitationNotRedeemable):
			return nil, ErrInvalidInvite
		case errors.Is(err, repositories.ErrUserAlreadyExists):
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to accept invitation: %w", err)
	}

	s.auditService.LogMemberJoined(member, invitation.ID, ipAddress, userAgent)
	s.metrics.IncrementCounter(MetricDomainWrite, map[string]string{"entity": "member", "operation": "create"})

	if err := s.mailer.SendWelcome(context.Background(), member.Email, member.FirstName); err != nil {
		s.logger.Warn("failed to send welcome mail",
			"error", err,
			"user_id", member.ID)
	}

	return member, nil
}

// ListMembers returns the family, admins first
func (s *memberService) ListMembers(actor models.Actor) ([]*models.User, error) {
	if err := s.requireAdmin(context.Background(), actor, "list_members"); err != nil {
		return nil, err
	}

	members, err := s.userRepo.ListByFamily(actor.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	s.metrics.RecordGauge(MetricFamilyMembers, float64(len(members)), map[string]string{"family_id": actor.FamilyID.String()})
	return members, nil
}

func (s *memberService) GetMember(actor models.Actor, memberID uuid.UUID) (*models.User, error) {
	if err := s.requireAdmin(context.Background(), actor, "get_member"); err != nil {
		return nil, err
	}
	return s.familyMember(actor, memberID)
}

// UpdateMember edits a member's name, email or role
func (s *memberService) UpdateMember(actor models.Actor, memberID uuid.UUID, req *dto.UpdateMemberRequest, ipAddress, userAgent string) (*models.User, error) {
	if err := s.requireAdmin(context.Background(), actor, "update_member"); err != nil {
		return nil, err
	}
	member, err := s.familyMember(actor, memberID)
	if err != nil {
		return nil, err
	}

	changes := make(map[string]interface{})
	if req.FirstName != nil && strings.TrimSpace(*req.FirstName) != member.FirstName {
		changes["first_name"] = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil && strings.TrimSpace(*req.LastName) != member.LastName {
		changes["last_name"] = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		email := models.NormalizeEmail(*req.Email)
		if email != member.Email {
			if err := s.ensureEmailFreeExcept(email, member.ID); err != nil {
				return nil, err
			}
			changes["email"] = email
		}
	}
	if req.Role != nil && *req.Role != member.Role {
		if !models.IsValidRole(*req.Role) {
			return nil, ErrInvalidRole
		}
		changes["role"] = *req.Role
	}

	if len(changes) == 0 {
		return member, nil
	}

	if err := s.userRepo.UpdateFields(member.ID, changes); err != nil {
		switch {
		case errors.Is(err, repositories.ErrEmailAlreadyExists):
			return nil, ErrEmailTaken
		case errors.Is(err, repositories.ErrUserNotFound):
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	s.auditService.LogMemberUpdated(actor, member, changes, ipAddress, userAgent)
	return s.familyMember(actor, member.ID)
}

// DeleteMember removes a non-admin member together with their accounts, categories and
// transactions
func (s *memberService) DeleteMember(actor models.Actor, memberID uuid.UUID, ipAddress, userAgent string) error {
	if err := s.requireAdmin(context.Background(), actor, "delete_member"); err != nil {
		return err
	}
	member, err := s.familyMember(actor, memberID)
	if err != nil {
		return err
	}
	if member.IsAdmin() {
		return ErrAdminProtected
	}

	if err := s.userRepo.DeleteWithData(member.ID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("failed to delete member: %w", err)
	}

	s.auditService.LogMemberDeleted(actor, member, ipAddress, userAgent)
	s.metrics.IncrementCounter(MetricDomainWrite, map[string]string{"entity": "member", "operation": "delete"})
	return nil
}

// FamilyActivity pages through the family's audit trail, newest first
func (s *memberService) FamilyActivity(actor models.Actor, offset, limit int) ([]*models.AuditLog, int64, error) {
	if err := s.requireAdmin(context.Background(), actor, "family_activity"); err != nil {
		return nil, 0, err
	}
	return s.auditService.GetFamilyActivity(actor.FamilyID, offset, limit)
}

func (s *memberService) requireAdmin(ctx context.Context, actor models.Actor, operation string) error {
	if actor.IsAdmin() {
		return nil
	}
	s.auditLogger.LogAuthorizationFailure(ctx, operation, actor.UserID, models.RoleAdmin)
	return ErrAdminRequired
}

func (s *memberService) familyMember(actor models.Actor, memberID uuid.UUID) (*models.User, error) {
	member, err := s.userRepo.GetByID(memberID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if !member.InFamily(actor.FamilyID) {
		return nil, ErrMemberOutsideScope
	}
	return member, nil
}

func (s *memberService) ensureEmailFree(email string) error {
	existing, err := s.userRepo.GetByEmail(email)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return ErrUserAlreadyExists
	}
	return nil
}

func (s *memberService) ensureEmailFreeExcept(email string, userID uuid.UUID) error {
	existing, err := s.userRepo.GetByEmailExcluding(email, userID)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return ErrEmailTaken
	}
	return nil
}
