package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"strings"
	"time"

	"walletlink/internal/dto"
	"walletlink/internal/models"
	"walletlink/internal/repositories"

	"github.com/google/uuid"
)

const (
	maxFailedLogins    = 5
	failedLoginsWindow = 15 * time.Minute
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
	ErrIncorrectPassword  = errors.New("current password is incorrect")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)

// AuthService handles registration, sessions and the caller's own profile
type AuthService struct {
	userRepo             repositories.UserRepositoryInterface
	familyRepo           repositories.FamilyRepositoryInterface
	blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface
	passwordService      PasswordServiceInterface
	tokenService         TokenServiceInterface
	auditService         AuditServiceInterface
	auditLogger          AuditLoggerInterface
	mailer               MailerInterface
	avatars              AvatarStorageInterface
	metrics              MetricsRecorderInterface
	clientURL            string
	resetTTL             time.Duration
	now                  func() time.Time
	logger               *slog.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	familyRepo repositories.FamilyRepositoryInterface,
	blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	auditService AuditServiceInterface,
	auditLogger AuditLoggerInterface,
	mailer MailerInterface,
	avatars AvatarStorageInterface,
	metrics MetricsRecorderInterface,
	clientURL string,
	resetTTL time.Duration,
	logger *slog.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:             userRepo,
		familyRepo:           familyRepo,
		blacklistedTokenRepo: blacklistedTokenRepo,
		passwordService:      passwordService,
		tokenService:         tokenService,
		auditService:         auditService,
		auditLogger:          auditLogger,
		mailer:               mailer,
		avatars:              avatars,
		metrics:              metrics,
		clientURL:            strings.TrimRight(clientURL, "/"),
		resetTTL:             resetTTL,
		now:                  time.Now,
		logger:               logger,
	}
}

// Register creates a new family with the registering user as its admin
func (s *AuthService) Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*dto.AuthResponse, error) {
	email := models.NormalizeEmail(req.Email)

	existingUser, err := s.userRepo.GetByEmail(email)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existingUser != nil {
		return nil, ErrUserAlreadyExists
	}

	if err := s.passwordService.ValidatePassword(req.Password); err != nil {
		return nil, err
	}
	hashedPassword, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         models.RoleAdmin,
	}
	family := &models.Family{Name: models.DefaultFamilyName(user.LastName)}

	if err := s.familyRepo.CreateWithAdmin(family, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	response, err := s.session(user)
	if err != nil {
		return nil, err
	}

	s.auditService.LogRegister(user, ipAddress, userAgent)
	s.auditLogger.LogAuthEvent(context.Background(), models.AuditActionRegister, user.ID, user.Email)
	s.metrics.IncrementCounter(MetricAuthEvent, map[string]string{"event_type": models.AuditActionRegister})

	if err := s.mailer.SendWelcome(context.Background(), user.Email, user.FirstName); err != nil {
		s.logger.Warn("failed to send welcome mail",
			"error", err,
			"user_id", user.ID)
	}

	return response, nil
}

// Login verifies the credentials and issues a session token. Repeated failures for
// the same email are throttled.
func (s *AuthService) Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.AuthResponse, error) {
	email := models.NormalizeEmail(req.Email)

	failures, err := s.auditService.CountFailedLogins(email, s.now().Add(-failedLoginsWindow))
	if err != nil {
		s.logger.Warn("failed to count failed logins",
			"error", err,
			"email", email)
	} else if failures >= maxFailedLogins {
		s.metrics.IncrementCounter(MetricAuthEvent, map[string]string{"event_type": "throttled"})
		return nil, ErrTooManyAttempts
	}

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.failedLogin(email, ipAddress, userAgent, "user_not_found")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		s.failedLogin(email, ipAddress, userAgent, "invalid_password")
		return nil, ErrInvalidCredentials
	}

	response, err := s.session(user)
	if err != nil {
		return nil, err
	}

	s.auditService.LogLogin(user, ipAddress, userAgent)
	s.auditLogger.LogAuthEvent(context.Background(), models.AuditActionLogin, user.ID, user.Email)
	s.metrics.IncrementCounter(MetricAuthEvent, map[string]string{"event_type": models.AuditActionLogin})

	return response, nil
}

// Logout revokes the session token until its natural expiry. Tokens that no longer
// validate are already unusable and are ignored.
func (s *AuthService) Logout(token, ipAddress, userAgent string) error {
	claims, err := s.tokenService.ValidateSessionToken(token)
	if err != nil {
		return nil
	}

	actor, err := claims.Actor()
	if err != nil {
		return nil
	}

	expiresAt := s.now()
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if err := s.blacklistedTokenRepo.Create(models.NewBlacklistedToken(claims.ID, actor.UserID, expiresAt)); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}

	s.auditService.LogLogout(actor.UserID, ipAddress, userAgent)
	s.metrics.IncrementCounter(MetricAuthEvent, map[string]string{"event_type": models.AuditActionLogout})
	return nil
}

func (s *AuthService) Me(userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// UpdateProfile changes the caller's name and email
func (s *AuthService) UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest, ipAddress, userAgent string) (*models.User, error) {
	user, err := s.Me(userID)
	if err != nil {
		return nil, err
	}

	changes := make(map[string]interface{})
	if firstName := strings.TrimSpace(req.FirstName); firstName != user.FirstName {
		changes["first_name"] = firstName
	}
	if lastName := strings.TrimSpace(req.LastName); lastName != user.LastName {
		changes["last_name"] = lastName
	}
	if email := models.NormalizeEmail(req.Email); email != user.Email {
		existing, err := s.userRepo.GetByEmailExcluding(email, user.ID)
		if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
			return nil, fmt.Errorf("failed to check existing user: %w", err)
		}
		if existing != nil {
			return nil, ErrEmailTaken
		}
		changes["email"] = email
	}

	if len(changes) == 0 {
		return user, nil
	}

	if err := s.userRepo.UpdateFields(user.ID, changes); err != nil {
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.auditService.LogProfileUpdate(user, changes, ipAddress, userAgent)
	return s.Me(user.ID)
}

// UpdateAvatar stores a new avatar image and drops the previous one
func (s *AuthService) UpdateAvatar(userID uuid.UUID, file *multipart.FileHeader) (*models.User, error) {
	user, err := s.Me(userID)
	if err != nil {
		return nil, err
	}

	avatarURL, err := s.avatars.Save(user.ID, file)
	if err != nil {
		return nil, err
	}

	changes := map[string]interface{}{"avatar": avatarURL}
	if err := s.userRepo.UpdateFields(user.ID, changes); err != nil {
		if removeErr := s.avatars.Remove(avatarURL); removeErr != nil {
			s.logger.Warn("failed to remove orphaned avatar", "error", removeErr, "url", avatarURL)
		}
		return nil, fmt.Errorf("failed to update avatar: %w", err)
	}

	if user.Avatar != "" {
		if err := s.avatars.Remove(user.Avatar); err != nil {
			s.logger.Warn("failed to remove previous avatar",
				"error", err,
				"user_id", user.ID,
				"url", user.Avatar)
		}
	}

	s.auditService.LogProfileUpdate(user, changes, "", "")
	user.Avatar = avatarURL
	return user, nil
}

// ChangePassword replaces the password after verifying the current one
func (s *AuthService) ChangePassword(userID uuid.UUID, req *dto.ChangePasswordRequest, ipAddress, userAgent string) error {
	user, err := s.Me(userID)
	if err != nil {
		return err
	}

	if !s.passwordService.ComparePassword(req.OldPassword, user.PasswordHash) {
		return ErrIncorrectPassword
	}

	if err := s.setPassword(user, req.NewPassword); err != nil {
		return err
	}

	s.auditService.LogPasswordUpdate(user, ipAddress, userAgent)
	return nil
}

// ForgotPassword mails a single-use reset link. Unknown emails are accepted silently
// so the endpoint does not reveal which addresses are registered.
func (s *AuthService) ForgotPassword(ctx context.Context, email, ipAddress, userAgent string) error {
	email = models.NormalizeEmail(email)

	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.logger.Info("password reset requested for unknown email", "ip_address", ipAddress)
			return nil
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	token, tokenHash, err := s.passwordService.GenerateResetToken()
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	expiresAt := s.now().Add(s.resetTTL)
	if err := s.userRepo.UpdateFields(user.ID, map[string]interface{}{
		"reset_token_hash":       tokenHash,
		"reset_token_expires_at": expiresAt,
	}); err != nil {
		return fmt.Errorf("failed to store reset token: %w", err)
	}

	link := s.clientURL + "/reset-password/" + token
	if err := s.mailer.SendPasswordReset(ctx, user.Email, link); err != nil {
		return fmt.Errorf("failed to send reset mail: %w", err)
	}

	s.auditLogger.LogAuthEvent(ctx, "password_reset_requested", user.ID, user.Email)
	return nil
}

// ResetPassword sets a new password using a token from ForgotPassword
func (s *AuthService) ResetPassword(token, password, ipAddress, userAgent string) error {
	if token == "" {
		return ErrInvalidResetToken
	}

	user, err := s.userRepo.GetByResetTokenHash(s.passwordService.HashResetToken(token))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrInvalidResetToken
		}
		return fmt.Errorf("failed to get user: %w", err)
	}
	if !user.HasValidResetToken(s.now()) {
		return ErrInvalidResetToken
	}

	if err := s.setPassword(user, password); err != nil {
		return err
	}

	s.auditService.LogPasswordReset(user, ipAddress, userAgent)
	s.metrics.IncrementCounter(MetricAuthEvent, map[string]string{"event_type": models.AuditActionPasswordReset})
	return nil
}

func (s *AuthService) setPassword(user *models.User, password string) error {
	if err := s.passwordService.ValidatePassword(password); err != nil {
		return err
	}
	hash, err := s.passwordService.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePasswordHash(user.ID, hash); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func (s *AuthService) session(user *models.User) (*dto.AuthResponse, error) {
	token, _, err := s.tokenService.GenerateSessionToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}
	return &dto.AuthResponse{User: dto.NewUserResponse(user), Token: token}, nil
}

func (s *AuthService) failedLogin(email, ipAddress, userAgent, reason string) {
	s.auditService.LogFailedLogin(email, ipAddress, userAgent, reason)
	s.auditLogger.LogAuthEvent(context.Background(), models.AuditActionFailedLogin, uuid.Nil, email)
	s.metrics.IncrementCounter(MetricAuthEvent, map[string]string{"event_type": models.AuditActionFailedLogin})
}
