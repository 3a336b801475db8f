package services

import (
	"context"
	"mime/multipart"
	"time"

	"walletlink/internal/dto"
	"walletlink/internal/models"

	"github.com/google/uuid"
)

type TokenServiceInterface interface {
	GenerateSessionToken(user *models.User) (string, time.Time, error)
	ValidateSessionToken(tokenString string) (*models.SessionClaims, error)
	GenerateInviteToken(invitation *models.Invitation) (string, error)
	ValidateInviteToken(tokenString string) (*models.InviteClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
	GenerateResetToken() (token string, tokenHash string, err error)
	HashResetToken(token string) string
}

// AuthServiceInterface covers the caller's own identity: registration, sessions and profile
type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*dto.AuthResponse, error)
	Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.AuthResponse, error)
	Logout(token, ipAddress, userAgent string) error
	Me(userID uuid.UUID) (*models.User, error)
	UpdateProfile(userID uuid.UUID, req *dto.UpdateProfileRequest, ipAddress, userAgent string) (*models.User, error)
	UpdateAvatar(userID uuid.UUID, file *multipart.FileHeader) (*models.User, error)
	ChangePassword(userID uuid.UUID, req *dto.ChangePasswordRequest, ipAddress, userAgent string) error
	ForgotPassword(ctx context.Context, email, ipAddress, userAgent string) error
	ResetPassword(token, password, ipAddress, userAgent string) error
}

type AccountServiceInterface interface {
	CreateAccount(actor models.Actor, req *dto.CreateAccountRequest) (*models.AccountBalance, error)
	ListAccounts(actor models.Actor, memberID *uuid.UUID) ([]models.AccountBalance, error)
	GetAccount(actor models.Actor, accountID uuid.UUID) (*models.AccountBalance, error)
	UpdateAccount(actor models.Actor, accountID uuid.UUID, req *dto.UpdateAccountRequest) (*models.AccountBalance, error)
	DeleteAccount(actor models.Actor, accountID uuid.UUID) error
}

type CategoryServiceInterface interface {
	CreateCategory(actor models.Actor, req *dto.CreateCategoryRequest) (*models.Category, error)
	ListCategories(actor models.Actor) ([]models.Category, error)
	UpdateCategory(actor models.Actor, categoryID uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error)
	DeleteCategory(actor models.Actor, categoryID uuid.UUID) error
}

type TransactionServiceInterface interface {
	CreateTransaction(actor models.Actor, req *dto.CreateTransactionRequest) (*models.Transaction, error)
	ListTransactions(actor models.Actor, query dto.ListTransactionsQuery) ([]models.Transaction, dto.Pagination, error)
	GetTransaction(actor models.Actor, transactionID uuid.UUID) (*models.Transaction, error)
	UpdateTransaction(actor models.Actor, transactionID uuid.UUID, req *dto.UpdateTransactionRequest) (*models.Transaction, error)
	DeleteTransaction(actor models.Actor, transactionID uuid.UUID) error
}

// MemberServiceInterface manages the people of a family. Everything except
// AcceptInvite requires an admin caller.
type MemberServiceInterface interface {
	Invite(ctx context.Context, actor models.Actor, email, ipAddress, userAgent string) (*models.Invitation, error)
	AcceptInvite(token string, req *dto.AcceptInviteRequest, ipAddress, userAgent string) (*models.User, error)
	ListMembers(actor models.Actor) ([]*models.User, error)
	GetMember(actor models.Actor, memberID uuid.UUID) (*models.User, error)
	UpdateMember(actor models.Actor, memberID uuid.UUID, req *dto.UpdateMemberRequest, ipAddress, userAgent string) (*models.User, error)
	DeleteMember(actor models.Actor, memberID uuid.UUID, ipAddress, userAgent string) error
	FamilyActivity(actor models.Actor, offset, limit int) ([]*models.AuditLog, int64, error)
}

// DashboardServiceInterface serves the read-only aggregates. Admins see the whole
// family, members only their own data.
type DashboardServiceInterface interface {
	Summary(ctx context.Context, actor models.Actor, from, to *time.Time) (*models.DashboardSummary, error)
	Accounts(actor models.Actor) ([]models.AccountBalance, error)
	Members(actor models.Actor, from, to *time.Time) ([]models.MemberSummary, error)
	MonthlyIncomeExpense(actor models.Actor, now time.Time) ([]models.MonthlyIncomeExpense, error)
	LatestTransactions(actor models.Actor) ([]models.Transaction, error)
	CategoryBreakdown(actor models.Actor, from, to *time.Time) ([]models.CategoryBreakdown, error)
}

type CatalogServiceInterface interface {
	ListColors() ([]models.Color, error)
	ListIcons(iconType string) ([]models.Icon, error)
	GetColor(id uuid.UUID) (*models.Color, error)
	GetIcon(id uuid.UUID) (*models.Icon, error)
}

type MailerInterface interface {
	SendInvitation(ctx context.Context, email, link string, expiresAt time.Time) error
	SendPasswordReset(ctx context.Context, email, link string) error
	SendWelcome(ctx context.Context, email, firstName string) error
}

type AvatarStorageInterface interface {
	Save(userID uuid.UUID, file *multipart.FileHeader) (string, error)
	Remove(url string) error
}

// AuditServiceInterface persists the audit trail of auth and member events
type AuditServiceInterface interface {
	CreateAuditLog(log *models.AuditLog) error
	LogRegister(user *models.User, ipAddress, userAgent string)
	LogLogin(user *models.User, ipAddress, userAgent string)
	LogFailedLogin(email, ipAddress, userAgent, reason string)
	LogLogout(userID uuid.UUID, ipAddress, userAgent string)
	LogProfileUpdate(user *models.User, changes map[string]interface{}, ipAddress, userAgent string)
	LogPasswordUpdate(user *models.User, ipAddress, userAgent string)
	LogPasswordReset(user *models.User, ipAddress, userAgent string)
	LogMemberInvited(actor models.Actor, invitation *models.Invitation, ipAddress, userAgent string)
	LogMemberJoined(member *models.User, invitationID uuid.UUID, ipAddress, userAgent string)
	LogMemberUpdated(actor models.Actor, member *models.User, changes map[string]interface{}, ipAddress, userAgent string)
	LogMemberDeleted(actor models.Actor, member *models.User, ipAddress, userAgent string)
	CountFailedLogins(email string, since time.Time) (int64, error)
	GetFamilyActivity(familyID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
}

// AuditLoggerInterface writes structured security events to the process log
type AuditLoggerInterface interface {
	LogAuthEvent(ctx context.Context, event string, userID uuid.UUID, email string)
	LogAuthorizationFailure(ctx context.Context, operation string, userID uuid.UUID, requiredRole string)
	LogMailDispatched(ctx context.Context, kind, recipient string)
	LogMailFailed(ctx context.Context, kind, recipient, errorMsg string)
	LogDashboardComputed(ctx context.Context, familyID uuid.UUID, durationMs int64)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
