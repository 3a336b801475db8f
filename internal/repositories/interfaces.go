package repositories

import (
	"time"

	"walletlink/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByEmailExcluding(email string, excludeUserID uuid.UUID) (*models.User, error)
	GetByResetTokenHash(tokenHash string) (*models.User, error)
	ListByFamily(familyID uuid.UUID) ([]*models.User, error)
	Update(user *models.User) error
	UpdateFields(userID uuid.UUID, fields map[string]interface{}) error
	UpdatePasswordHash(userID uuid.UUID, passwordHash string) error
	DeleteWithData(userID uuid.UUID) error
}

// FamilyRepositoryInterface defines the contract for family repository operations
type FamilyRepositoryInterface interface {
	CreateWithAdmin(family *models.Family, admin *models.User) error
	GetByID(id uuid.UUID) (*models.Family, error)
}

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	ListByUser(userID uuid.UUID) ([]models.Account, error)
	ListByFamily(familyID uuid.UUID) ([]models.Account, error)
	Update(account *models.Account) error
	Delete(id uuid.UUID) error
}

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	Create(category *models.Category) error
	GetByID(id uuid.UUID) (*models.Category, error)
	ListVisible(userID, familyID uuid.UUID) ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id uuid.UUID) error
}

// TransactionRepositoryInterface defines the contract for transaction repository
// operations, including the aggregates behind balances and the dashboard
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	List(filters models.TransactionFilters, offset, limit int) ([]models.Transaction, int64, error)
	Update(transaction *models.Transaction) error
	Delete(id uuid.UUID) error
	CountByAccount(accountID uuid.UUID) (int64, error)
	CountByCategory(categoryID uuid.UUID) (int64, error)

	SumByAccount(accountIDs []uuid.UUID) (map[uuid.UUID]models.BalanceTotals, error)
	MemberTotals(filters models.TransactionFilters) ([]models.MemberSummary, error)
	MonthlyTotals(filters models.TransactionFilters) ([]models.MonthlyTotal, error)
	CategoryBreakdown(filters models.TransactionFilters) ([]models.CategoryBreakdown, error)
}

// CatalogRepositoryInterface reads the seeded icons and colors
type CatalogRepositoryInterface interface {
	ListColors() ([]models.Color, error)
	ListIcons(iconType string) ([]models.Icon, error)
	GetColorByID(id uuid.UUID) (*models.Color, error)
	GetIconByID(id uuid.UUID) (*models.Icon, error)
}

// InvitationRepositoryInterface defines the contract for invitation repository operations
type InvitationRepositoryInterface interface {
	Create(invitation *models.Invitation) error
	GetByID(id uuid.UUID) (*models.Invitation, error)
	Redeem(invitationID uuid.UUID, member *models.User, now time.Time) error
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByFamilyID(familyID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	CountActionsSince(action, email string, since time.Time) (int64, error)
	DeleteOlderThan(duration time.Duration) (int64, error)
}

// BlacklistedTokenRepositoryInterface defines the contract for blacklisted token repository operations
type BlacklistedTokenRepositoryInterface interface {
	Create(token *models.BlacklistedToken) error
	GetByJTI(jti string) (*models.BlacklistedToken, error)
}
