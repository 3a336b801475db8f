package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"walletlink/internal/dto"
	"walletlink/internal/models"
	"walletlink/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrMemberNotFound         = errors.New("member not found")
	ErrForbidden              = errors.New("operation not permitted")
	ErrAccountNotFound        = errors.New("account not found")
	ErrAccountNotOwned        = errors.New("account belongs to another user")
	ErrAccountHasTransactions = errors.New("account has related transactions")
)

// accountService implements AccountServiceInterface
type accountService struct {
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	catalog         CatalogServiceInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

func NewAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	catalog CatalogServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AccountServiceInterface {
	return &accountService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		catalog:         catalog,
		metrics:         metrics,
		logger:          logger,
	}
}

// CreateAccount opens an account for the caller. Icon and color must exist.
func (s *accountService) CreateAccount(actor models.Actor, req *dto.CreateAccountRequest) (*models.AccountBalance, error) {
	icon, color, err := s.decorations(req.IconID, req.ColorID)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Name:           strings.TrimSpace(req.Name),
		InitialBalance: *req.InitialBalance,
		UserID:         actor.UserID,
		FamilyID:       actor.FamilyID,
		IconID:         icon.ID,
		ColorID:        color.ID,
	}

	if err := s.accountRepo.Create(account); err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	account.Icon = icon
	account.Color = color

	s.logger.Info("account created",
		"account_id", account.ID,
		"user_id", actor.UserID)
	s.metrics.IncrementCounter(MetricDomainWrite, map[string]string{"entity": "account", "operation": "create"})

	balance := models.NewAccountBalance(*account, models.BalanceTotals{AccountID: account.ID})
	return &balance, nil
}

// ListAccounts returns the caller's accounts, or those of memberID. Only admins may
// look at another member, and only inside their own family.
func (s *accountService) ListAccounts(actor models.Actor, memberID *uuid.UUID) ([]models.AccountBalance, error) {
	ownerID := actor.UserID
	if memberID != nil && *memberID != actor.UserID {
		if !actor.IsAdmin() {
			return nil, ErrForbidden
		}
		member, err := s.userRepo.GetByID(*memberID)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return nil, ErrMemberNotFound
			}
			return nil, fmt.Errorf("failed to get member: %w", err)
		}
		if !member.InFamily(actor.FamilyID) {
			return nil, ErrMemberNotFound
		}
		ownerID = member.ID
	}

	accounts, err := s.accountRepo.ListByUser(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return withBalances(s.transactionRepo, accounts)
}

// GetAccount returns any account of the caller's family with its balance
func (s *accountService) GetAccount(actor models.Actor, accountID uuid.UUID) (*models.AccountBalance, error) {
	account, err := s.familyAccount(actor, accountID)
	if err != nil {
		return nil, err
	}

	balances, err := withBalances(s.transactionRepo, []models.Account{*account})
	if err != nil {
		return nil, err
	}
	return &balances[0], nil
}

// UpdateAccount edits an account. The owner or an admin of the same family may do so.
func (s *accountService) UpdateAccount(actor models.Actor, accountID uuid.UUID, req *dto.UpdateAccountRequest) (*models.AccountBalance, error) {
	account, err := s.familyAccount(actor, accountID)
	if err != nil {
		return nil, err
	}
	if !account.IsOwnedBy(actor.UserID) && !actor.IsAdmin() {
		return nil, ErrAccountNotOwned
	}

	if req.Name != nil {
		account.Name = strings.TrimSpace(*req.Name)
	}
	if req.InitialBalance != nil {
		account.InitialBalance = *req.InitialBalance
	}
	if req.IconID != nil || req.ColorID != nil {
		iconID, colorID := account.IconID, account.ColorID
		if req.IconID != nil {
			iconID = *req.IconID
		}
		if req.ColorID != nil {
			colorID = *req.ColorID
		}
		icon, color, err := s.decorations(iconID, colorID)
		if err != nil {
			return nil, err
		}
		account.IconID, account.Icon = icon.ID, icon
		account.ColorID, account.Color = color.ID, color
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}
	if err := s.accountRepo.Update(account); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	s.metrics.IncrementCounter(MetricDomainWrite, map[string]string{"entity": "account", "operation": "update"})
	return s.GetAccount(actor, accountID)
}

// DeleteAccount removes an account that no transaction references. The owner or an
// admin of the same family may delete it.
func (s *accountService) DeleteAccount(actor models.Actor, accountID uuid.UUID) error {
	account, err := s.familyAccount(actor, accountID)
	if err != nil {
		return err
	}
	if !account.IsOwnedBy(actor.UserID) && !actor.IsAdmin() {
		return ErrForbidden
	}

	count, err := s.transactionRepo.CountByAccount(account.ID)
	if err != nil {
		return fmt.Errorf("failed to count account transactions: %w", err)
	}
	if count > 0 {
		return ErrAccountHasTransactions
	}

	if err := s.accountRepo.Delete(account.ID); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return ErrAccountNotFound
		}
		return fmt.Errorf("failed to delete account: %w", err)
	}

	s.logger.Info("account deleted",
		"account_id", account.ID,
		"deleted_by", actor.UserID)
	s.metrics.IncrementCounter(MetricDomainWrite, map[string]string{"entity": "account", "operation": "delete"})
	return nil
}

// familyAccount loads an account and hides it from callers of other families
func (s *accountService) familyAccount(actor models.Actor, accountID uuid.UUID) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if account.FamilyID != actor.FamilyID {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

func (s *accountService) decorations(iconID, colorID uuid.UUID) (*models.Icon, *models.Color, error) {
	icon, err := s.catalog.GetIcon(iconID)
	if err != nil {
		return nil, nil, err
	}
	color, err := s.catalog.GetColor(colorID)
	if err != nil {
		return nil, nil, err
	}
	return icon, color, nil
}

// withBalances decorates accounts with their income, expense and current balance
// using a single aggregate query.
func withBalances(transactionRepo repositories.TransactionRepositoryInterface, accounts []models.Account) ([]models.AccountBalance, error) {
	ids := make([]uuid.UUID, 0, len(accounts))
	for _, account := range accounts {
		ids = append(ids, account.ID)
	}

	totals, err := transactionRepo.SumByAccount(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to compute balances: %w", err)
	}

	balances := make([]models.AccountBalance, 0, len(accounts))
	for _, account := range accounts {
		balances = append(balances, models.NewAccountBalance(account, totals[account.ID]))
	}
	return balances, nil
}
