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
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidFilter       = errors.New("invalid filter value")
)

type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		categoryRepo:    categoryRepo,
		userRepo:        userRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// CreateTransaction records income or expense on one of the caller's own accounts.
// The category must be the caller's or shared within the family.
func (s *transactionService) CreateTransaction(actor models.Actor, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	account, err := s.accountFor(actor.UserID, actor.FamilyID, req.AccountID)
	if err != nil {
		return nil, err
	}
	category, err := s.categoryFor(actor.UserID, actor.FamilyID, req.CategoryID)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		Amount:      *req.Amount,
		Type:        req.Type,
		UserID:      actor.UserID,
		AccountID:   account.ID,
		FamilyID:    actor.FamilyID,
		CategoryID:  &category.ID,
		Description: strings.TrimSpace(req.Description),
		Datetime:    req.Datetime.UTC(),
		Attachments: models.StringList(req.Attachments),
	}

	if err := transaction.Validate(); err != nil {
		return nil, err
	}
	if err := s.transactionRepo.Create(transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.logger.Info("transaction created",
		"transaction_id", transaction.ID,
		"account_id", account.ID,
		"type", transaction.Type,
		"amount", transaction.Amount.String())
	s.metrics.IncrementCounter(MetricDomainWrite, map[string]string{"entity": "transaction", "operation": "create"})

	return s.load(actor, transaction.ID)
}

// ListTransactions returns one bounded page of a member's transactions, newest first.
// memberId defaults to the caller; only admins may ask for another member.
func (s *transactionService) ListTransactions(actor models.Actor, query dto.ListTransactionsQuery) ([]models.Transaction, dto.Pagination, error) {
	page := dto.NewPageRequest(query.Page, query.Limit)
	filters := models.TransactionFilters{FamilyID: actor.FamilyID}

	memberID := actor.UserID
	if query.MemberID != "" {
		id, err := uuid.Parse(query.MemberID)
		if err != nil {
			return nil, dto.Pagination{}, fmt.Errorf("%w: memberId", ErrInvalidFilter)
		}
		if id != actor.UserID {
			if !actor.IsAdmin() {
				return nil, dto.Pagination{}, ErrForbidden
			}
			member, err := s.userRepo.GetByID(id)
			if err != nil {
				if errors.Is(err, repositories.ErrUserNotFound) {
					return nil, dto.Pagination{}, ErrMemberNotFound
				}
				return nil, dto.Pagination{}, fmt.Errorf("failed to get member: %w", err)
			}
			if !member.InFamily(actor.FamilyID) {
				return nil, dto.Pagination{}, ErrMemberNotFound
			}
		}
		memberID = id
	}
	filters.UserID = &memberID

	if query.AccountID != "" {
		id, err := uuid.Parse(query.AccountID)
		if err != nil {
			return nil, dto.Pagination{}, fmt.Errorf("%w: accountId", ErrInvalidFilter)
		}
		filters.AccountID = &id
	}

	transactions, total, err := s.transactionRepo.List(filters, page.Offset(), page.Limit)
	if err != nil {
		return nil, dto.Pagination{}, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, dto.NewPagination(page, total), nil
}

func (s *transactionService) GetTransaction(actor models.Actor, transactionID uuid.UUID) (*models.Transaction, error) {
	return s.load(actor, transactionID)
}

// UpdateTransaction edits a transaction of the caller's family. A new account must
// belong to the transaction's owner and a new category must be visible to them.
func (s *transactionService) UpdateTransaction(actor models.Actor, transactionID uuid.UUID, req *dto.UpdateTransactionRequest) (*models.Transaction, error) {
	transaction, err := s.load(actor, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		transaction.Amount = *req.Amount
	}
	if req.Type != nil {
		transaction.Type = *req.Type
	}
	if req.AccountID != nil && *req.AccountID != transaction.AccountID {
		account, err := s.accountFor(transaction.UserID, transaction.FamilyID, *req.AccountID)
		if err != nil {
			return nil, err
		}
		transaction.AccountID = account.ID
	}
	if req.CategoryID != nil && (transaction.CategoryID == nil || *req.CategoryID != *transaction.CategoryID) {
		category, err := s.categoryFor(transaction.UserID, transaction.FamilyID, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		transaction.CategoryID = &category.ID
	}
	if req.Description != nil {
		transaction.Description = strings.TrimSpace(*req.Description)
	}
	if req.Datetime != nil {
		transaction.Datetime = req.Datetime.UTC()
	}
	if req.Attachments != nil {
		transaction.Attachments = models.StringList(req.Attachments)
	}

	if err := s.transactionRepo.Update(transaction); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		if errors.Is(err, models.ErrInvalidAmount) || errors.Is(err, models.ErrInvalidTransactionType) || errors.Is(err, models.ErrDescriptionTooLong) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.metrics.IncrementCounter(MetricDomainWrite, map[string]string{"entity": "transaction", "operation": "update"})
	return s.load(actor, transactionID)
}

// DeleteTransaction removes a transaction. Its owner or an admin of the same family may do so.
func (s *transactionService) DeleteTransaction(actor models.Actor, transactionID uuid.UUID) error {
	transaction, err := s.load(actor, transactionID)
	if err != nil {
		return err
	}
	if !transaction.IsOwnedBy(actor.UserID) && !actor.IsAdmin() {
		return ErrForbidden
	}

	if err := s.transactionRepo.Delete(transaction.ID); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return ErrTransactionNotFound
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.logger.Info("transaction deleted",
		"transaction_id", transaction.ID,
		"deleted_by", actor.UserID)
	s.metrics.IncrementCounter(MetricDomainWrite, map[string]string{"entity": "transaction", "operation": "delete"})
	return nil
}

// load fetches a transaction with its decorations, hiding other families' data
func (s *transactionService) load(actor models.Actor, transactionID uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(transactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if transaction.FamilyID != actor.FamilyID {
		return nil, ErrTransactionNotFound
	}
	return transaction, nil
}

func (s *transactionService) accountFor(ownerID, familyID, accountID uuid.UUID) (*models.Account, error) {
	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if account.FamilyID != familyID {
		return nil, ErrAccountNotFound
	}
	if !account.IsOwnedBy(ownerID) {
		return nil, ErrAccountNotOwned
	}
	return account, nil
}

func (s *transactionService) categoryFor(ownerID, familyID, categoryID uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if category.FamilyID != familyID {
		return nil, ErrCategoryNotFound
	}
	if !category.VisibleTo(ownerID, familyID) {
		return nil, ErrCategoryNotAccessible
	}
	return category, nil
}
