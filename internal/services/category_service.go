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
	ErrCategoryNotFound        = errors.New("category not found")
	ErrCategoryNotAccessible   = errors.New("category is not accessible")
	ErrCategoryHasTransactions = errors.New("category has related transactions")
)

type categoryService struct {
	categoryRepo    repositories.CategoryRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	catalog         CatalogServiceInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

func NewCategoryService(
	categoryRepo repositories.CategoryRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	catalog CatalogServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) CategoryServiceInterface {
	return &categoryService{
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		catalog:         catalog,
		metrics:         metrics,
		logger:          logger,
	}
}

func (s *categoryService) CreateCategory(actor models.Actor, req *dto.CreateCategoryRequest) (*models.Category, error) {
	icon, err := s.catalog.GetIcon(req.IconID)
	if err != nil {
		return nil, err
	}
	color, err := s.catalog.GetColor(req.ColorID)
	if err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:     strings.TrimSpace(req.Name),
		Shared:   req.Shared,
		UserID:   actor.UserID,
		FamilyID: actor.FamilyID,
		IconID:   icon.ID,
		ColorID:  color.ID,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	category.Icon = icon
	category.Color = color

	s.metrics.IncrementCounter(MetricDomainWrite, map[string]string{"entity": "category", "operation": "create"})
	return category, nil
}

// ListCategories returns the caller's own categories plus those shared in the family
func (s *categoryService) ListCategories(actor models.Actor) ([]models.Category, error) {
	categories, err := s.categoryRepo.ListVisible(actor.UserID, actor.FamilyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(actor models.Actor, categoryID uuid.UUID, req *dto.UpdateCategoryRequest) (*models.Category, error) {
	category, err := s.manageable(actor, categoryID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = strings.TrimSpace(*req.Name)
	}
	if req.Shared != nil {
		category.Shared = *req.Shared
	}
	if req.IconID != nil {
		icon, err := s.catalog.GetIcon(*req.IconID)
		if err != nil {
			return nil, err
		}
		category.IconID, category.Icon = icon.ID, icon
	}
	if req.ColorID != nil {
		color, err := s.catalog.GetColor(*req.ColorID)
		if err != nil {
			return nil, err
		}
		category.ColorID, category.Color = color.ID, color
	}

	if strings.TrimSpace(category.Name) == "" {
		return nil, models.ErrCategoryNameRequired
	}
	if err := s.categoryRepo.Update(category); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	s.metrics.IncrementCounter(MetricDomainWrite, map[string]string{"entity": "category", "operation": "update"})
	return category, nil
}

// DeleteCategory removes a category that no transaction references
func (s *categoryService) DeleteCategory(actor models.Actor, categoryID uuid.UUID) error {
	category, err := s.manageable(actor, categoryID)
	if err != nil {
		return err
	}

	count, err := s.transactionRepo.CountByCategory(category.ID)
	if err != nil {
		return fmt.Errorf("failed to count category transactions: %w", err)
	}
	if count > 0 {
		return ErrCategoryHasTransactions
	}

	if err := s.categoryRepo.Delete(category.ID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.logger.Info("category deleted",
		"category_id", category.ID,
		"deleted_by", actor.UserID)
	s.metrics.IncrementCounter(MetricDomainWrite, map[string]string{"entity": "category", "operation": "delete"})
	return nil
}

// manageable loads a category the actor may change: their own, or any category of
// their family, private ones included, when they are its admin. Other members' private
// categories are reported as missing to non-admins.
func (s *categoryService) manageable(actor models.Actor, categoryID uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	if category.FamilyID != actor.FamilyID {
		return nil, ErrCategoryNotFound
	}
	if category.IsOwnedBy(actor.UserID) {
		return category, nil
	}
	if actor.IsAdmin() {
		return category, nil
	}
	if category.VisibleTo(actor.UserID, actor.FamilyID) {
		return nil, ErrCategoryNotAccessible
	}
	return nil, ErrCategoryNotFound
}
