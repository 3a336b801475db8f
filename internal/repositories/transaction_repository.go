package repositories

import (
	"errors"
	"fmt"

	"walletlink/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetByID loads a transaction with its user, account and category decorations
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.withDetails(r.db).Where("id = ?", id).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &transaction, nil
}

// List returns one page of matching transactions, newest first, and the total match count
func (r *transactionRepository) List(filters models.TransactionFilters, offset, limit int) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := applyFilters(r.db.Model(&models.Transaction{}), filters, "")

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	if err := r.withDetails(applyFilters(r.db, filters, "")).
		Order("datetime DESC").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	return transactions, total, nil
}

func (r *transactionRepository) Update(transaction *models.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return err
	}

	result := r.db.Model(&models.Transaction{}).Where("id = ?", transaction.ID).Updates(map[string]interface{}{
		"amount":      transaction.Amount,
		"type":        transaction.Type,
		"account_id":  transaction.AccountID,
		"category_id": transaction.CategoryID,
		"description": transaction.Description,
		"datetime":    transaction.Datetime,
		"attachments": transaction.Attachments,
		"updated_at":  r.db.NowFunc(),
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func (r *transactionRepository) Delete(id uuid.UUID) error {
	result := r.db.Where("id = ?", id).Delete(&models.Transaction{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func (r *transactionRepository) CountByAccount(accountID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).Where("account_id = ?", accountID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count account transactions: %w", err)
	}
	return count, nil
}

func (r *transactionRepository) CountByCategory(categoryID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count category transactions: %w", err)
	}
	return count, nil
}

// SumByAccount returns income and expense totals per account. Accounts without
// transactions are absent from the map.
func (r *transactionRepository) SumByAccount(accountIDs []uuid.UUID) (map[uuid.UUID]models.BalanceTotals, error) {
	totals := make(map[uuid.UUID]models.BalanceTotals, len(accountIDs))
	if len(accountIDs) == 0 {
		return totals, nil
	}

	var rows []models.BalanceTotals
	err := r.db.Model(&models.Transaction{}).
		Select("account_id, "+sumByType("")).
		Where("account_id IN ?", accountIDs).
		Group("account_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to sum account balances: %w", err)
	}

	for _, row := range rows {
		totals[row.AccountID] = row
	}
	return totals, nil
}

// MemberTotals returns every family member (or only filters.UserID) with their
// income and expense inside the filter's date range
func (r *transactionRepository) MemberTotals(filters models.TransactionFilters) ([]models.MemberSummary, error) {
	join := "LEFT JOIN transactions t ON t.user_id = users.id"
	var args []interface{}
	if filters.From != nil {
		join += " AND t.datetime >= ?"
		args = append(args, *filters.From)
	}
	if filters.To != nil {
		join += " AND t.datetime <= ?"
		args = append(args, *filters.To)
	}

	query := r.db.Table("users").
		Select("users.id, users.first_name, users.last_name, users.email, users.avatar, users.role, "+sumByType("t.")).
		Joins(join, args...).
		Where("users.family_id = ?", filters.FamilyID)
	if filters.UserID != nil {
		query = query.Where("users.id = ?", *filters.UserID)
	}

	var rows []models.MemberSummary
	err := query.
		Group("users.id, users.first_name, users.last_name, users.email, users.avatar, users.role").
		Order("users.first_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate member totals: %w", err)
	}
	return rows, nil
}

// MonthlyTotals buckets matching transactions by calendar month and type
func (r *transactionRepository) MonthlyTotals(filters models.TransactionFilters) ([]models.MonthlyTotal, error) {
	year, month := r.monthParts("datetime")

	var rows []models.MonthlyTotal
	err := applyFilters(r.db.Model(&models.Transaction{}), filters, "").
		Select(year + " AS year, " + month + " AS month, type, SUM(amount) AS total").
		Group("year, month, type").
		Order("year ASC, month ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate monthly totals: %w", err)
	}
	return rows, nil
}

// CategoryBreakdown sums expenses per category, largest first
func (r *transactionRepository) CategoryBreakdown(filters models.TransactionFilters) ([]models.CategoryBreakdown, error) {
	filters.Type = models.TransactionTypeExpense

	var rows []models.CategoryBreakdown
	err := applyFilters(r.db.Table("transactions t"), filters, "t.").
		Select("t.category_id, c.name AS category_name, SUM(t.amount) AS total_amount").
		Joins("JOIN categories c ON c.id = t.category_id").
		Group("t.category_id, c.name").
		Order("total_amount DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate category breakdown: %w", err)
	}
	return rows, nil
}

func (r *transactionRepository) withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Account.Icon").
		Preload("Account.Color").
		Preload("Category.Icon").
		Preload("Category.Color")
}

// monthParts returns SQL expressions extracting the year and month of a timestamp column.
func (r *transactionRepository) monthParts(column string) (string, string) {
	if r.db.Dialector.Name() == "sqlite" {
		return "CAST(strftime('%Y', " + column + ") AS INTEGER)", "CAST(strftime('%m', " + column + ") AS INTEGER)"
	}
	return "CAST(EXTRACT(YEAR FROM " + column + ") AS INTEGER)", "CAST(EXTRACT(MONTH FROM " + column + ") AS INTEGER)"
}

func applyFilters(query *gorm.DB, filters models.TransactionFilters, prefix string) *gorm.DB {
	query = query.Where(prefix+"family_id = ?", filters.FamilyID)

	if filters.UserID != nil {
		query = query.Where(prefix+"user_id = ?", *filters.UserID)
	}
	if filters.AccountID != nil {
		query = query.Where(prefix+"account_id = ?", *filters.AccountID)
	}
	if filters.From != nil {
		query = query.Where(prefix+"datetime >= ?", *filters.From)
	}
	if filters.To != nil {
		query = query.Where(prefix+"datetime <= ?", *filters.To)
	}
	if filters.Type != "" {
		query = query.Where(prefix+"type = ?", filters.Type)
	}
	return query
}

func sumByType(prefix string) string {
	return fmt.Sprintf(
		"COALESCE(SUM(CASE WHEN %[1]stype = '%[2]s' THEN %[1]samount ELSE 0 END), 0) AS income, "+
			"COALESCE(SUM(CASE WHEN %[1]stype = '%[3]s' THEN %[1]samount ELSE 0 END), 0) AS expense",
		prefix, models.TransactionTypeIncome, models.TransactionTypeExpense)
}
