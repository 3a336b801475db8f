package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"walletlink/internal/models"
	"walletlink/internal/repositories"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	monthlyWindow      = 6
	latestTransactions = 10
)

// dashboardService computes read-only aggregates. Admins see their whole family,
// members only their own data.
type dashboardService struct {
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	auditLogger     AuditLoggerInterface
	metrics         MetricsRecorderInterface
	now             func() time.Time
	logger          *slog.Logger
}

func NewDashboardService(
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	auditLogger AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) DashboardServiceInterface {
	return &dashboardService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		auditLogger:     auditLogger,
		metrics:         metrics,
		now:             time.Now,
		logger:          logger,
	}
}

// Summary gathers every family aggregate concurrently. Admin only.
func (s *dashboardService) Summary(ctx context.Context, actor models.Actor, from, to *time.Time) (*models.DashboardSummary, error) {
	if !actor.IsAdmin() {
		s.auditLogger.LogAuthorizationFailure(ctx, "dashboard_summary", actor.UserID, models.RoleAdmin)
		return nil, ErrAdminRequired
	}

	start := s.now()
	summary := &models.DashboardSummary{}

	g, gctx := errgroup.WithContext(ctx)
	section := func(compute func() error) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return compute()
		})
	}
	section(func() error {
		accounts, err := s.Accounts(actor)
		summary.Accounts = accounts
		return err
	})
	section(func() error {
		members, err := s.Members(actor, from, to)
		summary.Members = members
		return err
	})
	section(func() error {
		monthly, err := s.MonthlyIncomeExpense(actor, start)
		summary.MonthlyIncome = monthly
		return err
	})
	section(func() error {
		latest, err := s.LatestTransactions(actor)
		summary.RecentTransactions = latest
		return err
	})
	section(func() error {
		breakdown, err := s.CategoryBreakdown(actor, from, to)
		summary.CategoryBreakdown = breakdown
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary.TotalBalance = decimal.Zero
	summary.TotalIncome = decimal.Zero
	summary.TotalExpense = decimal.Zero
	for _, account := range summary.Accounts {
		summary.TotalBalance = summary.TotalBalance.Add(account.CurrentBalance)
	}
	for _, member := range summary.Members {
		summary.TotalIncome = summary.TotalIncome.Add(member.Income)
		summary.TotalExpense = summary.TotalExpense.Add(member.Expense)
	}

	elapsed := s.now().Sub(start)
	s.metrics.RecordProcessingTime(MetricDashboard, elapsed)
	s.auditLogger.LogDashboardComputed(ctx, actor.FamilyID, elapsed.Milliseconds())

	return summary, nil
}

// Accounts lists accounts with their current balance
func (s *dashboardService) Accounts(actor models.Actor) ([]models.AccountBalance, error) {
	var (
		accounts []models.Account
		err      error
	)
	if actor.IsAdmin() {
		accounts, err = s.accountRepo.ListByFamily(actor.FamilyID)
	} else {
		accounts, err = s.accountRepo.ListByUser(actor.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	return withBalances(s.transactionRepo, accounts)
}

// Members returns income and expense per member inside [from, to]
func (s *dashboardService) Members(actor models.Actor, from, to *time.Time) ([]models.MemberSummary, error) {
	filters := s.scope(actor)
	filters.From, filters.To = from, to

	members, err := s.transactionRepo.MemberTotals(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to compute member totals: %w", err)
	}
	return members, nil
}

// MonthlyIncomeExpense returns the trailing six calendar months ending with the month
// of now, oldest first. Months without transactions are reported as zero.
func (s *dashboardService) MonthlyIncomeExpense(actor models.Actor, now time.Time) ([]models.MonthlyIncomeExpense, error) {
	now = now.UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -(monthlyWindow - 1), 0)

	filters := s.scope(actor)
	filters.From = &first

	rows, err := s.transactionRepo.MonthlyTotals(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to compute monthly totals: %w", err)
	}

	return monthlySeries(first, monthlyWindow, rows), nil
}

// LatestTransactions returns the ten most recent transactions
func (s *dashboardService) LatestTransactions(actor models.Actor) ([]models.Transaction, error) {
	transactions, _, err := s.transactionRepo.List(s.scope(actor), 0, latestTransactions)
	if err != nil {
		return nil, fmt.Errorf("failed to list latest transactions: %w", err)
	}
	return transactions, nil
}

// CategoryBreakdown sums expenses per category inside [from, to], largest first
func (s *dashboardService) CategoryBreakdown(actor models.Actor, from, to *time.Time) ([]models.CategoryBreakdown, error) {
	filters := s.scope(actor)
	filters.From, filters.To = from, to

	breakdown, err := s.transactionRepo.CategoryBreakdown(filters)
	if err != nil {
		return nil, fmt.Errorf("failed to compute category breakdown: %w", err)
	}
	return breakdown, nil
}

func (s *dashboardService) scope(actor models.Actor) models.TransactionFilters {
	filters := models.TransactionFilters{FamilyID: actor.FamilyID}
	if !actor.IsAdmin() {
		userID := actor.UserID
		filters.UserID = &userID
	}
	return filters
}

// monthlySeries expands database buckets into a dense, ordered series of months
// labelled like "Jan 2025".
func monthlySeries(first time.Time, months int, rows []models.MonthlyTotal) []models.MonthlyIncomeExpense {
	type bucket struct{ year, month int }
	index := make(map[bucket]int, months)

	series := make([]models.MonthlyIncomeExpense, months)
	for i := 0; i < months; i++ {
		month := first.AddDate(0, i, 0)
		index[bucket{month.Year(), int(month.Month())}] = i
		series[i] = models.MonthlyIncomeExpense{
			Month:   month.Format("Jan 2006"),
			Income:  decimal.Zero,
			Expense: decimal.Zero,
		}
	}

	for _, row := range rows {
		i, ok := index[bucket{row.Year, row.Month}]
		if !ok {
			continue
		}
		switch row.Type {
		case models.TransactionTypeIncome:
			series[i].Income = series[i].Income.Add(row.Total)
		case models.TransactionTypeExpense:
			series[i].Expense = series[i].Expense.Add(row.Total)
		}
	}
	return series
}
