package services_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"walletlink/internal/models"
	"walletlink/internal/repositories/repository_mocks"
	"walletlink/internal/services"
	"walletlink/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	ctx             context.Context
	ctrl            *gomock.Controller
	accountRepo     *repository_mocks.MockAccountRepositoryInterface
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	auditLogger     *service_mocks.MockAuditLoggerInterface
	metrics         *service_mocks.MockMetricsRecorderInterface
	service         services.DashboardServiceInterface

	familyID uuid.UUID
	admin    models.Actor
	member   models.Actor
}

func TestDashboardServiceSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}

func (s *DashboardServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.accountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.auditLogger = service_mocks.NewMockAuditLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	s.service = services.NewDashboardService(s.accountRepo, s.transactionRepo, s.auditLogger, s.metrics, slog.Default())

	s.familyID = uuid.New()
	s.admin = models.Actor{UserID: uuid.New(), FamilyID: s.familyID, Role: models.RoleAdmin}
	s.member = models.Actor{UserID: uuid.New(), FamilyID: s.familyID, Role: models.RoleMember}
}

func (s *DashboardServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DashboardServiceTestSuite) TestAccounts_AdminSeesFamily() {
	account := models.Account{ID: uuid.New(), InitialBalance: decimal.NewFromInt(100), UserID: s.member.UserID, FamilyID: s.familyID}

	s.accountRepo.EXPECT().ListByFamily(s.familyID).Return([]models.Account{account}, nil)
	s.transactionRepo.EXPECT().SumByAccount([]uuid.UUID{account.ID}).Return(map[uuid.UUID]models.BalanceTotals{
		account.ID: {AccountID: account.ID, Income: decimal.NewFromInt(40), Expense: decimal.NewFromInt(15)},
	}, nil)

	balances, err := s.service.Accounts(s.admin)

	s.Require().NoError(err)
	s.Require().Len(balances, 1)
	s.True(balances[0].CurrentBalance.Equal(decimal.NewFromInt(125)))
}

func (s *DashboardServiceTestSuite) TestAccounts_MemberSeesOwn() {
	s.accountRepo.EXPECT().ListByUser(s.member.UserID).Return([]models.Account{}, nil)
	s.transactionRepo.EXPECT().SumByAccount([]uuid.UUID{}).Return(map[uuid.UUID]models.BalanceTotals{}, nil)

	balances, err := s.service.Accounts(s.member)

	s.NoError(err)
	s.Empty(balances)
}

func (s *DashboardServiceTestSuite) TestMembers_ScopesByRole() {
	from := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, time.January, 31, 23, 59, 59, 0, time.UTC)

	s.transactionRepo.EXPECT().MemberTotals(gomock.Any()).DoAndReturn(func(filters models.TransactionFilters) ([]models.MemberSummary, error) {
		s.Equal(s.familyID, filters.FamilyID)
		s.Require().NotNil(filters.UserID)
		s.Equal(s.member.UserID, *filters.UserID)
		s.Equal(&from, filters.From)
		s.Equal(&to, filters.To)
		return []models.MemberSummary{{ID: s.member.UserID}}, nil
	})

	members, err := s.service.Members(s.member, &from, &to)

	s.NoError(err)
	s.Len(members, 1)
}

func (s *DashboardServiceTestSuite) TestMonthlyIncomeExpense_ZeroFilledTrailingSixMonths() {
	now := time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

	s.transactionRepo.EXPECT().MonthlyTotals(gomock.Any()).DoAndReturn(func(filters models.TransactionFilters) ([]models.MonthlyTotal, error) {
		s.Nil(filters.UserID)
		s.Require().NotNil(filters.From)
		s.Equal(time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC), *filters.From)
		return []models.MonthlyTotal{
			{Year: 2024, Month: 12, Type: models.TransactionTypeIncome, Total: decimal.NewFromInt(1000)},
			{Year: 2024, Month: 12, Type: models.TransactionTypeExpense, Total: decimal.NewFromInt(300)},
			{Year: 2025, Month: 3, Type: models.TransactionTypeExpense, Total: decimal.NewFromFloat(12.5)},
		}, nil
	})

	series, err := s.service.MonthlyIncomeExpense(s.admin, now)

	s.Require().NoError(err)
	s.Require().Len(series, 6)

	labels := make([]string, 0, len(series))
	for _, point := range series {
		labels = append(labels, point.Month)
	}
	s.Equal([]string{"Oct 2024", "Nov 2024", "Dec 2024", "Jan 2025", "Feb 2025", "Mar 2025"}, labels)

	s.True(series[0].Income.IsZero())
	s.True(series[2].Income.Equal(decimal.NewFromInt(1000)))
	s.True(series[2].Expense.Equal(decimal.NewFromInt(300)))
	s.True(series[5].Expense.Equal(decimal.NewFromFloat(12.5)))
	s.True(series[5].Income.IsZero())
}

func (s *DashboardServiceTestSuite) TestMonthlyIncomeExpense_CrossesYearBoundary() {
	now := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

	s.transactionRepo.EXPECT().MonthlyTotals(gomock.Any()).Return(nil, nil)

	series, err := s.service.MonthlyIncomeExpense(s.member, now)

	s.Require().NoError(err)
	s.Equal("Sep 2024", series[0].Month)
	s.Equal("Feb 2025", series[5].Month)
}

func (s *DashboardServiceTestSuite) TestLatestTransactions() {
	s.transactionRepo.EXPECT().List(gomock.Any(), 0, 10).Return([]models.Transaction{{ID: uuid.New()}}, int64(1), nil)

	latest, err := s.service.LatestTransactions(s.admin)

	s.NoError(err)
	s.Len(latest, 1)
}

func (s *DashboardServiceTestSuite) TestCategoryBreakdown() {
	rows := []models.CategoryBreakdown{
		{CategoryID: uuid.New(), CategoryName: "Food", TotalAmount: decimal.NewFromInt(80)},
		{CategoryID: uuid.New(), CategoryName: "Fuel", TotalAmount: decimal.NewFromInt(20)},
	}
	s.transactionRepo.EXPECT().CategoryBreakdown(gomock.Any()).Return(rows, nil)

	breakdown, err := s.service.CategoryBreakdown(s.admin, nil, nil)

	s.NoError(err)
	s.Equal(rows, breakdown)
}

func (s *DashboardServiceTestSuite) TestSummary_RequiresAdmin() {
	s.auditLogger.EXPECT().LogAuthorizationFailure(s.ctx, "dashboard_summary", s.member.UserID, models.RoleAdmin)

	_, err := s.service.Summary(s.ctx, s.member, nil, nil)

	s.ErrorIs(err, services.ErrAdminRequired)
}

func (s *DashboardServiceTestSuite) TestSummary_AggregatesEverything() {
	account := models.Account{ID: uuid.New(), InitialBalance: decimal.NewFromInt(50), FamilyID: s.familyID}

	s.accountRepo.EXPECT().ListByFamily(s.familyID).Return([]models.Account{account}, nil)
	s.transactionRepo.EXPECT().SumByAccount(gomock.Any()).Return(map[uuid.UUID]models.BalanceTotals{
		account.ID: {AccountID: account.ID, Income: decimal.NewFromInt(200), Expense: decimal.NewFromInt(70)},
	}, nil)
	s.transactionRepo.EXPECT().MemberTotals(gomock.Any()).Return([]models.MemberSummary{
		{ID: s.admin.UserID, Income: decimal.NewFromInt(150), Expense: decimal.NewFromInt(20)},
		{ID: s.member.UserID, Income: decimal.NewFromInt(50), Expense: decimal.NewFromInt(50)},
	}, nil)
	s.transactionRepo.EXPECT().MonthlyTotals(gomock.Any()).Return(nil, nil)
	s.transactionRepo.EXPECT().List(gomock.Any(), 0, 10).Return(nil, int64(0), nil)
	s.transactionRepo.EXPECT().CategoryBreakdown(gomock.Any()).Return(nil, nil)
	s.metrics.EXPECT().RecordProcessingTime(services.MetricDashboard, gomock.Any())
	s.auditLogger.EXPECT().LogDashboardComputed(s.ctx, s.familyID, gomock.Any())

	summary, err := s.service.Summary(s.ctx, s.admin, nil, nil)

	s.Require().NoError(err)
	s.True(summary.TotalBalance.Equal(decimal.NewFromInt(180)))
	s.True(summary.TotalIncome.Equal(decimal.NewFromInt(200)))
	s.True(summary.TotalExpense.Equal(decimal.NewFromInt(70)))
	s.Len(summary.MonthlyIncome, 6)
}

func (s *DashboardServiceTestSuite) TestSummary_PropagatesFailure() {
	s.accountRepo.EXPECT().ListByFamily(s.familyID).Return(nil, errors.New("db down"))
	s.transactionRepo.EXPECT().SumByAccount(gomock.Any()).Return(map[uuid.UUID]models.BalanceTotals{}, nil).AnyTimes()
	s.transactionRepo.EXPECT().MemberTotals(gomock.Any()).Return(nil, nil).AnyTimes()
	s.transactionRepo.EXPECT().MonthlyTotals(gomock.Any()).Return(nil, nil).AnyTimes()
	s.transactionRepo.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, int64(0), nil).AnyTimes()
	s.transactionRepo.EXPECT().CategoryBreakdown(gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := s.service.Summary(s.ctx, s.admin, nil, nil)

	s.Error(err)
	s.Contains(err.Error(), "db down")
}

func (s *DashboardServiceTestSuite) TestSummary_CancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.service.Summary(ctx, s.admin, nil, nil)

	s.ErrorIs(err, context.Canceled)
}
