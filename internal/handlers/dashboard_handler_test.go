package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"walletlink/internal/models"
	"walletlink/internal/services"
	"walletlink/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardHandler(t *testing.T) (*DashboardHandler, *service_mocks.MockDashboardServiceInterface) {
	ctrl := gomock.NewController(t)
	service := service_mocks.NewMockDashboardServiceInterface(ctrl)
	return NewDashboardHandler(service), service
}

func TestDashboardSummary_ParsesDateRange(t *testing.T) {
	handler, service := newDashboardHandler(t)
	admin := adminActor()

	service.EXPECT().
		Summary(gomock.Any(), admin, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Actor, from, to *time.Time) (*models.DashboardSummary, error) {
			require.NotNil(t, from)
			require.NotNil(t, to)
			assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), *from)
			assert.Equal(t, 2025, to.Year())
			assert.Equal(t, time.January, to.Month())
			assert.Equal(t, 31, to.Day())
			assert.Equal(t, 23, to.Hour())
			return &models.DashboardSummary{TotalBalance: decimal.NewFromInt(100)}, nil
		})

	c, rec := newRequestContext(newTestEcho(), http.MethodGet, "/dashboard?from=2025-01-01&to=2025-01-31", nil, admin)

	require.NoError(t, handler.Summary(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDashboardSummary_RequiresAdmin(t *testing.T) {
	handler, service := newDashboardHandler(t)
	member := memberActor()

	service.EXPECT().Summary(gomock.Any(), member, nil, nil).Return(nil, services.ErrAdminRequired)

	c, rec := newRequestContext(newTestEcho(), http.MethodGet, "/dashboard", nil, member)

	require.NoError(t, handler.Summary(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDashboardMembers_InvalidDate(t *testing.T) {
	handler, _ := newDashboardHandler(t)

	c, rec := newRequestContext(newTestEcho(), http.MethodGet, "/dashboard/members?from=yesterday", nil, adminActor())

	require.NoError(t, handler.Members(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_005", decodeError(t, rec).Error.Code)
}

func TestDashboardCategoryBreakdown_InvertedRange(t *testing.T) {
	handler, _ := newDashboardHandler(t)

	c, rec := newRequestContext(newTestEcho(), http.MethodGet, "/dashboard/category-breakdown?from=2025-02-01&to=2025-01-01", nil, adminActor())

	require.NoError(t, handler.CategoryBreakdown(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardMonthlyIncomeExpense(t *testing.T) {
	handler, service := newDashboardHandler(t)
	member := memberActor()

	series := []models.MonthlyIncomeExpense{
		{Month: "2025-01", Income: decimal.NewFromInt(10), Expense: decimal.NewFromInt(4)},
		{Month: "2025-02", Income: decimal.Zero, Expense: decimal.Zero},
	}
	service.EXPECT().MonthlyIncomeExpense(member, gomock.Any()).Return(series, nil)

	c, rec := newRequestContext(newTestEcho(), http.MethodGet, "/dashboard/monthly-income-expense", nil, member)

	require.NoError(t, handler.MonthlyIncomeExpense(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var data []models.MonthlyIncomeExpense
	decodeSuccess(t, rec, &data)
	assert.Len(t, data, 2)
	assert.Equal(t, "2025-01", data[0].Month)
}

func TestDashboardAccountsAndTransactions(t *testing.T) {
	handler, service := newDashboardHandler(t)
	member := memberActor()

	service.EXPECT().Accounts(member).Return([]models.AccountBalance{}, nil)
	service.EXPECT().LatestTransactions(member).Return([]models.Transaction{}, nil)

	c, rec := newRequestContext(newTestEcho(), http.MethodGet, "/dashboard/account", nil, member)
	require.NoError(t, handler.Accounts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newRequestContext(newTestEcho(), http.MethodGet, "/dashboard/transactions", nil, member)
	require.NoError(t, handler.LatestTransactions(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDashboard_Unauthenticated(t *testing.T) {
	handler, _ := newDashboardHandler(t)

	c, rec := newRequestContext(newTestEcho(), http.MethodGet, "/dashboard/account", nil, models.Actor{})

	require.NoError(t, handler.Accounts(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
