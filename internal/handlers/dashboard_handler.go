package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"walletlink/internal/errors"
	"walletlink/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the read-only aggregates. Admins see the family, members themselves.
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardHandler(dashboardService services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Summary bundles every dashboard aggregate in one response
// @Summary Family dashboard
// @Tags Dashboard
// @Security CookieAuth
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD or RFC 3339)"
// @Param to query string false "End date (YYYY-MM-DD or RFC 3339)"
// @Success 200 {object} SuccessResponse{data=models.DashboardSummary}
// @Failure 403 {object} errors.ErrorResponse "AUTH_005"
// @Router /dashboard [get]
func (h *DashboardHandler) Summary(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	from, to, err := dateRange(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	summary, err := h.dashboardService.Summary(c.Request().Context(), actor, from, to)
	if err != nil {
		if stderrors.Is(err, services.ErrAdminRequired) {
			return SendError(c, errors.AuthInsufficientPermission)
		}
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Dashboard fetched successfully", summary)
}

// @Summary Accounts with balances
// @Tags Dashboard
// @Security CookieAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.AccountBalance}
// @Router /dashboard/account [get]
func (h *DashboardHandler) Accounts(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accounts, err := h.dashboardService.Accounts(actor)
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Accounts fetched successfully", accounts)
}

// @Summary Income and expense per member
// @Tags Dashboard
// @Security CookieAuth
// @Produce json
// @Param from query string false "Start date"
// @Param to query string false "End date"
// @Success 200 {object} SuccessResponse{data=[]models.MemberSummary}
// @Router /dashboard/members [get]
func (h *DashboardHandler) Members(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	from, to, err := dateRange(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	members, err := h.dashboardService.Members(actor, from, to)
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Members fetched successfully", members)
}

// MonthlyIncomeExpense returns the trailing six calendar months, oldest first
// @Summary Monthly income and expense
// @Tags Dashboard
// @Security CookieAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.MonthlyIncomeExpense}
// @Router /dashboard/monthly-income-expense [get]
func (h *DashboardHandler) MonthlyIncomeExpense(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	series, err := h.dashboardService.MonthlyIncomeExpense(actor, time.Now())
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Monthly income and expense fetched successfully", series)
}

// @Summary Latest transactions
// @Tags Dashboard
// @Security CookieAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.Transaction}
// @Router /dashboard/transactions [get]
func (h *DashboardHandler) LatestTransactions(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactions, err := h.dashboardService.LatestTransactions(actor)
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Transactions fetched successfully", transactions)
}

// @Summary Expenses by category
// @Tags Dashboard
// @Security CookieAuth
// @Produce json
// @Param from query string false "Start date"
// @Param to query string false "End date"
// @Success 200 {object} SuccessResponse{data=[]models.CategoryBreakdown}
// @Router /dashboard/category-breakdown [get]
func (h *DashboardHandler) CategoryBreakdown(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	from, to, err := dateRange(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	breakdown, err := h.dashboardService.CategoryBreakdown(actor, from, to)
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Category breakdown fetched successfully", breakdown)
}

func dateRange(c echo.Context) (*time.Time, *time.Time, error) {
	from, err := getDateQuery(c, "from", false)
	if err != nil {
		return nil, nil, err
	}
	to, err := getDateQuery(c, "to", true)
	if err != nil {
		return nil, nil, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, stderrors.New("to must not be before from")
	}
	return from, to, nil
}
