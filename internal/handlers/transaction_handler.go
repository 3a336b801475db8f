package handlers

import (
	stderrors "errors"
	"net/http"

	"walletlink/internal/dto"
	"walletlink/internal/errors"
	"walletlink/internal/models"
	"walletlink/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// CreateTransaction records income or expense on one of the caller's accounts
// @Summary Create a transaction
// @Tags Transactions
// @Security CookieAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction"
// @Success 201 {object} SuccessResponse{data=models.Transaction}
// @Failure 403 {object} errors.ErrorResponse "ACCOUNT_002 or CATEGORY_002"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, err := h.transactionService.CreateTransaction(actor, &req)
	if err != nil {
		return sendTransactionError(c, err)
	}

	return SendSuccess(c, http.StatusCreated, "Transaction created successfully", transaction)
}

// ListTransactions returns a page of transactions, newest first
// @Summary List transactions
// @Tags Transactions
// @Security CookieAuth
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 10, max 100)"
// @Param memberId query string false "Member whose transactions to list (admin only)"
// @Param accountId query string false "Restrict to one account"
// @Success 200 {object} SuccessResponse{data=[]models.Transaction,pagination=dto.Pagination}
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	query := dto.ListTransactionsQuery{
		Page:      getIntParam(c, "page", 1),
		Limit:     getIntParam(c, "limit", dto.DefaultPageSize),
		AccountID: c.QueryParam("accountId"),
		MemberID:  c.QueryParam("memberId"),
	}

	transactions, pagination, err := h.transactionService.ListTransactions(actor, query)
	if err != nil {
		return sendTransactionError(c, err)
	}

	return SendPage(c, "Transactions fetched successfully", transactions, pagination)
}

// @Summary Get a transaction
// @Tags Transactions
// @Security CookieAuth
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} SuccessResponse{data=models.Transaction}
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	transaction, err := h.transactionService.GetTransaction(actor, transactionID)
	if err != nil {
		return sendTransactionError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Transaction fetched successfully", transaction)
}

// @Summary Update a transaction
// @Tags Transactions
// @Security CookieAuth
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body dto.UpdateTransactionRequest true "Changes"
// @Success 200 {object} SuccessResponse{data=models.Transaction}
// @Router /transactions/{id} [post]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, err := h.transactionService.UpdateTransaction(actor, transactionID, &req)
	if err != nil {
		return sendTransactionError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Transaction updated successfully", transaction)
}

// @Summary Delete a transaction
// @Tags Transactions
// @Security CookieAuth
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} errors.ErrorResponse "AUTH_005"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	if err := h.transactionService.DeleteTransaction(actor, transactionID); err != nil {
		return sendTransactionError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Transaction deleted successfully", nil)
}

func sendTransactionError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrTransactionNotFound):
		return SendError(c, errors.TransactionNotFound)
	case stderrors.Is(err, services.ErrInvalidFilter):
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrForbidden):
		return SendError(c, errors.AuthInsufficientPermission)
	case stderrors.Is(err, services.ErrMemberNotFound):
		return SendError(c, errors.MemberNotFound)
	case stderrors.Is(err, services.ErrAccountNotFound):
		return SendError(c, errors.AccountNotFound)
	case stderrors.Is(err, services.ErrAccountNotOwned):
		return SendError(c, errors.AccountNotOwned)
	case stderrors.Is(err, services.ErrCategoryNotFound):
		return SendError(c, errors.CategoryNotFound)
	case stderrors.Is(err, services.ErrCategoryNotAccessible):
		return SendError(c, errors.CategoryNotAccessible)
	case stderrors.Is(err, models.ErrInvalidAmount):
		return SendError(c, errors.TransactionInvalidAmount)
	case stderrors.Is(err, models.ErrInvalidTransactionType):
		return SendError(c, errors.TransactionInvalidType)
	case stderrors.Is(err, models.ErrDescriptionTooLong):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	return SendSystemError(c, err)
}
