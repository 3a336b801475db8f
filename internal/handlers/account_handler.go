package handlers

import (
	stderrors "errors"
	"net/http"

	"walletlink/internal/dto"
	"walletlink/internal/errors"
	"walletlink/internal/models"
	"walletlink/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountService services.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService services.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// CreateAccount creates an account owned by the caller
// @Summary Create an account
// @Tags Accounts
// @Security CookieAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Account"
// @Success 201 {object} SuccessResponse{data=models.AccountBalance}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001, CATALOG_001 or CATALOG_002"
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	account, err := h.accountService.CreateAccount(actor, &req)
	if err != nil {
		return h.sendAccountError(c, err)
	}

	return SendSuccess(c, http.StatusCreated, "Account created successfully", account)
}

// ListAccounts returns the caller's accounts, or a family member's for admins (?memberId=)
// @Summary List accounts with balances
// @Tags Accounts
// @Security CookieAuth
// @Produce json
// @Param memberId query string false "Member whose accounts to list (admin only)"
// @Success 200 {object} SuccessResponse{data=[]models.AccountBalance}
// @Failure 403 {object} errors.ErrorResponse "AUTH_005"
// @Failure 404 {object} errors.ErrorResponse "MEMBER_001"
// @Router /accounts [get]
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var memberID *uuid.UUID
	if raw := c.QueryParam("memberId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid member ID"))
		}
		memberID = &id
	}

	accounts, err := h.accountService.ListAccounts(actor, memberID)
	if err != nil {
		return h.sendAccountError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Accounts fetched successfully", accounts)
}

// @Summary Get an account
// @Tags Accounts
// @Security CookieAuth
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} SuccessResponse{data=models.AccountBalance}
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001"
// @Router /accounts/{id} [get]
func (h *AccountHandler) GetAccount(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	account, err := h.accountService.GetAccount(actor, accountID)
	if err != nil {
		return h.sendAccountError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Account fetched successfully", account)
}

// @Summary Update an account
// @Tags Accounts
// @Security CookieAuth
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body dto.UpdateAccountRequest true "Changes"
// @Success 200 {object} SuccessResponse{data=models.AccountBalance}
// @Failure 403 {object} errors.ErrorResponse "ACCOUNT_002"
// @Router /accounts/{id} [post]
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	var req dto.UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	account, err := h.accountService.UpdateAccount(actor, accountID, &req)
	if err != nil {
		return h.sendAccountError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Account updated successfully", account)
}

// @Summary Delete an account
// @Tags Accounts
// @Security CookieAuth
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} SuccessResponse
// @Failure 409 {object} errors.ErrorResponse "ACCOUNT_003"
// @Router /accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	if err := h.accountService.DeleteAccount(actor, accountID); err != nil {
		return h.sendAccountError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Account deleted successfully", nil)
}

func (h *AccountHandler) sendAccountError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrAccountNotFound):
		return SendError(c, errors.AccountNotFound)
	case stderrors.Is(err, services.ErrAccountNotOwned):
		return SendError(c, errors.AccountNotOwned)
	case stderrors.Is(err, services.ErrAccountHasTransactions):
		return SendError(c, errors.AccountHasTransactions)
	case stderrors.Is(err, services.ErrForbidden):
		return SendError(c, errors.AuthInsufficientPermission)
	case stderrors.Is(err, services.ErrMemberNotFound):
		return SendError(c, errors.MemberNotFound)
	case stderrors.Is(err, services.ErrIconNotFound):
		return SendError(c, errors.CatalogIconNotFound)
	case stderrors.Is(err, services.ErrColorNotFound):
		return SendError(c, errors.CatalogColorNotFound)
	case stderrors.Is(err, models.ErrAccountNameRequired), stderrors.Is(err, models.ErrAccountNameTooLong):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	return SendSystemError(c, err)
}
