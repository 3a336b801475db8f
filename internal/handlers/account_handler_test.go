package handlers

import (
	"net/http"
	"testing"

	"walletlink/internal/dto"
	"walletlink/internal/models"
	"walletlink/internal/services"
	"walletlink/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// AccountHandlerSuite defines the test suite for AccountHandler
type AccountHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockAccountServiceInterface
	handler     *AccountHandler
	echo        *echo.Echo
	actor       models.Actor
}

func (s *AccountHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockAccountServiceInterface(s.ctrl)
	s.handler = NewAccountHandler(s.mockService)
	s.echo = newTestEcho()
	s.actor = memberActor()
}

func (s *AccountHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAccountHandlerSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerSuite))
}

func (s *AccountHandlerSuite) createRequest() dto.CreateAccountRequest {
	balance := decimal.NewFromInt(250)
	return dto.CreateAccountRequest{
		Name:           "Checking",
		InitialBalance: &balance,
		IconID:         uuid.New(),
		ColorID:        uuid.New(),
	}
}

func (s *AccountHandlerSuite) TestCreateAccount_Success() {
	body := s.createRequest()
	created := models.AccountBalance{
		Account: models.Account{ID: uuid.New(), Name: "Checking", InitialBalance: decimal.NewFromInt(250), UserID: s.actor.UserID},
		CurrentBalance: decimal.NewFromInt(250),
	}

	s.mockService.EXPECT().
		CreateAccount(s.actor, gomock.Any()).
		DoAndReturn(func(_ models.Actor, req *dto.CreateAccountRequest) (*models.AccountBalance, error) {
			s.Equal("Checking", req.Name)
			s.True(req.InitialBalance.Equal(decimal.NewFromInt(250)))
			return &created, nil
		})

	c, rec := newRequestContext(s.echo, http.MethodPost, "/accounts", body, s.actor)

	s.Require().NoError(s.handler.CreateAccount(c))
	s.Equal(http.StatusCreated, rec.Code)

	var data models.AccountBalance
	resp := decodeSuccess(s.T(), rec, &data)
	s.Equal(http.StatusCreated, resp.StatusCode)
	s.Equal(created.ID, data.ID)
}

func (s *AccountHandlerSuite) TestCreateAccount_ValidationErrorIsReturned() {
	body := s.createRequest()
	body.Name = "   "

	c, _ := newRequestContext(s.echo, http.MethodPost, "/accounts", body, s.actor)

	err := s.handler.CreateAccount(c)
	var validationErrors validator.ValidationErrors
	s.ErrorAs(err, &validationErrors)
}

func (s *AccountHandlerSuite) TestCreateAccount_UnknownIcon() {
	s.mockService.EXPECT().CreateAccount(s.actor, gomock.Any()).Return(nil, services.ErrIconNotFound)

	c, rec := newRequestContext(s.echo, http.MethodPost, "/accounts", s.createRequest(), s.actor)

	s.Require().NoError(s.handler.CreateAccount(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("CATALOG_001", decodeError(s.T(), rec).Error.Code)
}

func (s *AccountHandlerSuite) TestCreateAccount_Unauthenticated() {
	c, rec := newRequestContext(s.echo, http.MethodPost, "/accounts", s.createRequest(), models.Actor{})

	s.Require().NoError(s.handler.CreateAccount(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AccountHandlerSuite) TestListAccounts_ForMember() {
	admin := adminActor()
	memberID := uuid.New()

	s.mockService.EXPECT().
		ListAccounts(admin, &memberID).
		Return([]models.AccountBalance{{Account: models.Account{ID: uuid.New(), UserID: memberID}}}, nil)

	c, rec := newRequestContext(s.echo, http.MethodGet, "/accounts?memberId="+memberID.String(), nil, admin)

	s.Require().NoError(s.handler.ListAccounts(c))
	s.Equal(http.StatusOK, rec.Code)

	var data []models.AccountBalance
	decodeSuccess(s.T(), rec, &data)
	s.Len(data, 1)
}

func (s *AccountHandlerSuite) TestListAccounts_InvalidMemberID() {
	c, rec := newRequestContext(s.echo, http.MethodGet, "/accounts?memberId=nope", nil, s.actor)

	s.Require().NoError(s.handler.ListAccounts(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_003", decodeError(s.T(), rec).Error.Code)
}

func (s *AccountHandlerSuite) TestListAccounts_ForbiddenForMember() {
	memberID := uuid.New()
	s.mockService.EXPECT().ListAccounts(s.actor, &memberID).Return(nil, services.ErrForbidden)

	c, rec := newRequestContext(s.echo, http.MethodGet, "/accounts?memberId="+memberID.String(), nil, s.actor)

	s.Require().NoError(s.handler.ListAccounts(c))
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *AccountHandlerSuite) TestGetAccount_NotFound() {
	accountID := uuid.New()
	s.mockService.EXPECT().GetAccount(s.actor, accountID).Return(nil, services.ErrAccountNotFound)

	c, rec := newRequestContext(s.echo, http.MethodGet, "/accounts/"+accountID.String(), nil, s.actor)
	c.SetParamNames("id")
	c.SetParamValues(accountID.String())

	s.Require().NoError(s.handler.GetAccount(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("ACCOUNT_001", decodeError(s.T(), rec).Error.Code)
}

func (s *AccountHandlerSuite) TestGetAccount_InvalidID() {
	c, rec := newRequestContext(s.echo, http.MethodGet, "/accounts/abc", nil, s.actor)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	s.Require().NoError(s.handler.GetAccount(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *AccountHandlerSuite) TestUpdateAccount_NotOwned() {
	accountID := uuid.New()
	name := "Savings"
	s.mockService.EXPECT().UpdateAccount(s.actor, accountID, gomock.Any()).Return(nil, services.ErrAccountNotOwned)

	c, rec := newRequestContext(s.echo, http.MethodPost, "/accounts/"+accountID.String(), dto.UpdateAccountRequest{Name: &name}, s.actor)
	c.SetParamNames("id")
	c.SetParamValues(accountID.String())

	s.Require().NoError(s.handler.UpdateAccount(c))
	s.Equal(http.StatusForbidden, rec.Code)
	s.Equal("ACCOUNT_002", decodeError(s.T(), rec).Error.Code)
}

func (s *AccountHandlerSuite) TestDeleteAccount_HasTransactions() {
	accountID := uuid.New()
	s.mockService.EXPECT().DeleteAccount(s.actor, accountID).Return(services.ErrAccountHasTransactions)

	c, rec := newRequestContext(s.echo, http.MethodDelete, "/accounts/"+accountID.String(), nil, s.actor)
	c.SetParamNames("id")
	c.SetParamValues(accountID.String())

	s.Require().NoError(s.handler.DeleteAccount(c))
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("ACCOUNT_003", decodeError(s.T(), rec).Error.Code)
}

func (s *AccountHandlerSuite) TestDeleteAccount_Success() {
	accountID := uuid.New()
	s.mockService.EXPECT().DeleteAccount(s.actor, accountID).Return(nil)

	c, rec := newRequestContext(s.echo, http.MethodDelete, "/accounts/"+accountID.String(), nil, s.actor)
	c.SetParamNames("id")
	c.SetParamValues(accountID.String())

	s.Require().NoError(s.handler.DeleteAccount(c))
	s.Equal(http.StatusOK, rec.Code)
}
