package middleware

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"walletlink/internal/config"
	"walletlink/internal/errors"
	"walletlink/internal/handlers"
	"walletlink/internal/models"
	"walletlink/internal/repositories"
	"walletlink/internal/repositories/repository_mocks"
	"walletlink/internal/services"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	ctrl                     *gomock.Controller
	tokenService             services.TokenServiceInterface
	mockBlacklistedTokenRepo *repository_mocks.MockBlacklistedTokenRepositoryInterface
	mockUserRepo             *repository_mocks.MockUserRepositoryInterface
	e                        *echo.Echo
	user                     *models.User
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tokenService = s.createTokenService(24 * time.Hour)
	s.mockBlacklistedTokenRepo = repository_mocks.NewMockBlacklistedTokenRepositoryInterface(s.ctrl)
	s.mockUserRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.e = echo.New()
	s.user = &models.User{
		ID:       uuid.New(),
		Email:    "test@example.com",
		Role:     models.RoleMember,
		FamilyID: uuid.New(),
	}
}

func (s *AuthMiddlewareSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthMiddlewareSuite) createTokenService(sessionDuration time.Duration) services.TokenServiceInterface {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	return services.NewTokenService(&config.JWTConfig{
		PrivateKey:      privateKey,
		PublicKey:       publicKey,
		Issuer:          "test-issuer",
		SessionDuration: sessionDuration,
		InviteDuration:  48 * time.Hour,
	})
}

func (s *AuthMiddlewareSuite) sessionToken() string {
	token, _, err := s.tokenService.GenerateSessionToken(s.user)
	s.Require().NoError(err)
	return token
}

func (s *AuthMiddlewareSuite) requireAuth() echo.MiddlewareFunc {
	return RequireAuth(s.tokenService, s.mockBlacklistedTokenRepo, s.mockUserRepo, "token")
}

func (s *AuthMiddlewareSuite) run(mw echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, *models.Actor) {
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	var seen *models.Actor
	handler := mw(func(c echo.Context) error {
		if actor, ok := c.Get(handlers.ActorContextKey).(models.Actor); ok {
			seen = &actor
		}
		return c.String(http.StatusOK, "ok")
	})

	s.Require().NoError(handler(c))
	return rec, seen
}

func (s *AuthMiddlewareSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var resp errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func (s *AuthMiddlewareSuite) TestRequireAuth_BearerToken() {
	s.mockBlacklistedTokenRepo.EXPECT().GetByJTI(gomock.Any()).Return(nil, repositories.ErrTokenNotFound)
	s.mockUserRepo.EXPECT().GetByID(s.user.ID).Return(s.user, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+s.sessionToken())

	rec, actor := s.run(s.requireAuth(), req)

	s.Equal(http.StatusOK, rec.Code)
	s.Require().NotNil(actor)
	s.Equal(s.user.ID, actor.UserID)
	s.Equal(s.user.FamilyID, actor.FamilyID)
	s.Equal(models.RoleMember, actor.Role)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_Cookie() {
	s.mockBlacklistedTokenRepo.EXPECT().GetByJTI(gomock.Any()).Return(nil, repositories.ErrTokenNotFound)
	s.mockUserRepo.EXPECT().GetByID(s.user.ID).Return(s.user, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: s.sessionToken()})

	rec, actor := s.run(s.requireAuth(), req)

	s.Equal(http.StatusOK, rec.Code)
	s.Require().NotNil(actor)
	s.Equal(s.user.ID, actor.UserID)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingToken() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	rec, actor := s.run(s.requireAuth(), req)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Nil(actor)
	s.Equal(string(errors.AuthMissingToken), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MalformedHeader() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Token abc")

	rec, _ := s.run(s.requireAuth(), req)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthInvalidTokenFormat), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_GarbageToken() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: "not.a.jwt"})

	rec, _ := s.run(s.requireAuth(), req)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthInvalidTokenFormat), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	s.tokenService = s.createTokenService(-time.Minute)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+s.sessionToken())

	rec, _ := s.run(s.requireAuth(), req)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(errors.AuthExpiredToken), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_TokenFromOtherIssuerKey() {
	other := s.createTokenService(time.Hour)
	token, _, err := other.GenerateSessionToken(s.user)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)

	rec, _ := s.run(s.requireAuth(), req)

	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_RevokedToken() {
	s.mockBlacklistedTokenRepo.EXPECT().
		GetByJTI(gomock.Any()).
		Return(&models.BlacklistedToken{JTI: "revoked", UserID: s.user.ID}, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+s.sessionToken())

	rec, actor := s.run(s.requireAuth(), req)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Nil(actor)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_UsesStoredRoleAfterDemotion() {
	s.user.Role = models.RoleAdmin
	token := s.sessionToken()

	demoted := *s.user
	demoted.Role = models.RoleMember
	s.mockBlacklistedTokenRepo.EXPECT().GetByJTI(gomock.Any()).Return(nil, repositories.ErrTokenNotFound).Times(2)
	s.mockUserRepo.EXPECT().GetByID(s.user.ID).Return(&demoted, nil).Times(2)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	rec, actor := s.run(s.requireAuth(), req)

	s.Equal(http.StatusOK, rec.Code)
	s.Require().NotNil(actor)
	s.Equal(models.RoleMember, actor.Role)

	req = httptest.NewRequest(http.MethodDelete, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	rec = httptest.NewRecorder()
	handler := s.requireAuth()(RequireAdmin()(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	}))
	s.Require().NoError(handler(s.e.NewContext(req, rec)))

	s.Equal(http.StatusForbidden, rec.Code)
	s.Equal(string(errors.AuthInsufficientPermission), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_UsesStoredFamily() {
	moved := *s.user
	moved.FamilyID = uuid.New()
	s.mockBlacklistedTokenRepo.EXPECT().GetByJTI(gomock.Any()).Return(nil, repositories.ErrTokenNotFound)
	s.mockUserRepo.EXPECT().GetByID(s.user.ID).Return(&moved, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+s.sessionToken())
	rec, actor := s.run(s.requireAuth(), req)

	s.Equal(http.StatusOK, rec.Code)
	s.Require().NotNil(actor)
	s.Equal(moved.FamilyID, actor.FamilyID)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_DeletedUser() {
	s.mockBlacklistedTokenRepo.EXPECT().GetByJTI(gomock.Any()).Return(nil, repositories.ErrTokenNotFound)
	s.mockUserRepo.EXPECT().GetByID(s.user.ID).Return(nil, repositories.ErrUserNotFound)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: s.sessionToken()})
	rec, actor := s.run(s.requireAuth(), req)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Nil(actor)
	s.Equal(string(errors.AuthInvalidTokenFormat), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_UserLookupFails() {
	s.mockBlacklistedTokenRepo.EXPECT().GetByJTI(gomock.Any()).Return(nil, repositories.ErrTokenNotFound)
	s.mockUserRepo.EXPECT().GetByID(s.user.ID).Return(nil, stderrors.New("connection refused"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: s.sessionToken()})
	rec, actor := s.run(s.requireAuth(), req)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Nil(actor)
}

func (s *AuthMiddlewareSuite) TestRequireAdmin() {
	cases := []struct {
		name   string
		actor  interface{}
		status int
	}{
		{"admin passes", models.Actor{UserID: uuid.New(), Role: models.RoleAdmin}, http.StatusOK},
		{"member rejected", models.Actor{UserID: uuid.New(), Role: models.RoleMember}, http.StatusForbidden},
		{"no actor", nil, http.StatusUnauthorized},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := httptest.NewRecorder()
			c := s.e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			if tc.actor != nil {
				c.Set(handlers.ActorContextKey, tc.actor)
			}

			handler := RequireAdmin()(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})

			s.Require().NoError(handler(c))
			s.Equal(tc.status, rec.Code)
		})
	}
}
