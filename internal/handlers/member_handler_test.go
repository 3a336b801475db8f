package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"walletlink/internal/dto"
	"walletlink/internal/models"
	"walletlink/internal/services"
	"walletlink/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type MemberHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockMemberServiceInterface
	handler     *MemberHandler
	echo        *echo.Echo
	admin       models.Actor
}

func TestMemberHandlerSuite(t *testing.T) {
	suite.Run(t, new(MemberHandlerSuite))
}

func (s *MemberHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockMemberServiceInterface(s.ctrl)
	s.handler = NewMemberHandler(s.mockService)
	s.echo = newTestEcho()
	s.admin = adminActor()
}

func (s *MemberHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *MemberHandlerSuite) withID(c echo.Context, id uuid.UUID) {
	c.SetParamNames("id")
	c.SetParamValues(id.String())
}

func (s *MemberHandlerSuite) TestInvite_Success() {
	email := gofakeit.Email()
	expiresAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	s.mockService.EXPECT().
		Invite(gomock.Any(), s.admin, email, gomock.Any(), "handler-test").
		DoAndReturn(func(_ context.Context, actor models.Actor, email, _, _ string) (*models.Invitation, error) {
			return &models.Invitation{ID: uuid.New(), Email: email, FamilyID: actor.FamilyID, ExpiresAt: expiresAt}, nil
		})

	c, rec := newRequestContext(s.echo, http.MethodPost, "/members", dto.InviteMemberRequest{Email: email}, s.admin)

	s.Require().NoError(s.handler.Invite(c))
	s.Equal(http.StatusOK, rec.Code)

	var data dto.InviteResponse
	decodeSuccess(s.T(), rec, &data)
	s.Equal(email, data.Email)
	s.Equal("2025-06-01T12:00:00Z", data.ExpiresAt)
}

func (s *MemberHandlerSuite) TestInvite_RequiresAdmin() {
	member := memberActor()
	s.mockService.EXPECT().Invite(gomock.Any(), member, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, services.ErrAdminRequired)

	c, rec := newRequestContext(s.echo, http.MethodPost, "/members", dto.InviteMemberRequest{Email: "new@example.com"}, member)

	s.Require().NoError(s.handler.Invite(c))
	s.Equal(http.StatusForbidden, rec.Code)
	s.Equal("AUTH_005", decodeError(s.T(), rec).Error.Code)
}

func (s *MemberHandlerSuite) TestInvite_AlreadyRegistered() {
	s.mockService.EXPECT().Invite(gomock.Any(), s.admin, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, services.ErrUserAlreadyExists)

	c, rec := newRequestContext(s.echo, http.MethodPost, "/members", dto.InviteMemberRequest{Email: "known@example.com"}, s.admin)

	s.Require().NoError(s.handler.Invite(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("MEMBER_002", decodeError(s.T(), rec).Error.Code)
}

func (s *MemberHandlerSuite) TestAcceptInvite_Success() {
	familyID := uuid.New()
	body := dto.AcceptInviteRequest{FirstName: "Alan", LastName: "Turing", Password: "enigma-machine"}

	s.mockService.EXPECT().
		AcceptInvite("invite-token", gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.User{ID: uuid.New(), FirstName: "Alan", LastName: "Turing", Role: models.RoleMember, FamilyID: familyID}, nil)

	c, rec := newRequestContext(s.echo, http.MethodPost, "/members/invite?token=invite-token", body, models.Actor{})

	s.Require().NoError(s.handler.AcceptInvite(c))
	s.Equal(http.StatusOK, rec.Code)

	var data dto.UserResponse
	decodeSuccess(s.T(), rec, &data)
	s.Equal(familyID.String(), data.FamilyID)
	s.Equal(models.RoleMember, data.Role)
}

func (s *MemberHandlerSuite) TestAcceptInvite_MissingToken() {
	body := dto.AcceptInviteRequest{FirstName: "Alan", LastName: "Turing", Password: "enigma-machine"}
	c, rec := newRequestContext(s.echo, http.MethodPost, "/members/invite", body, models.Actor{})

	s.Require().NoError(s.handler.AcceptInvite(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_002", decodeError(s.T(), rec).Error.Code)
}

func (s *MemberHandlerSuite) TestAcceptInvite_InvalidInvite() {
	s.mockService.EXPECT().AcceptInvite("used", gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, services.ErrInvalidInvite)

	body := dto.AcceptInviteRequest{FirstName: "Alan", LastName: "Turing", Password: "enigma-machine"}
	c, rec := newRequestContext(s.echo, http.MethodPost, "/members/invite?token=used", body, models.Actor{})

	s.Require().NoError(s.handler.AcceptInvite(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("MEMBER_003", decodeError(s.T(), rec).Error.Code)
}

func (s *MemberHandlerSuite) TestListMembers_Success() {
	members := []*models.User{
		{ID: s.admin.UserID, Role: models.RoleAdmin, FamilyID: s.admin.FamilyID},
		{ID: uuid.New(), Role: models.RoleMember, FamilyID: s.admin.FamilyID},
	}
	s.mockService.EXPECT().ListMembers(s.admin).Return(members, nil)

	c, rec := newRequestContext(s.echo, http.MethodGet, "/members", nil, s.admin)

	s.Require().NoError(s.handler.ListMembers(c))
	s.Equal(http.StatusOK, rec.Code)

	var data []dto.UserResponse
	decodeSuccess(s.T(), rec, &data)
	s.Len(data, 2)
}

func (s *MemberHandlerSuite) TestGetMember_OutsideFamily() {
	id := uuid.New()
	s.mockService.EXPECT().GetMember(s.admin, id).Return(nil, services.ErrMemberOutsideScope)

	c, rec := newRequestContext(s.echo, http.MethodGet, "/members/"+id.String(), nil, s.admin)
	s.withID(c, id)

	s.Require().NoError(s.handler.GetMember(c))
	s.Equal(http.StatusForbidden, rec.Code)
	s.Equal("MEMBER_005", decodeError(s.T(), rec).Error.Code)
}

func (s *MemberHandlerSuite) TestUpdateMember_InvalidRoleRejectedByValidator() {
	id := uuid.New()
	role := "owner"

	c, _ := newRequestContext(s.echo, http.MethodPost, "/members/"+id.String(), dto.UpdateMemberRequest{Role: &role}, s.admin)
	s.withID(c, id)

	s.Error(s.handler.UpdateMember(c))
}

func (s *MemberHandlerSuite) TestUpdateMember_EmailTaken() {
	id := uuid.New()
	email := "taken@example.com"
	s.mockService.EXPECT().UpdateMember(s.admin, id, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, services.ErrEmailTaken)

	c, rec := newRequestContext(s.echo, http.MethodPost, "/members/"+id.String(), dto.UpdateMemberRequest{Email: &email}, s.admin)
	s.withID(c, id)

	s.Require().NoError(s.handler.UpdateMember(c))
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *MemberHandlerSuite) TestDeleteMember_AdminProtected() {
	id := uuid.New()
	s.mockService.EXPECT().DeleteMember(s.admin, id, gomock.Any(), gomock.Any()).Return(services.ErrAdminProtected)

	c, rec := newRequestContext(s.echo, http.MethodDelete, "/members/"+id.String(), nil, s.admin)
	s.withID(c, id)

	s.Require().NoError(s.handler.DeleteMember(c))
	s.Equal(http.StatusForbidden, rec.Code)
	s.Equal("MEMBER_004", decodeError(s.T(), rec).Error.Code)
}

func (s *MemberHandlerSuite) TestDeleteMember_NotFound() {
	id := uuid.New()
	s.mockService.EXPECT().DeleteMember(s.admin, id, gomock.Any(), gomock.Any()).Return(services.ErrMemberNotFound)

	c, rec := newRequestContext(s.echo, http.MethodDelete, "/members/"+id.String(), nil, s.admin)
	s.withID(c, id)

	s.Require().NoError(s.handler.DeleteMember(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *MemberHandlerSuite) TestActivity_Paginated() {
	logs := []*models.AuditLog{{ID: uuid.New(), Action: models.AuditActionMemberInvited}}
	s.mockService.EXPECT().FamilyActivity(s.admin, 20, 20).Return(logs, int64(41), nil)

	c, rec := newRequestContext(s.echo, http.MethodGet, "/members/activity?page=2&limit=20", nil, s.admin)

	s.Require().NoError(s.handler.Activity(c))
	s.Equal(http.StatusOK, rec.Code)

	resp := decodeSuccess(s.T(), rec, nil)
	s.Require().NotNil(resp.Pagination)
	s.Equal(3, resp.Pagination.TotalPages)
	s.Equal(int64(41), resp.Pagination.TotalItems)
}
