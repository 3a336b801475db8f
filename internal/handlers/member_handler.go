package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"walletlink/internal/dto"
	"walletlink/internal/errors"
	"walletlink/internal/services"

	"github.com/labstack/echo/v4"
)

// MemberHandler serves family membership: invitations and admin member management
type MemberHandler struct {
	memberService services.MemberServiceInterface
}

func NewMemberHandler(memberService services.MemberServiceInterface) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// Invite mails an invitation link to a new member
// @Summary Invite a member
// @Tags Members
// @Security CookieAuth
// @Accept json
// @Produce json
// @Param request body dto.InviteMemberRequest true "Email to invite"
// @Success 200 {object} SuccessResponse{data=dto.InviteResponse}
// @Failure 400 {object} errors.ErrorResponse "MEMBER_002"
// @Failure 403 {object} errors.ErrorResponse "AUTH_005"
// @Router /members [post]
func (h *MemberHandler) Invite(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.InviteMemberRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	invitation, err := h.memberService.Invite(c.Request().Context(), actor, req.Email, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return sendMemberError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Email sent successfully", dto.InviteResponse{
		Email:     invitation.Email,
		ExpiresAt: invitation.ExpiresAt.UTC().Format(time.RFC3339),
	})
}

// AcceptInvite registers the invited member. The route is public; the token is the credential.
// @Summary Accept an invitation
// @Tags Members
// @Accept json
// @Produce json
// @Param token query string true "Invitation token"
// @Param request body dto.AcceptInviteRequest true "New member details"
// @Success 200 {object} SuccessResponse{data=dto.UserResponse}
// @Failure 400 {object} errors.ErrorResponse "MEMBER_003 or MEMBER_002"
// @Router /members/invite [post]
func (h *MemberHandler) AcceptInvite(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("token is required"))
	}

	var req dto.AcceptInviteRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	member, err := h.memberService.AcceptInvite(token, &req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return sendMemberError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Member added successfully", dto.NewUserResponse(member))
}

// @Summary List family members
// @Tags Members
// @Security CookieAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]dto.UserResponse}
// @Failure 403 {object} errors.ErrorResponse "AUTH_005"
// @Router /members [get]
func (h *MemberHandler) ListMembers(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	members, err := h.memberService.ListMembers(actor)
	if err != nil {
		return sendMemberError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Members retrieved successfully", dto.NewUserResponses(members))
}

// @Summary Get a family member
// @Tags Members
// @Security CookieAuth
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} SuccessResponse{data=dto.UserResponse}
// @Failure 404 {object} errors.ErrorResponse "MEMBER_001"
// @Router /members/{id} [get]
func (h *MemberHandler) GetMember(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	memberID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid member ID"))
	}

	member, err := h.memberService.GetMember(actor, memberID)
	if err != nil {
		return sendMemberError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Member retrieved successfully", dto.NewUserResponse(member))
}

// @Summary Update a family member
// @Tags Members
// @Security CookieAuth
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Param request body dto.UpdateMemberRequest true "Changes"
// @Success 200 {object} SuccessResponse{data=dto.UserResponse}
// @Failure 409 {object} errors.ErrorResponse "USER_002"
// @Router /members/{id} [post]
func (h *MemberHandler) UpdateMember(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	memberID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid member ID"))
	}

	var req dto.UpdateMemberRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	member, err := h.memberService.UpdateMember(actor, memberID, &req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return sendMemberError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Member updated successfully", dto.NewUserResponse(member))
}

// DeleteMember removes a member together with their accounts, categories and transactions
// @Summary Delete a family member
// @Tags Members
// @Security CookieAuth
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} SuccessResponse
// @Failure 403 {object} errors.ErrorResponse "MEMBER_004"
// @Router /members/{id} [delete]
func (h *MemberHandler) DeleteMember(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	memberID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid member ID"))
	}

	if err := h.memberService.DeleteMember(actor, memberID, getClientIP(c), c.Request().UserAgent()); err != nil {
		return sendMemberError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Member deleted successfully", nil)
}

// Activity returns the family's audit trail, newest first
// @Summary Family activity
// @Tags Members
// @Security CookieAuth
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} SuccessResponse{data=[]models.AuditLog,pagination=dto.Pagination}
// @Router /members/activity [get]
func (h *MemberHandler) Activity(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	page := dto.NewPageRequest(getIntParam(c, "page", 1), getIntParam(c, "limit", dto.DefaultPageSize))

	logs, total, err := h.memberService.FamilyActivity(actor, page.Offset(), page.Limit)
	if err != nil {
		return sendMemberError(c, err)
	}

	return SendPage(c, "Activity retrieved successfully", logs, dto.NewPagination(page, total))
}

func sendMemberError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrAdminRequired):
		return SendError(c, errors.AuthInsufficientPermission)
	case stderrors.Is(err, services.ErrUserAlreadyExists):
		return SendError(c, errors.MemberAlreadyRegistered)
	case stderrors.Is(err, services.ErrEmailTaken):
		return SendError(c, errors.UserEmailTaken)
	case stderrors.Is(err, services.ErrInvalidInvite):
		return SendError(c, errors.MemberInvalidInvite)
	case stderrors.Is(err, services.ErrMemberNotFound):
		return SendError(c, errors.MemberNotFound)
	case stderrors.Is(err, services.ErrMemberOutsideScope):
		return SendError(c, errors.MemberOutsideFamily)
	case stderrors.Is(err, services.ErrAdminProtected):
		return SendError(c, errors.MemberAdminProtected)
	case stderrors.Is(err, services.ErrInvalidRole):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	case isPasswordPolicyError(err):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	return SendSystemError(c, err)
}
