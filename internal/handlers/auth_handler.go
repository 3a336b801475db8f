package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"walletlink/internal/config"
	"walletlink/internal/dto"
	"walletlink/internal/errors"
	"walletlink/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler serves the /users endpoints: registration, sessions and the caller's profile
type AuthHandler struct {
	authService  services.AuthServiceInterface
	tokenService services.TokenServiceInterface
	cookie       config.CookieConfig
	sessionTTL   time.Duration
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(authService services.AuthServiceInterface, tokenService services.TokenServiceInterface, cookie config.CookieConfig, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenService: tokenService,
		cookie:       cookie,
		sessionTTL:   sessionTTL,
	}
}

// Register handles user registration
// @Summary Register a new family admin
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 201 {object} SuccessResponse{data=dto.AuthResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or MEMBER_002"
// @Router /users/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	response, err := h.authService.Register(&req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrUserAlreadyExists):
			return SendError(c, errors.MemberAlreadyRegistered)
		case isPasswordPolicyError(err):
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	h.setSessionCookie(c, response.Token)
	return SendSuccess(c, http.StatusCreated, "User registered successfully", response)
}

// Login handles user authentication
// @Summary Login
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} SuccessResponse{data=dto.AuthResponse}
// @Failure 401 {object} errors.ErrorResponse "AUTH_001"
// @Failure 429 {object} errors.ErrorResponse "SYSTEM_005"
// @Router /users/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest

	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	response, err := h.authService.Login(&req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrInvalidCredentials):
			return SendError(c, errors.AuthInvalidCredentials)
		case stderrors.Is(err, services.ErrTooManyAttempts):
			return SendError(c, errors.SystemRateLimitExceeded, errors.WithMessage("Too many failed login attempts, try again later"))
		}
		return SendSystemError(c, err)
	}

	h.setSessionCookie(c, response.Token)
	return SendSuccess(c, http.StatusOK, "Logged in successfully", response)
}

// Logout revokes the session and clears the cookie. It always succeeds.
// @Summary Logout
// @Tags Users
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /users/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if token := h.sessionToken(c); token != "" {
		_ = h.authService.Logout(token, getClientIP(c), c.Request().UserAgent())
	}

	h.clearSessionCookie(c)
	return SendSuccess(c, http.StatusOK, "Logged out successfully", nil)
}

// Me returns the caller's profile
// @Summary Current user
// @Tags Users
// @Security CookieAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.UserResponse}
// @Failure 401 {object} errors.ErrorResponse "AUTH_002"
// @Router /users/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	user, err := h.authService.Me(actor.UserID)
	if err != nil {
		if stderrors.Is(err, services.ErrUserNotFound) {
			return SendError(c, errors.UserNotFound)
		}
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "User fetched successfully", dto.NewUserResponse(user))
}

// @Summary Update profile
// @Tags Users
// @Security CookieAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile"
// @Success 200 {object} SuccessResponse{data=dto.UserResponse}
// @Failure 409 {object} errors.ErrorResponse "USER_002"
// @Router /users/update [post]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	user, err := h.authService.UpdateProfile(actor.UserID, &req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrUserNotFound):
			return SendError(c, errors.UserNotFound)
		case stderrors.Is(err, services.ErrEmailTaken):
			return SendError(c, errors.UserEmailTaken)
		}
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Profile updated successfully", dto.NewUserResponse(user))
}

// UpdateAvatar accepts a multipart upload in the "avatar" field
// @Summary Upload avatar
// @Tags Users
// @Security CookieAuth
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.UserResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006"
// @Router /users/avatar [post]
func (h *AuthHandler) UpdateAvatar(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		return SendError(c, errors.ValidationInvalidFile, errors.WithDetails(services.ErrAvatarMissing.Error()))
	}

	user, err := h.authService.UpdateAvatar(actor.UserID, file)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrUserNotFound):
			return SendError(c, errors.UserNotFound)
		case stderrors.Is(err, services.ErrAvatarTooLarge),
			stderrors.Is(err, services.ErrAvatarInvalidType),
			stderrors.Is(err, services.ErrAvatarMissing):
			return SendError(c, errors.ValidationInvalidFile, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Avatar updated successfully", dto.NewUserResponse(user))
}

// @Summary Change password
// @Tags Users
// @Security CookieAuth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Passwords"
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_006"
// @Router /users/change-password [post]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	actor, err := getActorFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.authService.ChangePassword(actor.UserID, &req, getClientIP(c), c.Request().UserAgent()); err != nil {
		switch {
		case stderrors.Is(err, services.ErrIncorrectPassword):
			return SendError(c, errors.AuthIncorrectPassword)
		case stderrors.Is(err, services.ErrUserNotFound):
			return SendError(c, errors.UserNotFound)
		case isPasswordPolicyError(err):
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Password changed successfully", nil)
}

// ForgotPassword always answers the same way whether or not the email is registered
// @Summary Request a password reset link
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Email"
// @Success 200 {object} SuccessResponse
// @Router /users/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req dto.ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.authService.ForgotPassword(c.Request().Context(), req.Email, getClientIP(c), c.Request().UserAgent()); err != nil {
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "If the email is registered, a reset link has been sent", nil)
}

// @Summary Reset password with a mailed token
// @Tags Users
// @Accept json
// @Produce json
// @Param token path string true "Reset token"
// @Param request body dto.ResetPasswordRequest true "New password"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} errors.ErrorResponse "AUTH_007"
// @Router /users/reset-password/{token} [post]
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req dto.ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	if err := h.authService.ResetPassword(c.Param("token"), req.Password, getClientIP(c), c.Request().UserAgent()); err != nil {
		switch {
		case stderrors.Is(err, services.ErrInvalidResetToken):
			return SendError(c, errors.AuthInvalidResetToken)
		case isPasswordPolicyError(err):
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		}
		return SendSystemError(c, err)
	}

	return SendSuccess(c, http.StatusOK, "Password has been reset", nil)
}

// sessionToken reads the session from the cookie, falling back to a bearer header
func (h *AuthHandler) sessionToken(c echo.Context) string {
	if cookie, err := c.Cookie(h.cookie.Name); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		if token, err := h.tokenService.ExtractTokenFromHeader(header); err == nil {
			return token
		}
	}
	return ""
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    token,
		Path:     "/",
		Domain:   h.cookie.Domain,
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: h.cookie.SameSite,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		Domain:   h.cookie.Domain,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: h.cookie.SameSite,
	})
}

func isPasswordPolicyError(err error) bool {
	return stderrors.Is(err, services.ErrPasswordEmpty) ||
		stderrors.Is(err, services.ErrPasswordTooShort) ||
		stderrors.Is(err, services.ErrPasswordTooLong) ||
		stderrors.Is(err, services.ErrPasswordBlank)
}
