package middleware

import (
	stderrors "errors"

	"walletlink/internal/errors"
	"walletlink/internal/handlers"
	"walletlink/internal/models"
	"walletlink/internal/repositories"
	"walletlink/internal/services"

	"github.com/labstack/echo/v4"
)

// RequireAuth accepts the session from the cookie or an Authorization bearer header,
// rejects revoked tokens and stores the caller's models.Actor in the context.
// Role and family come from the stored user, never from the token claims.
func RequireAuth(tokenService services.TokenServiceInterface, blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface, userRepo repositories.UserRepositoryInterface, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ""
			if cookie, err := c.Cookie(cookieName); err == nil {
				token = cookie.Value
			}

			if token == "" {
				authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
				if authHeader == "" {
					return handlers.SendError(c, errors.AuthMissingToken)
				}

				extracted, err := tokenService.ExtractTokenFromHeader(authHeader)
				if err != nil {
					return handlers.SendError(c, errors.AuthInvalidTokenFormat)
				}
				token = extracted
			}

			claims, err := tokenService.ValidateSessionToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			blacklistedToken, err := blacklistedTokenRepo.GetByJTI(claims.ID)
			if err == nil && blacklistedToken != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Token has been revoked"))
			}

			tokenActor, err := claims.Actor()
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Invalid identity in token"))
			}

			user, err := userRepo.GetByID(tokenActor.UserID)
			if err != nil {
				if stderrors.Is(err, repositories.ErrUserNotFound) {
					return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Account no longer exists"))
				}
				return handlers.SendError(c, errors.SystemDatabaseError)
			}

			c.Set(handlers.ActorContextKey, models.ActorFor(user))
			c.Set("token_jti", claims.ID)

			return next(c)
		}
	}
}

// RequireRole creates a middleware that requires one of the given roles
func RequireRole(requiredRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := c.Get(handlers.ActorContextKey).(models.Actor)
			if !ok {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			for _, role := range requiredRoles {
				if actor.Role == role {
					return next(c)
				}
			}

			return handlers.SendError(c, errors.AuthInsufficientPermission)
		}
	}
}

// RequireAdmin is a convenience middleware that requires admin role
func RequireAdmin() echo.MiddlewareFunc {
	return RequireRole(models.RoleAdmin)
}
