package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// SecurityHeaders adds security headers to responses. API responses are never cached;
// requests under one of the cacheablePrefixes (uploaded avatars) may be cached for a day.
func SecurityHeaders(cacheablePrefixes ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Response().Header()
			header.Set("X-Content-Type-Options", "nosniff")
			header.Set("X-Frame-Options", "DENY")
			header.Set("X-XSS-Protection", "1; mode=block")
			header.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			header.Set("Content-Security-Policy", "default-src 'self'")
			header.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			header.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

			if hasAnyPrefix(c.Request().URL.Path, cacheablePrefixes) {
				header.Set("Cache-Control", "public, max-age=86400")
				header.Set("Cross-Origin-Resource-Policy", "cross-origin")
			} else {
				header.Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
				header.Set("Pragma", "no-cache")
				header.Set("Expires", "0")
			}

			return next(c)
		}
	}
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if prefix != "" && strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}
