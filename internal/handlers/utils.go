package handlers

import (
	"fmt"
	"strings"
	"time"

	"walletlink/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ActorContextKey holds the models.Actor set by the auth middleware
const ActorContextKey = "actor"

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

// getActorFromContext returns the authenticated caller.
// Returns ErrUnauthorized if the auth middleware did not run.
func getActorFromContext(c echo.Context) (models.Actor, error) {
	actor, ok := c.Get(ActorContextKey).(models.Actor)
	if !ok || actor.UserID == uuid.Nil {
		return models.Actor{}, ErrUnauthorized
	}
	return actor, nil
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

func getUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// getDateQuery parses an optional RFC 3339 or YYYY-MM-DD query value.
// Bare dates used as an upper bound cover the whole day.
func getDateQuery(c echo.Context, name string, endOfDay bool) (*time.Time, error) {
	value := strings.TrimSpace(c.QueryParam(name))
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		t = t.UTC()
		return &t, nil
	}

	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s date: %q", name, value)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.Request().RemoteAddr
}
