package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"walletlink/internal/errors"
	"walletlink/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newRequestContext builds a context for method/target with an optional JSON body.
// A zero actor leaves the request unauthenticated.
func newRequestContext(e *echo.Echo, method, target string, body interface{}, actor models.Actor) (echo.Context, *httptest.ResponseRecorder) {
	var req = httptest.NewRequest(method, target, nil)
	if body != nil {
		payload, _ := json.Marshal(body)
		req = httptest.NewRequest(method, target, bytes.NewReader(payload))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set("User-Agent", "handler-test")

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if actor.UserID != uuid.Nil {
		c.Set(ActorContextKey, actor)
	}
	return c, rec
}

func adminActor() models.Actor {
	return models.Actor{UserID: uuid.New(), FamilyID: uuid.New(), Role: models.RoleAdmin}
}

func memberActor() models.Actor {
	return models.Actor{UserID: uuid.New(), FamilyID: uuid.New(), Role: models.RoleMember}
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errors.ErrorResponse {
	t.Helper()
	var resp errors.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	return resp
}

func decodeSuccess(t *testing.T, rec *httptest.ResponseRecorder, data interface{}) SuccessResponse {
	t.Helper()
	var resp SuccessResponse
	if data != nil {
		resp.Data = data
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	return resp
}
