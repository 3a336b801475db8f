package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"walletlink/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type seenTrace struct {
	echoCtx    string
	requestCtx interface{}
}

func runRequestID(t *testing.T, incoming string) (*httptest.ResponseRecorder, seenTrace) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	if incoming != "" {
		req.Header.Set(TraceIDHeader, incoming)
	}
	rec := httptest.NewRecorder()

	var seen seenTrace
	handler := RequestID()(func(c echo.Context) error {
		seen.echoCtx = GetTraceID(c)
		seen.requestCtx = c.Request().Context().Value(services.TraceIDKey)
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec, seen
}

func TestRequestID_GeneratesUUID(t *testing.T) {
	rec, seen := runRequestID(t, "")

	assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`, seen.echoCtx)
	assert.Equal(t, seen.echoCtx, rec.Header().Get(TraceIDHeader))
	assert.Equal(t, seen.echoCtx, seen.requestCtx)
}

func TestRequestID_KeepsIncomingHeader(t *testing.T) {
	rec, seen := runRequestID(t, "client-trace-42")

	assert.Equal(t, "client-trace-42", seen.echoCtx)
	assert.Equal(t, "client-trace-42", rec.Header().Get(TraceIDHeader))
	assert.Equal(t, "client-trace-42", seen.requestCtx)
}

func TestRequestID_UniquePerRequest(t *testing.T) {
	_, first := runRequestID(t, "")
	_, second := runRequestID(t, "")

	assert.NotEqual(t, first.echoCtx, second.echoCtx)
}

func TestGetTraceID_EmptyWithoutMiddleware(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, GetTraceID(c))

	c.Set(TraceIDContextKey, 12345)
	assert.Empty(t, GetTraceID(c))
}
