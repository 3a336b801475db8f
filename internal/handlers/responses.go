package handlers

import (
	"log/slog"
	"net/http"

	"walletlink/internal/dto"
	"walletlink/internal/errors"

	"github.com/labstack/echo/v4"
)

// Every handler answers through the helpers below.
//
// 1. SendSuccess / SendPage - the success envelope, SendPage adds pagination
// 2. SendError - client and business errors (4xx) by error code
// 3. SendSystemError - anything unexpected; the cause is logged, never returned

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse is the success form of the API envelope
type SuccessResponse struct {
	Success    bool            `json:"success"`
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       interface{}     `json:"data,omitempty"`
	Pagination *dto.Pagination `json:"pagination,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

func SendSuccess(c echo.Context, status int, message string, data interface{}) error {
	return c.JSON(status, SuccessResponse{
		Success:    true,
		StatusCode: status,
		Message:    message,
		Data:       data,
	})
}

// SendPage sends one page of a list together with its pagination block
func SendPage(c echo.Context, message string, data interface{}, pagination dto.Pagination) error {
	return c.JSON(http.StatusOK, SuccessResponse{
		Success:    true,
		StatusCode: http.StatusOK,
		Message:    message,
		Data:       data,
		Pagination: &pagination,
	})
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, cause := errors.WrapSystemError(err, traceID)

	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", cause,
	)

	return c.JSON(http.StatusInternalServerError, errorResponse)
}
