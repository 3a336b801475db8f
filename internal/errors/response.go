package errors

import (
	"fmt"
	"net/http"
)

// ErrorResponse is the failure form of the API envelope.
//
//	{"success": false, "statusCode": 404, "message": "Account not found",
//	 "error": {"code": "ACCOUNT_001", "traceId": "..."}}
type ErrorResponse struct {
	Success    bool        `json:"success"`
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Error      ErrorDetail `json:"error"`
}

// ErrorDetail carries the machine-readable part of a failure
type ErrorDetail struct {
	Code    string   `json:"code"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"traceId"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Message = message
	}
}

// WithStatus overrides the status derived from the error code
func WithStatus(status int) ErrorOption {
	return func(er *ErrorResponse) {
		er.StatusCode = status
	}
}

// NewErrorResponse creates a failure envelope for the code, stamped with the trace ID
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Success:    false,
		StatusCode: GetHTTPStatus(code),
		Message:    GetErrorMessage(code),
		Error: ErrorDetail{
			Code:    string(code),
			TraceID: traceID,
		},
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// NewValidationError creates a validation failure from field name to message pairs
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", field, message))
	}
	return NewValidationErrorFromList(details, traceID)
}

// NewValidationErrorFromList creates a validation error from a list of detail messages
func NewValidationErrorFromList(details []string, traceID string) *ErrorResponse {
	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// WrapSystemError hides an internal error behind a generic system failure.
// The original error is returned unchanged for server-side logging.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

// WrapDatabaseError wraps a database error with a generic system error message
func WrapDatabaseError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemDatabaseError, traceID), err
}

// GetHTTPStatus returns the appropriate HTTP status code for the error code
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	case ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationOutOfRange, ValidationInvalidDate, ValidationInvalidFile,
		TransactionInvalidAmount, TransactionInvalidType,
		MemberAlreadyRegistered, MemberInvalidInvite,
		CatalogIconNotFound, CatalogColorNotFound, CatalogInvalidIconType,
		AuthInvalidResetToken:
		return http.StatusBadRequest

	case AuthInvalidCredentials, AuthMissingToken, AuthExpiredToken,
		AuthInvalidTokenFormat, AuthIncorrectPassword:
		return http.StatusUnauthorized

	case AuthInsufficientPermission, AccountNotOwned, CategoryNotAccessible,
		MemberAdminProtected, MemberOutsideFamily:
		return http.StatusForbidden

	case UserNotFound, MemberNotFound, AccountNotFound, CategoryNotFound,
		TransactionNotFound, CatalogNoIcons, SystemRouteNotFound:
		return http.StatusNotFound

	case UserEmailTaken, AccountHasTransactions, CategoryHasTransactions:
		return http.StatusConflict

	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests

	case SystemServiceUnavailable:
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetHTTPStatus returns the HTTP status carried by the envelope
func (er *ErrorResponse) GetHTTPStatus() int {
	if er.StatusCode != 0 {
		return er.StatusCode
	}
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

// IsClientError returns true if the error is a 4xx client error
func (er *ErrorResponse) IsClientError() bool {
	status := er.GetHTTPStatus()
	return status >= 400 && status < 500
}

// IsServerError returns true if the error is a 5xx server error
func (er *ErrorResponse) IsServerError() bool {
	return er.GetHTTPStatus() >= 500
}

func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Message, er.Error.TraceID)
}
