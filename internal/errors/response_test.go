package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(AuthInvalidCredentials, s.traceID)

	s.False(response.Success)
	s.Equal(http.StatusUnauthorized, response.StatusCode)
	s.Equal("Invalid email or password", response.Message)
	s.Equal("AUTH_001", response.Error.Code)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithOptions() {
	response := NewErrorResponse(
		AccountNotFound,
		s.traceID,
		WithMessage("No such account"),
		WithDetails("id: 42"),
	)

	s.Equal("ACCOUNT_001", response.Error.Code)
	s.Equal("No such account", response.Message)
	s.Equal([]string{"id: 42"}, response.Error.Details)
	s.Equal(http.StatusNotFound, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithStatus() {
	response := NewErrorResponse(SystemUnexpectedError, s.traceID, WithStatus(http.StatusMethodNotAllowed))

	s.Equal(http.StatusMethodNotAllowed, response.GetHTTPStatus())
	s.True(response.IsClientError())
	s.False(response.IsServerError())
}

func (s *ResponseTestSuite) TestNewValidationError_WithFieldErrors() {
	response := NewValidationError(map[string]string{"email": "is required"}, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal(http.StatusBadRequest, response.StatusCode)
	s.Equal([]string{"email: is required"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesInternalMessage() {
	internal := errors.New("pq: relation \"accounts\" does not exist")

	response, err := WrapSystemError(internal, s.traceID)

	s.Equal(internal, err)
	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Message, "relation")
	s.True(response.IsServerError())
}

func (s *ResponseTestSuite) TestWrapDatabaseError() {
	response, err := WrapDatabaseError(errors.New("connection refused"), s.traceID)

	s.Error(err)
	s.Equal("SYSTEM_002", response.Error.Code)
	s.Equal(http.StatusInternalServerError, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestJSONShape() {
	response := NewErrorResponse(CategoryHasTransactions, s.traceID)

	raw, err := json.Marshal(response)
	s.Require().NoError(err)

	var decoded map[string]interface{}
	s.Require().NoError(json.Unmarshal(raw, &decoded))
	s.Equal(false, decoded["success"])
	s.Equal(float64(http.StatusConflict), decoded["statusCode"])
	s.Equal("Cannot delete category with related transactions", decoded["message"])

	detail := decoded["error"].(map[string]interface{})
	s.Equal("CATEGORY_003", detail["code"])
	s.Equal(s.traceID, detail["traceId"])
	s.NotContains(detail, "details")
}

func (s *ResponseTestSuite) TestString() {
	response := NewErrorResponse(TransactionNotFound, "abc")
	s.Equal("[TRANSACTION_001] Transaction not found (trace: abc)", response.String())
}
