package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials     ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
	AuthIncorrectPassword      ErrorCode = "AUTH_006"
	AuthInvalidResetToken      ErrorCode = "AUTH_007"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidFile   ErrorCode = "VALIDATION_006"
)

// User and member error codes (USER_*, MEMBER_*)
const (
	UserNotFound            ErrorCode = "USER_001"
	UserEmailTaken          ErrorCode = "USER_002"
	MemberNotFound          ErrorCode = "MEMBER_001"
	MemberAlreadyRegistered ErrorCode = "MEMBER_002"
	MemberInvalidInvite     ErrorCode = "MEMBER_003"
	MemberAdminProtected    ErrorCode = "MEMBER_004"
	MemberOutsideFamily     ErrorCode = "MEMBER_005"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound        ErrorCode = "ACCOUNT_001"
	AccountNotOwned        ErrorCode = "ACCOUNT_002"
	AccountHasTransactions ErrorCode = "ACCOUNT_003"
)

// Category error codes (CATEGORY_*)
const (
	CategoryNotFound        ErrorCode = "CATEGORY_001"
	CategoryNotAccessible   ErrorCode = "CATEGORY_002"
	CategoryHasTransactions ErrorCode = "CATEGORY_003"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound      ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount ErrorCode = "TRANSACTION_002"
	TransactionInvalidType   ErrorCode = "TRANSACTION_003"
)

// Catalog error codes (CATALOG_*)
const (
	CatalogIconNotFound    ErrorCode = "CATALOG_001"
	CatalogColorNotFound   ErrorCode = "CATALOG_002"
	CatalogInvalidIconType ErrorCode = "CATALOG_003"
	CatalogNoIcons         ErrorCode = "CATALOG_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
	SystemRouteNotFound      ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	AuthInvalidCredentials:     "Invalid email or password",
	AuthMissingToken:           "Unauthorized request",
	AuthExpiredToken:           "Session has expired",
	AuthInvalidTokenFormat:     "Invalid access token",
	AuthInsufficientPermission: "You do not have permission to perform this action",
	AuthIncorrectPassword:      "Old password is incorrect",
	AuthInvalidResetToken:      "Password reset link is invalid or has expired",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationInvalidFile:   "Invalid file upload",

	UserNotFound:            "User not found",
	UserEmailTaken:          "User with this email already exists",
	MemberNotFound:          "Member not found",
	MemberAlreadyRegistered: "User already exists",
	MemberInvalidInvite:     "Invalid or expired invitation token",
	MemberAdminProtected:    "Admin members cannot be deleted",
	MemberOutsideFamily:     "Member does not belong to your family",

	AccountNotFound:        "Account not found",
	AccountNotOwned:        "You are not allowed to use this account",
	AccountHasTransactions: "Cannot delete account with related transactions",

	CategoryNotFound:        "Category not found",
	CategoryNotAccessible:   "You are not allowed to use this category",
	CategoryHasTransactions: "Cannot delete category with related transactions",

	TransactionNotFound:      "Transaction not found",
	TransactionInvalidAmount: "Invalid transaction amount",
	TransactionInvalidType:   "Invalid transaction type",

	CatalogIconNotFound:    "Icon not found",
	CatalogColorNotFound:   "Color not found",
	CatalogInvalidIconType: "Invalid icon type",
	CatalogNoIcons:         "No icons found",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Route not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
