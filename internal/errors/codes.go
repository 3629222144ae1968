package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_001"
	AuthInvalidTokenFormat ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
)

// Query pipeline error codes (QUERY_*)
const (
	QueryInvalidRangeToken     ErrorCode = "QUERY_001"
	QueryUnrecognizedTypeLabel ErrorCode = "QUERY_002"
	QueryIntentExtraction      ErrorCode = "QUERY_003"
	QueryReplyComposition      ErrorCode = "QUERY_004"
	QueryEmptyQuestion         ErrorCode = "QUERY_005"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemNotFound           ErrorCode = "SYSTEM_007"
)

var errorMessages = map[ErrorCode]string{
	AuthMissingToken:       "Authorization token is required",
	AuthInvalidTokenFormat: "Invalid authorization token",
	AuthExpiredToken:       "Authorization token has expired",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",

	QueryInvalidRangeToken:     "Unsupported time range",
	QueryUnrecognizedTypeLabel: "Unrecognized transaction type",
	QueryIntentExtraction:      "Could not understand the question",
	QueryReplyComposition:      "Could not compose a reply",
	QueryEmptyQuestion:         "query is required",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Ledger store is unavailable",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemNotFound:           "Resource not found",
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
