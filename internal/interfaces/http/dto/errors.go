package dto

import "net/http"

// Error codes emitted by this API, matching the domain error taxonomy.
const (
	// ErrCodeUnauthorized is used for credential mismatch at login
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeInvalidInput is used for malformed or invalid payloads
	ErrCodeInvalidInput = "INVALID_INPUT"
	// ErrCodeExternalContract is used when the external system's response
	// violates its schema contract
	ErrCodeExternalContract = "EXTERNAL_CONTRACT"
)

// errorCodeHTTPStatus maps error codes to HTTP status codes
var errorCodeHTTPStatus = map[string]int{
	ErrCodeUnauthorized:     http.StatusUnauthorized,
	ErrCodeInvalidInput:     http.StatusBadRequest,
	ErrCodeExternalContract: http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code, defaulting
// to 500 for unknown codes.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
