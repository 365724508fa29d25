package dto

import (
	"net/http"

	"github.com/rentflow/backend/internal/domain/shared"
)

// Error codes on the wire. Domain codes are passed through unchanged; the
// transport adds its own for malformed or throttled requests.
const (
	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeBadRequest      = "BAD_REQUEST"
	ErrCodeRateLimited     = "RATE_LIMITED"
	ErrCodePayloadTooLarge = "PAYLOAD_TOO_LARGE"

	ErrCodeNotFound           = shared.CodeNotFound
	ErrCodeAlreadyExists      = shared.CodeAlreadyExists
	ErrCodeInvalidInput       = shared.CodeInvalidInput
	ErrCodeInvalidCredentials = shared.CodeInvalidCredentials
	ErrCodeAuthRequired       = shared.CodeAuthRequired
	ErrCodeRoleRequired       = shared.CodeRoleRequired
	ErrCodeValidation         = shared.CodeValidation
	ErrCodeUpstreamLookup     = shared.CodeUpstreamLookup
	ErrCodePersistence        = shared.CodePersistence
	ErrCodeIdentityProvider   = shared.CodeIdentityProvider
	ErrCodeUploadFailed       = shared.CodeUploadFailed
	ErrCodeInvalidState       = shared.CodeInvalidState
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:        http.StatusInternalServerError,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeRateLimited:     http.StatusTooManyRequests,
	ErrCodePayloadTooLarge: http.StatusRequestEntityTooLarge,

	// Authentication
	ErrCodeInvalidCredentials: http.StatusUnauthorized,
	ErrCodeAuthRequired:       http.StatusUnauthorized,
	ErrCodeRoleRequired:       http.StatusForbidden,

	// Input
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,

	// Resources and state
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeInvalidState:  http.StatusUnprocessableEntity,

	// Collaborators
	ErrCodeUpstreamLookup:   http.StatusBadGateway,
	ErrCodeUploadFailed:     http.StatusBadGateway,
	ErrCodePersistence:      http.StatusInternalServerError,
	ErrCodeIdentityProvider: http.StatusServiceUnavailable,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
