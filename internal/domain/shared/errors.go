package shared

import "errors"

// Error codes shared by the domain and the HTTP layer.
const (
	CodeNotFound           = "NOT_FOUND"
	CodeAlreadyExists      = "ALREADY_EXISTS"
	CodeInvalidInput       = "INVALID_INPUT"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeAuthRequired       = "AUTH_REQUIRED"
	CodeRoleRequired       = "ROLE_REQUIRED"
	CodeValidation         = "VALIDATION_ERROR"
	CodeUpstreamLookup     = "UPSTREAM_LOOKUP_FAILED"
	CodePersistence        = "PERSISTENCE_FAILED"
	CodeIdentityProvider   = "IDENTITY_PROVIDER_FAILED"
	CodeUploadFailed       = "UPLOAD_FAILED"
	CodeInvalidState       = "INVALID_STATE"
)

// DomainError represents a domain-level error.
// Field is set for field-level failures (validation, lookup) so the form
// layer can attach the message to the right input.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause
func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is matches domain errors by code so that errors.Is(err, ErrValidation)
// holds for every validation failure regardless of message.
func (e *DomainError) Is(target error) bool {
	var t *DomainError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewFieldError creates a domain error bound to a single input field
func NewFieldError(code, field, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Field:   field,
	}
}

// WrapDomainError creates a domain error carrying an underlying cause
func WrapDomainError(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain errors
var (
	ErrNotFound           = NewDomainError(CodeNotFound, "Resource not found")
	ErrAlreadyExists      = NewDomainError(CodeAlreadyExists, "Resource already exists")
	ErrInvalidInput       = NewDomainError(CodeInvalidInput, "Invalid input provided")
	ErrInvalidCredentials = NewDomainError(CodeInvalidCredentials, "Invalid email or password")
	ErrAuthRequired       = NewDomainError(CodeAuthRequired, "Authentication required")
	ErrRoleRequired       = NewDomainError(CodeRoleRequired, "A role must be selected first")
	ErrValidation         = NewDomainError(CodeValidation, "Validation failed")
	ErrUpstreamLookup     = NewDomainError(CodeUpstreamLookup, "Company registry lookup failed")
	ErrPersistence        = NewDomainError(CodePersistence, "Failed to save data, please try again")
	ErrIdentityProvider   = NewDomainError(CodeIdentityProvider, "Identity provider unavailable")
	ErrUploadFailed       = NewDomainError(CodeUploadFailed, "File upload failed")
	ErrInvalidState       = NewDomainError(CodeInvalidState, "Operation not allowed in current state")
)
