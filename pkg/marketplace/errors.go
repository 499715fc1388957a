package marketplace

import (
	"errors"
	"fmt"
)

// Sentinel errors for request construction and response distillation.
var (
	// ErrFieldAlreadySet indicates a setter was called twice for the same field.
	// It signals a bug in the calling code.
	ErrFieldAlreadySet = errors.New("field already set")

	// ErrInvalidArgument indicates a field value failed validation.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidRequest indicates a required field is missing at finalize time.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnexpectedResponse indicates the remote reported failure without an error section.
	ErrUnexpectedResponse = errors.New("unexpected response")
)

// FieldError ties a request construction failure to the field that caused it.
type FieldError struct {
	Field string
	Err   error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	switch {
	case errors.Is(e.Err, ErrFieldAlreadySet):
		return e.Field + " is already set"
	case errors.Is(e.Err, ErrInvalidRequest):
		return e.Field + " is required"
	case errors.Is(e.Err, ErrInvalidArgument):
		return e.Field + " is invalid"
	default:
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
}

// Unwrap returns the underlying sentinel.
func (e *FieldError) Unwrap() error {
	return e.Err
}

// APIError represents a failure reported by the marketplace.
type APIError struct {
	Operation  string
	Code       string
	Message    string
	StatusCode int
	Retryable  bool
	Cause      error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s error (%s): %s: %v", e.Operation, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s error (%s): %s", e.Operation, e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *APIError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is for APIError.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewAPIError creates a new APIError.
func NewAPIError(operation, code, message string) *APIError {
	return &APIError{
		Operation: operation,
		Code:      code,
		Message:   message,
	}
}

// WithCause adds a cause to the error.
func (e *APIError) WithCause(err error) *APIError {
	e.Cause = err
	return e
}

// WithStatusCode adds an HTTP status code to the error.
func (e *APIError) WithStatusCode(code int) *APIError {
	e.StatusCode = code
	return e
}

// WithRetryable marks the error as retryable.
func (e *APIError) WithRetryable(retryable bool) *APIError {
	e.Retryable = retryable
	return e
}

// IsRetryable returns true if the error is retryable. Only the transport
// classifies errors as retryable.
func IsRetryable(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Retryable
	}
	return false
}
