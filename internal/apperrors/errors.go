package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller is not allowed to act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unexpected internal failure that should not leak details to callers.
var ErrInternal = errors.New("internal error")

// ErrFolioClosed indicates a mutation was attempted on a closed folio.
var ErrFolioClosed = errors.New("folio is closed")

// ErrAlreadyVoided indicates a void was attempted on an item or payment that is already voided.
var ErrAlreadyVoided = errors.New("already voided")

// ErrBalanceNotZero indicates a folio close was attempted while a balance is outstanding.
var ErrBalanceNotZero = errors.New("folio balance is not zero")

// ErrConflict indicates an optimistic concurrency check failed; the caller holds a stale version.
var ErrConflict = errors.New("version conflict")

// AppError carries a status code alongside the wrapped cause. Repositories use it
// to classify store failures without leaking SQL details upward.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
