package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
// A record that fails validation never reaches the ledger engines.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrNotAuthenticated indicates that no user session is attached to the request.
var ErrNotAuthenticated = errors.New("not authenticated")

// ErrReferentialIntegrity indicates an attempt to edit or delete a derived record directly,
// or to delete a record that still has dependents.
var ErrReferentialIntegrity = errors.New("referential integrity violation")

// ErrInvalidRange indicates that the end of a date range precedes its start.
var ErrInvalidRange = errors.New("invalid range")

// ErrInvalidState indicates a workflow transition that is not allowed from the current state.
var ErrInvalidState = errors.New("invalid state transition")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError builds an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error { return e.Err }
