package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates the caller lacks the required role or permission.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates the request conflicts with the current state of the resource.
var ErrConflict = errors.New("conflict with current resource state")

// ErrUnbalancedEntry indicates a journal entry whose debit and credit totals
// differ by more than the accepted tolerance; posting is refused.
var ErrUnbalancedEntry = errors.New("journal entry debits and credits do not balance")

// ErrInvalidState indicates a lifecycle transition that is not allowed from
// the entry's current status (e.g. reversing a draft).
var ErrInvalidState = errors.New("operation not allowed in current status")

// ErrMissingReason indicates a reversal was attempted without a reason.
var ErrMissingReason = errors.New("reversal reason is required")

// ErrCannotDeletePosted indicates a delete attempt on a posted or reversed
// entry; those are permanent audit records.
var ErrCannotDeletePosted = errors.New("posted or reversed entries cannot be deleted")

// ErrNumberCollision indicates a generated document number already exists.
// Callers regenerate and retry once before surfacing the failure.
var ErrNumberCollision = errors.New("document number already exists")

// AppError carries an HTTP status code alongside a message and an optional
// wrapped cause. Repositories use it to classify infrastructure failures
// without leaking driver errors to handlers.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
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

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates a 404 AppError that matches errors.Is(err, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewBadRequestError creates a 400 AppError.
func NewBadRequestError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewInternalServerError creates a 500 AppError.
func NewInternalServerError(message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message}
}

// NewGatewayTimeoutError creates a 504 AppError for upstream connectivity failures.
func NewGatewayTimeoutError(message string) *AppError {
	return &AppError{Code: http.StatusGatewayTimeout, Message: message}
}
