// Package error defines domain-specific errors for the BudgetBook application.
package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is not owned by the document.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountNameEmpty is returned when an account name is blank.
	ErrAccountNameEmpty = errors.New("account name must not be empty")

	// ErrAccountNameExists is returned when creating an account whose name is already taken.
	ErrAccountNameExists = errors.New("account name already exists")

	// ErrAccountTypeNotFound is returned when an account references an unknown account type.
	ErrAccountTypeNotFound = errors.New("account type not found")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeAccountNameEmpty  AccountErrorCode = "ACC-010001"
	ErrCodeAccountNameExists AccountErrorCode = "ACC-010002"

	// Lookup errors (02XXXX)
	ErrCodeAccountNotFound     AccountErrorCode = "ACC-020001"
	ErrCodeAccountTypeNotFound AccountErrorCode = "ACC-020002"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
