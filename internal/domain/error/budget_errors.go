// Package error defines domain-specific errors for the BudgetBook application.
package error

import "errors"

// Budget category domain errors.
var (
	// ErrCategoryNotFound is returned when a budget category is not owned by the document.
	ErrCategoryNotFound = errors.New("budget category not found")

	// ErrCategoryNameEmpty is returned when a category name is blank.
	ErrCategoryNameEmpty = errors.New("category name must not be empty")

	// ErrInvalidPeriodType is returned when a period type is unknown.
	ErrInvalidPeriodType = errors.New("invalid period type")

	// ErrCategoryCycle is returned when re-parenting a category would create a cycle.
	ErrCategoryCycle = errors.New("category cannot be its own ancestor")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameEmpty BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidPeriodType BudgetErrorCode = "BGT-010002"
	ErrCodeCategoryCycle     BudgetErrorCode = "BGT-010003"

	// Lookup errors (02XXXX)
	ErrCodeCategoryNotFound BudgetErrorCode = "BGT-020001"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
