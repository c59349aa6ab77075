// Package error defines domain-specific errors for the BudgetBook application.
package error

import "errors"

// Ledger domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not owned by the document.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrSameFromTo is returned when a transaction's from and to endpoints are the same source.
	ErrSameFromTo = errors.New("transaction endpoints must differ")

	// ErrNegativeAmount is returned when a transaction or split amount is negative.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrNilSource is returned when a transaction endpoint or split source is missing.
	ErrNilSource = errors.New("source is required")

	// ErrEmptySplits is returned when a split endpoint carries no splits.
	ErrEmptySplits = errors.New("split side must have at least one split")

	// ErrUnexpectedSplits is returned when splits are attached to a non-split endpoint.
	ErrUnexpectedSplits = errors.New("splits are only allowed on a split endpoint")

	// ErrSplitSumMismatch is returned when a side's split amounts do not sum to the transaction amount.
	ErrSplitSumMismatch = errors.New("split amounts must sum to the transaction amount")

	// ErrSplitSourceInvalid is returned when a split references the split placeholder itself.
	ErrSplitSourceInvalid = errors.New("split source must be a real account or category")

	// ErrSourceNotOwned is returned when an endpoint references a source outside the document.
	ErrSourceNotOwned = errors.New("source does not belong to this document")

	// ErrScheduledNotFound is returned when a scheduled transaction is not owned by the document.
	ErrScheduledNotFound = errors.New("scheduled transaction not found")

	// ErrInvalidFrequency is returned when a scheduled transaction frequency is unknown.
	ErrInvalidFrequency = errors.New("invalid frequency")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LGR-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeSameFromTo         LedgerErrorCode = "LGR-010001"
	ErrCodeNegativeAmount     LedgerErrorCode = "LGR-010002"
	ErrCodeNilSource          LedgerErrorCode = "LGR-010003"
	ErrCodeEmptySplits        LedgerErrorCode = "LGR-010004"
	ErrCodeUnexpectedSplits   LedgerErrorCode = "LGR-010005"
	ErrCodeSplitSumMismatch   LedgerErrorCode = "LGR-010006"
	ErrCodeSplitSourceInvalid LedgerErrorCode = "LGR-010007"
	ErrCodeSourceNotOwned     LedgerErrorCode = "LGR-010008"
	ErrCodeInvalidFrequency   LedgerErrorCode = "LGR-010009"
	ErrCodeMissingTransactionFields LedgerErrorCode = "LGR-010010"

	// Lookup errors (02XXXX)
	ErrCodeTransactionNotFound LedgerErrorCode = "LGR-020001"
	ErrCodeScheduledNotFound   LedgerErrorCode = "LGR-020002"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
