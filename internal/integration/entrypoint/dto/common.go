// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ParseAmount converts a decimal money string (e.g. "123.45") to minor
// currency units. More than two decimal places is an error: the engine
// stores exact cents.
func ParseAmount(s string) (int64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	cents := d.Mul(decimal.New(1, 2))
	if !cents.IsInteger() {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	return cents.IntPart(), nil
}

// FormatAmount converts minor currency units to a decimal money string
// with exactly two decimal places.
func FormatAmount(v int64) string {
	return decimal.New(v, -2).StringFixed(2)
}
