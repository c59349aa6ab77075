package entity

import "github.com/google/uuid"

// SourceKind discriminates the closed set of transaction endpoint variants.
type SourceKind string

const (
	SourceKindAccount  SourceKind = "account"
	SourceKindCategory SourceKind = "category"
	SourceKindSplit    SourceKind = "split"
)

// Source is anything a transaction can move money from or to: an Account,
// a BudgetCategory, or the split placeholder standing in for a side that is
// broken into multiple real sources.
type Source interface {
	// SourceID is the stable identifier. The split placeholder has no
	// identity and returns uuid.Nil.
	SourceID() uuid.UUID
	// SourceKind reports which variant this source is.
	SourceKind() SourceKind
	// SourceName is the display name.
	SourceName() string
	// SourceFullName is the path-qualified name (categories include their
	// ancestry).
	SourceFullName() string
	// IsDeleted reports whether the source has been soft-deleted.
	IsDeleted() bool
	// IsIncome reports whether money flowing from this source counts as
	// income (budget categories only).
	IsIncome() bool
	// IsCredit reports whether this source is credit-classified (accounts
	// whose type is a liability).
	IsCredit() bool
}

// SplitPlaceholder marks a transaction side that is divided across multiple
// real sources carried in the transaction's split list.
type SplitPlaceholder struct{}

// Split is the shared split placeholder instance.
var Split Source = SplitPlaceholder{}

func (SplitPlaceholder) SourceID() uuid.UUID      { return uuid.Nil }
func (SplitPlaceholder) SourceKind() SourceKind   { return SourceKindSplit }
func (SplitPlaceholder) SourceName() string       { return "Split" }
func (SplitPlaceholder) SourceFullName() string   { return "Split" }
func (SplitPlaceholder) IsDeleted() bool          { return false }
func (SplitPlaceholder) IsIncome() bool           { return false }
func (SplitPlaceholder) IsCredit() bool           { return false }

// SameSource reports whether two sources are the same endpoint. Two split
// placeholders are never "the same" endpoint: a transaction may be split on
// both sides.
func SameSource(a, b Source) bool {
	if a == nil || b == nil {
		return false
	}
	if a.SourceKind() == SourceKindSplit || b.SourceKind() == SourceKindSplit {
		return false
	}
	return a.SourceKind() == b.SourceKind() && a.SourceID() == b.SourceID()
}
