package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// DateLayout is the wire and storage format for calendar dates. Dates carry no
// time component and no timezone; lexicographic order of well-formed values
// equals calendar order, and the codebase relies on that.
const DateLayout = "2006-01-02"

// Transaction is a single recorded income or expense event. Records are
// append/delete only; there is no in-place edit.
type Transaction struct {
	ID       int64           `json:"id"`
	Date     string          `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Type     TransactionType `json:"type"`
	Category string          `json:"category"`
	Note     string          `json:"note,omitempty"`
}

// TransactionCreate is the payload for creating a transaction. The ID is
// assigned by the store.
type TransactionCreate struct {
	Date     string          `json:"date"`
	Amount   decimal.Decimal `json:"amount"`
	Type     TransactionType `json:"type"`
	Category string          `json:"category"`
	Note     string          `json:"note,omitempty"`
}

// TransactionFilters narrows a transaction listing. Zero values mean
// "no filter"; pagination defaults are applied by the repository.
type TransactionFilters struct {
	StartDate string
	EndDate   string
	Type      *TransactionType
	Page      int32
	PageSize  int32
}

const (
	DefaultPageSize = 100
	MaxPageSize     = 500
)

// Validation constants
const (
	MaxCategoryLength = 100
	MaxNoteLength     = 500
)

// SeedCategories is the fixed starting category set. Users may create new
// categories ad hoc; a running session keeps the union.
var SeedCategories = []string{
	"Food", "Transport", "Entertainment", "Salary", "Bills",
	"Housing", "Education", "Shopping", "Health", "Other",
}

// ParseDate validates an ISO calendar date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// TransactionRepository is the persistence contract for transactions.
// Username scopes records to an authenticated user; the empty string is the
// anonymous/default scope.
type TransactionRepository interface {
	Create(username string, create *TransactionCreate) (*Transaction, error)
	List(username string, filters *TransactionFilters) ([]*Transaction, error)
	ListByYear(username string, year int) ([]*Transaction, error)
	Delete(username string, id int64) error
}
