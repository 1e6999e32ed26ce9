package core

import (
	"errors"
	"strings"
)

type (
	// Amount is a signed value in minor currency units. Negative amounts are expenses.
	Amount int64

	// Period identifies one calendar month of one year.
	Period struct {
		Month int // 1-12
		Year  int
	}

	Month struct {
		ID    int64
		Month int
		Year  int
	}

	Entry struct {
		ID        int64
		Name      string
		Amount    Amount
		IsExpense bool
		Month     Month
	}

	// Static is a template entry copied into every month created after it.
	Static struct {
		ID        int64
		Name      string
		Amount    Amount
		IsExpense bool
	}
)

const maxNameLength = 200

var (
	ErrInvalidMonth   = errors.New("invalid month")
	ErrInvalidYear    = errors.New("invalid year")
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidID      = errors.New("invalid id")
	ErrEmptyName      = errors.New("empty name")
	ErrNameTooLong    = errors.New("name too long (max 200 characters)")
	ErrStaticNotFound = errors.New("static not found")
)

// IsExpense reports whether the amount is an expense. Zero is not.
func (a Amount) IsExpense() bool {
	return a < 0
}

// Period returns the calendar month the record belongs to.
func (m Month) Period() Period {
	return Period{Month: m.Month, Year: m.Year}
}

func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return ErrInvalidMonth
	}
	if p.Year < 1 {
		return ErrInvalidYear
	}
	return nil
}

// ValidateName checks the label shared by entries and statics.
func ValidateName(name string) error {
	if len(strings.TrimSpace(name)) == 0 {
		return ErrEmptyName
	}
	if len(name) > maxNameLength {
		return ErrNameTooLong
	}
	return nil
}

// NewStatic builds a static template with its expense flag derived from the amount.
func NewStatic(name string, amount Amount) Static {
	return Static{Name: name, Amount: amount, IsExpense: amount.IsExpense()}
}

// EntryFrom copies a static into an entry of the given month.
func EntryFrom(s Static, m Month) Entry {
	return Entry{Name: s.Name, Amount: s.Amount, IsExpense: s.Amount.IsExpense(), Month: m}
}

func (s Static) Validate() error {
	return ValidateName(s.Name)
}

// IsInputError reports whether err stems from rejected user input rather than
// from the store.
func IsInputError(err error) bool {
	for _, target := range []error{
		ErrInvalidMonth,
		ErrInvalidYear,
		ErrInvalidAmount,
		ErrInvalidID,
		ErrEmptyName,
		ErrNameTooLong,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
