// Package core provides the ledger domain types and input parsing.
//
// This file contains the parsers for the integer arguments accepted on the
// command line: signed amounts in minor units, record ids and optional
// month/year numbers where zero means "current".
package core

import (
	"strconv"
	"strings"
)

// ParseAmount converts a signed integer string to an Amount.
//
// Amounts are whole minor units, so "12.50" is rejected while "-1250" is fine.
// A leading "+" is accepted. Whitespace around the value is ignored.
//
// Examples:
//   ParseAmount("500")   -> 500, nil
//   ParseAmount("-1000") -> -1000, nil
//   ParseAmount("0")     -> 0, nil
//   ParseAmount("1.5")   -> 0, ErrInvalidAmount
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return Amount(v), nil
}

// ParseID parses a positive record id.
func ParseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id < 1 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// ParseMonth parses an optional month argument, 0 through 12.
func ParseMonth(s string) (int, error) {
	m, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || m < 0 || m > 12 {
		return 0, ErrInvalidMonth
	}
	return m, nil
}

// ParseYear parses an optional year argument; 0 or any positive year.
func ParseYear(s string) (int, error) {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || y < 0 {
		return 0, ErrInvalidYear
	}
	return y, nil
}

func (a Amount) String() string {
	return strconv.FormatInt(int64(a), 10)
}
