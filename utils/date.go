package utils

import (
	"errors"
	"time"
)

// LedgerDateLayout is the canonical zero-padded form ledger dates are
// stored and compared in.
const LedgerDateLayout = "01-02-2006"

var (
	ErrBadDateFormat = errors.New("date must be in MM-DD-YYYY format")
	ErrFutureDate    = errors.New("date must not be in the future")
)

// ParseLedgerDate validates a MM-DD-YYYY date string and returns its
// canonical form. The date must be zero-padded (time.Parse alone would
// accept "6-1-2024") and must not be later than today.
func ParseLedgerDate(s string) (string, error) {
	return parseLedgerDateAt(s, time.Now())
}

func parseLedgerDateAt(s string, now time.Time) (string, error) {
	parsed, err := time.Parse(LedgerDateLayout, s)
	if err != nil || parsed.Format(LedgerDateLayout) != s {
		return "", ErrBadDateFormat
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if parsed.After(today) {
		return "", ErrFutureDate
	}
	return s, nil
}
