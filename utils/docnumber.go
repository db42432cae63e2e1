package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Document number prefixes, one per document type.
const (
	PrefixOrder         = "CMD"
	PrefixQuote         = "DEV"
	PrefixReceptionSlip = "BR"
	PrefixReturnSlip    = "BRT"
)

// DocumentNumber is a parsed document reference like "DEV-2026-0042".
type DocumentNumber struct {
	Prefix   string
	Year     int
	Sequence int
}

// FormatDocumentNumber builds the canonical document reference string.
func FormatDocumentNumber(prefix string, year, sequence int) string {
	return fmt.Sprintf("%s-%d-%04d", prefix, year, sequence)
}

// ParseDocumentNumber parses a reference like "CMD-2026-0012". Returns an
// error when the string doesn't match the prefix-year-sequence pattern.
func ParseDocumentNumber(s string) (*DocumentNumber, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid document number %q: expected PREFIX-YEAR-SEQ", s)
	}

	prefix := parts[0]
	if prefix == "" {
		return nil, fmt.Errorf("invalid document number %q: empty prefix", s)
	}

	year, err := strconv.Atoi(parts[1])
	if err != nil || year < 2000 || year > 2999 {
		return nil, fmt.Errorf("invalid document number %q: bad year", s)
	}

	seq, err := strconv.Atoi(parts[2])
	if err != nil || seq <= 0 {
		return nil, fmt.Errorf("invalid document number %q: bad sequence", s)
	}

	return &DocumentNumber{Prefix: prefix, Year: year, Sequence: seq}, nil
}
