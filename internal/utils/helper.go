package utils

import (
	"fmt"
	"strings"
)

func StrPtr(s string) *string {
	return &s
}

func UintPtr(n uint) *uint {
	return &n
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// PtrStringOr returns the pointed-to string or the fallback when nil.
// The list views render missing suppliers as "N/A".
func PtrStringOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

// FormatMoney renders an amount with two decimal places.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}

// NormalizeName trims surrounding whitespace from a user-supplied name.
func NormalizeName(s string) string {
	return strings.TrimSpace(s)
}
