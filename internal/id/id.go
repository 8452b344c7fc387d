package id

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatInvoiceNumber returns an invoice number like "001-001-000000123":
// a series prefix (establishment and emission point) plus a 9-digit
// sequential.
func FormatInvoiceNumber(series string, seq int) string {
	return fmt.Sprintf("%s-%09d", series, seq)
}

// ParseInvoiceNumber parses "001-001-000000123" into its series prefix
// and sequential number.
func ParseInvoiceNumber(number string) (series string, seq int, err error) {
	i := strings.LastIndex(number, "-")
	if i <= 0 || i == len(number)-1 {
		return "", 0, fmt.Errorf("invalid invoice number format: %q", number)
	}

	seq, err = strconv.Atoi(number[i+1:])
	if err != nil {
		return "", 0, fmt.Errorf("invalid sequential in invoice number %q: %w", number, err)
	}
	if seq <= 0 {
		return "", 0, fmt.Errorf("sequential must be positive in invoice number %q", number)
	}

	return number[:i], seq, nil
}
