package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatInvoiceNumber(t *testing.T) {
	assert.Equal(t, "001-001-000000001", FormatInvoiceNumber("001-001", 1))
	assert.Equal(t, "002-010-000012345", FormatInvoiceNumber("002-010", 12345))
}

func TestParseInvoiceNumber(t *testing.T) {
	series, seq, err := ParseInvoiceNumber("001-001-000000123")
	require.NoError(t, err)
	assert.Equal(t, "001-001", series)
	assert.Equal(t, 123, seq)
}

func TestParseInvoiceNumber_RoundTrip(t *testing.T) {
	num := FormatInvoiceNumber("001-001", 99)
	series, seq, err := ParseInvoiceNumber(num)
	require.NoError(t, err)
	assert.Equal(t, "001-001", series)
	assert.Equal(t, 99, seq)
}

func TestParseInvoiceNumber_Invalid(t *testing.T) {
	cases := []string{"", "123", "-123", "001-001-", "001-001-abc", "001-001-000000000"}
	for _, c := range cases {
		_, _, err := ParseInvoiceNumber(c)
		assert.Error(t, err, "expected error for %q", c)
	}
}
