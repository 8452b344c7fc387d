package lines

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facto-dev/facto/internal/model"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestReadLines(t *testing.T) {
	input := `product_id,description,quantity,unit_price,discount_percent,tax_rate_percent,deleted
p1,Cemento Gris 50kg,2,8.50,,15,
p2,Varilla 12mm,10,15.75,5,15,
,Flete,1,30,,0,true
`
	got, err := ReadLines(strings.NewReader(input), decimal.Zero)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "p1", got[0].ProductID)
	assert.Equal(t, "2", got[0].Quantity.String())
	assert.Equal(t, "8.5", got[0].UnitPrice.String())
	assert.True(t, got[0].DiscountPct.IsZero())
	assert.Equal(t, "15", got[0].TaxRatePct.String())
	assert.False(t, got[0].Deleted)

	assert.Equal(t, "5", got[1].DiscountPct.String())

	assert.True(t, got[2].Deleted)
	assert.Equal(t, "Flete", got[2].Description)
}

func TestReadLines_DefaultTaxRate(t *testing.T) {
	input := `product_id,description,quantity,unit_price,discount_percent,tax_rate_percent,deleted
p1,Cemento,2,8.50,,,
p2,Varilla,1,15.75,,0,
`
	got, err := ReadLines(strings.NewReader(input), dec("15"))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "15", got[0].TaxRatePct.String(), "blank rate takes the configured default")
	assert.True(t, got[1].TaxRatePct.IsZero(), "explicit 0 stays 0")
}

func TestReadLines_PartialRow(t *testing.T) {
	// A row mid-entry: quantity blank. It loads as zero and is simply
	// excluded from totals downstream, never an error.
	input := `product_id,description,quantity,unit_price,discount_percent,tax_rate_percent,deleted
p1,Cemento,,8.50,,15,
`
	got, err := ReadLines(strings.NewReader(input), decimal.Zero)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Quantity.IsZero())
}

func TestReadLines_Empty(t *testing.T) {
	got, err := ReadLines(strings.NewReader(""), decimal.Zero)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadLines_BadNumber(t *testing.T) {
	input := `product_id,description,quantity,unit_price,discount_percent,tax_rate_percent,deleted
p1,Cemento,dos,8.50,,15,
`
	_, err := ReadLines(strings.NewReader(input), decimal.Zero)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "quantity")
}

func TestWriteReadRoundTrip(t *testing.T) {
	lines := []model.InvoiceLine{
		{ProductID: "p1", Description: "Cemento", Quantity: dec("2"), UnitPrice: dec("8.50"), TaxRatePct: dec("15")},
		{ProductID: "p2", Description: "Varilla, 12mm", Quantity: dec("10"), UnitPrice: dec("15.75"), DiscountPct: dec("5"), TaxRatePct: dec("15")},
		{Description: "Flete", Quantity: dec("1"), UnitPrice: dec("30"), TaxRatePct: dec("0"), Deleted: true},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteLines(&buf, lines))

	got, err := ReadLines(&buf, decimal.Zero)
	require.NoError(t, err)
	require.Len(t, got, 3)

	for i := range lines {
		assert.Equal(t, lines[i].ProductID, got[i].ProductID)
		assert.Equal(t, lines[i].Description, got[i].Description)
		assert.True(t, lines[i].Quantity.Equal(got[i].Quantity))
		assert.True(t, lines[i].UnitPrice.Equal(got[i].UnitPrice))
		assert.True(t, lines[i].DiscountPct.Equal(got[i].DiscountPct))
		assert.True(t, lines[i].TaxRatePct.Equal(got[i].TaxRatePct))
		assert.Equal(t, lines[i].Deleted, got[i].Deleted)
	}
}
