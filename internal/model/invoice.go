package model

import "github.com/shopspring/decimal"

// InvoiceLine is one row of an invoice as entered in the form. Amount
// fields are recomputed from it on every change, never stored on it.
type InvoiceLine struct {
	ProductID   string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
	DiscountPct decimal.Decimal // 0..100
	TaxRatePct  decimal.Decimal // 0..100
	Deleted     bool            // marked for deletion, excluded from totals
}

// LineAmounts holds the derived amounts for a single line, rounded to
// 2 decimal places.
type LineAmounts struct {
	Net   decimal.Decimal
	Tax   decimal.Decimal
	Total decimal.Decimal
}

// TaxBucket aggregates the taxable base and tax for one exact rate.
type TaxBucket struct {
	RatePct decimal.Decimal
	Base    decimal.Decimal
	Tax     decimal.Decimal
}

// InvoiceTotals is the aggregation over all included lines. Buckets are
// ordered by rate, highest first, matching the totals panel display.
type InvoiceTotals struct {
	Subtotal   decimal.Decimal
	TaxByRate  []TaxBucket
	TotalTax   decimal.Decimal
	GrandTotal decimal.Decimal
}
