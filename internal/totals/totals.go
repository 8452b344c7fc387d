// Package totals computes per-line amounts and invoice-level totals.
// Everything here is pure: same lines in, same totals out, no state.
package totals

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/facto-dev/facto/internal/model"
)

// Input range violations. These indicate a data-entry or programming bug
// upstream; amounts are never silently clamped.
var (
	ErrQuantityRange = errors.New("quantity must be >= 0")
	ErrPriceRange    = errors.New("unit price must be >= 0")
	ErrDiscountRange = errors.New("discount percent must be in [0, 100]")
	ErrTaxRateRange  = errors.New("tax rate percent must be in [0, 100]")
)

var oneHundred = decimal.NewFromInt(100)

// Included reports whether a line participates in totals: not marked for
// deletion and carrying a positive quantity and unit price. Excluded
// lines contribute nothing; they are not treated as zero-valued.
func Included(line model.InvoiceLine) bool {
	return !line.Deleted && line.Quantity.IsPositive() && line.UnitPrice.IsPositive()
}

// ComputeLine derives the amounts for a single line: gross is quantity
// times price, the discount comes off the gross, tax applies to the
// discounted net. Intermediates keep full precision; Net and Tax are
// rounded to 2 decimal places half-away-from-zero at the end, and Total
// is their sum so that line totals always add up to the invoice total.
func ComputeLine(line model.InvoiceLine) (model.LineAmounts, error) {
	if err := validate(line); err != nil {
		return model.LineAmounts{}, err
	}

	gross := line.Quantity.Mul(line.UnitPrice)
	discount := gross.Mul(line.DiscountPct).Div(oneHundred)
	net := gross.Sub(discount)
	tax := net.Mul(line.TaxRatePct).Div(oneHundred)

	netR := net.Round(2)
	taxR := tax.Round(2)
	return model.LineAmounts{
		Net:   netR,
		Tax:   taxR,
		Total: netR.Add(taxR),
	}, nil
}

// Compute aggregates totals over an invoice's lines. Deleted lines and
// lines without a positive quantity and price are skipped entirely. The
// tax breakdown groups by exact rate value; 15 and 14.9999 are distinct
// buckets. An empty or fully excluded input yields all-zero totals.
func Compute(lines []model.InvoiceLine) (model.InvoiceTotals, error) {
	t := model.InvoiceTotals{
		Subtotal:   decimal.Zero,
		TotalTax:   decimal.Zero,
		GrandTotal: decimal.Zero,
	}

	buckets := make(map[string]*model.TaxBucket)
	for i, line := range lines {
		if !Included(line) {
			continue
		}

		amounts, err := ComputeLine(line)
		if err != nil {
			return model.InvoiceTotals{}, fmt.Errorf("line %d: %w", i+1, err)
		}

		t.Subtotal = t.Subtotal.Add(amounts.Net)
		t.TotalTax = t.TotalTax.Add(amounts.Tax)

		key := line.TaxRatePct.String()
		b, ok := buckets[key]
		if !ok {
			b = &model.TaxBucket{RatePct: line.TaxRatePct, Base: decimal.Zero, Tax: decimal.Zero}
			buckets[key] = b
		}
		b.Base = b.Base.Add(amounts.Net)
		b.Tax = b.Tax.Add(amounts.Tax)
	}

	t.TaxByRate = make([]model.TaxBucket, 0, len(buckets))
	for _, b := range buckets {
		t.TaxByRate = append(t.TaxByRate, *b)
	}
	// Highest rate first, the order the totals panel lists them.
	sort.Slice(t.TaxByRate, func(i, j int) bool {
		return t.TaxByRate[i].RatePct.GreaterThan(t.TaxByRate[j].RatePct)
	})

	t.GrandTotal = t.Subtotal.Add(t.TotalTax)
	return t, nil
}

func validate(line model.InvoiceLine) error {
	if line.Quantity.IsNegative() {
		return fmt.Errorf("%w, got %s", ErrQuantityRange, line.Quantity)
	}
	if line.UnitPrice.IsNegative() {
		return fmt.Errorf("%w, got %s", ErrPriceRange, line.UnitPrice)
	}
	if line.DiscountPct.IsNegative() || line.DiscountPct.GreaterThan(oneHundred) {
		return fmt.Errorf("%w, got %s", ErrDiscountRange, line.DiscountPct)
	}
	if line.TaxRatePct.IsNegative() || line.TaxRatePct.GreaterThan(oneHundred) {
		return fmt.Errorf("%w, got %s", ErrTaxRateRange, line.TaxRatePct)
	}
	return nil
}
