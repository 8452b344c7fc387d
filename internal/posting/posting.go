// Package posting turns a computed invoice into a balanced double-entry
// draft: receivable against revenue plus tax collected per rate.
package posting

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/facto-dev/facto/internal/config"
	"github.com/facto-dev/facto/internal/id"
	"github.com/facto-dev/facto/internal/model"
)

// Leg is one side of a double-entry draft.
type Leg struct {
	AccountCode string
	Description string
	Debit       decimal.Decimal // zero if credit side
	Credit      decimal.Decimal // zero if debit side
}

// Entry is the draft posting for one invoice.
type Entry struct {
	Number string // invoice number, "001-001-000000123"
	Legs   []Leg
}

// BuildEntry drafts the posting for computed invoice totals: debit the
// receivable for the grand total, credit revenue for the subtotal, and
// credit the tax account once per nonzero tax bucket. Zero totals
// produce an entry with no legs.
func BuildEntry(number string, totals model.InvoiceTotals, cfg config.PostingConfig) Entry {
	e := Entry{Number: number}
	if totals.GrandTotal.IsZero() {
		return e
	}

	e.Legs = append(e.Legs, Leg{
		AccountCode: cfg.ReceivableAccount,
		Description: "Invoice " + number,
		Debit:       totals.GrandTotal,
		Credit:      decimal.Zero,
	})
	e.Legs = append(e.Legs, Leg{
		AccountCode: cfg.RevenueAccount,
		Description: "Invoice " + number,
		Debit:       decimal.Zero,
		Credit:      totals.Subtotal,
	})
	for _, b := range totals.TaxByRate {
		if b.Tax.IsZero() {
			continue
		}
		e.Legs = append(e.Legs, Leg{
			AccountCode: cfg.TaxAccount,
			Description: fmt.Sprintf("Invoice %s tax %s%%", number, b.RatePct),
			Debit:       decimal.Zero,
			Credit:      b.Tax,
		})
	}
	return e
}

// ValidationError describes a single invariant violation in a draft.
type ValidationError struct {
	Number      string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s]: %s", e.Number, e.Description)
}

// AccountChecker tests whether an account code exists in the chart of
// accounts.
type AccountChecker interface {
	Exists(code string) bool
}

// Validate enforces the posting invariants on a draft entry: a parseable
// invoice number, at least two legs, exactly one side per leg, known
// accounts, amounts with at most 2 decimal places, and debits equal to
// credits.
func Validate(e Entry, accounts AccountChecker) []ValidationError {
	var errs []ValidationError

	if _, _, err := id.ParseInvoiceNumber(e.Number); err != nil {
		errs = append(errs, ValidationError{
			Number:      e.Number,
			Description: fmt.Sprintf("invalid invoice number: %v", err),
		})
	}

	if len(e.Legs) < 2 {
		errs = append(errs, ValidationError{
			Number:      e.Number,
			Description: fmt.Sprintf("entry needs at least 2 legs, got %d", len(e.Legs)),
		})
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	hundred := decimal.NewFromInt(100)

	for i, leg := range e.Legs {
		totalDebit = totalDebit.Add(leg.Debit)
		totalCredit = totalCredit.Add(leg.Credit)

		hasDebit := !leg.Debit.IsZero()
		hasCredit := !leg.Credit.IsZero()
		if hasDebit == hasCredit {
			errs = append(errs, ValidationError{
				Number:      e.Number,
				Description: fmt.Sprintf("leg %d must have exactly one of debit or credit", i+1),
			})
		}

		if !accounts.Exists(leg.AccountCode) {
			errs = append(errs, ValidationError{
				Number:      e.Number,
				Description: fmt.Sprintf("leg %d: unknown account %s", i+1, leg.AccountCode),
			})
		}

		if !leg.Debit.IsZero() && !leg.Debit.Mul(hundred).Equal(leg.Debit.Mul(hundred).Floor()) {
			errs = append(errs, ValidationError{
				Number:      e.Number,
				Description: fmt.Sprintf("leg %d: debit %s has more than 2 decimal places", i+1, leg.Debit),
			})
		}
		if !leg.Credit.IsZero() && !leg.Credit.Mul(hundred).Equal(leg.Credit.Mul(hundred).Floor()) {
			errs = append(errs, ValidationError{
				Number:      e.Number,
				Description: fmt.Sprintf("leg %d: credit %s has more than 2 decimal places", i+1, leg.Credit),
			})
		}
	}

	if !totalDebit.Equal(totalCredit) {
		errs = append(errs, ValidationError{
			Number: e.Number,
			Description: fmt.Sprintf("debits (%s) != credits (%s)",
				totalDebit.StringFixed(2), totalCredit.StringFixed(2)),
		})
	}

	return errs
}
