// Package lines reads and writes invoice line files (lines.csv).
package lines

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/facto-dev/facto/internal/model"
)

// Header is the CSV header for an invoice lines file.
const Header = "product_id,description,quantity,unit_price,discount_percent,tax_rate_percent,deleted"

const (
	numFields   = 7
	colProduct  = 0
	colDesc     = 1
	colQty      = 2
	colPrice    = 3
	colDiscount = 4
	colTaxRate  = 5
	colDeleted  = 6
)

// ReadLines reads all invoice lines from a lines.csv reader. Rows that
// leave the tax rate blank get defaultTaxRate; a blank discount is zero.
func ReadLines(r io.Reader, defaultTaxRate decimal.Decimal) ([]model.InvoiceLine, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading lines CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var lines []model.InvoiceLine
	for i, rec := range records[1:] {
		line, err := UnmarshalLine(rec, defaultTaxRate)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// WriteLines writes invoice lines (including header).
func WriteLines(w io.Writer, lines []model.InvoiceLine) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, line := range lines {
		if err := cw.Write(MarshalLine(line)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalLine converts an InvoiceLine to a CSV row.
func MarshalLine(line model.InvoiceLine) []string {
	row := make([]string, numFields)
	row[colProduct] = line.ProductID
	row[colDesc] = line.Description
	row[colQty] = line.Quantity.String()
	row[colPrice] = line.UnitPrice.String()

	if !line.DiscountPct.IsZero() {
		row[colDiscount] = line.DiscountPct.String()
	}
	row[colTaxRate] = line.TaxRatePct.String()

	if line.Deleted {
		row[colDeleted] = "true"
	}
	return row
}

// UnmarshalLine converts a CSV row to an InvoiceLine. Blank quantity and
// price parse as zero so partially entered rows load without error; the
// totals calculator excludes them.
func UnmarshalLine(record []string, defaultTaxRate decimal.Decimal) (model.InvoiceLine, error) {
	if len(record) != numFields {
		return model.InvoiceLine{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	qty, err := parseDecimal(record[colQty])
	if err != nil {
		return model.InvoiceLine{}, fmt.Errorf("parsing quantity %q: %w", record[colQty], err)
	}

	price, err := parseDecimal(record[colPrice])
	if err != nil {
		return model.InvoiceLine{}, fmt.Errorf("parsing unit_price %q: %w", record[colPrice], err)
	}

	discount, err := parseDecimal(record[colDiscount])
	if err != nil {
		return model.InvoiceLine{}, fmt.Errorf("parsing discount_percent %q: %w", record[colDiscount], err)
	}

	taxRate := defaultTaxRate
	if record[colTaxRate] != "" {
		taxRate, err = decimal.NewFromString(record[colTaxRate])
		if err != nil {
			return model.InvoiceLine{}, fmt.Errorf("parsing tax_rate_percent %q: %w", record[colTaxRate], err)
		}
	}

	deleted := false
	if record[colDeleted] != "" {
		deleted, err = strconv.ParseBool(record[colDeleted])
		if err != nil {
			return model.InvoiceLine{}, fmt.Errorf("parsing deleted %q: %w", record[colDeleted], err)
		}
	}

	return model.InvoiceLine{
		ProductID:   record[colProduct],
		Description: record[colDesc],
		Quantity:    qty,
		UnitPrice:   price,
		DiscountPct: discount,
		TaxRatePct:  taxRate,
		Deleted:     deleted,
	}, nil
}

func parseDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
