package catalog

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/facto-dev/facto/internal/model"
)

const (
	numFields = 4
	colID     = 0
	colName   = 1
	colPrice  = 2
	colStock  = 3
)

// ReadProducts reads catalog.csv.
func ReadProducts(r io.Reader) ([]model.Product, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading catalog CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var products []model.Product
	for i, rec := range records[1:] {
		p, err := UnmarshalProduct(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		products = append(products, p)
	}
	return products, nil
}

// WriteProducts writes catalog.csv.
func WriteProducts(w io.Writer, products []model.Product) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"product_id", "name", "unit_price", "current_stock"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, p := range products {
		if err := cw.Write(MarshalProduct(p)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalProduct converts a Product to a CSV row.
func MarshalProduct(p model.Product) []string {
	row := make([]string, numFields)
	row[colID] = p.ID
	row[colName] = p.Name
	row[colPrice] = p.UnitPrice.StringFixed(2)
	row[colStock] = p.CurrentStock.String()
	return row
}

// UnmarshalProduct converts a CSV row to a Product.
func UnmarshalProduct(record []string) (model.Product, error) {
	if len(record) != numFields {
		return model.Product{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}
	if record[colID] == "" {
		return model.Product{}, fmt.Errorf("empty product_id")
	}

	price, err := decimal.NewFromString(record[colPrice])
	if err != nil {
		return model.Product{}, fmt.Errorf("parsing unit_price %q: %w", record[colPrice], err)
	}

	stock := decimal.Zero
	if record[colStock] != "" {
		stock, err = decimal.NewFromString(record[colStock])
		if err != nil {
			return model.Product{}, fmt.Errorf("parsing current_stock %q: %w", record[colStock], err)
		}
	}

	return model.Product{
		ID:           record[colID],
		Name:         record[colName],
		UnitPrice:    price,
		CurrentStock: stock,
	}, nil
}
