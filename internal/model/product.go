package model

import "github.com/shopspring/decimal"

// Product is one entry in the product catalog.
type Product struct {
	ID           string
	Name         string
	UnitPrice    decimal.Decimal
	CurrentStock decimal.Decimal
}
