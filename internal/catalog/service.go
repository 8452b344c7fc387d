// Package catalog provides product lookup, name autocomplete, and
// stock-level checks for invoice lines.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/facto-dev/facto/internal/config"
	"github.com/facto-dev/facto/internal/model"
)

// MinQueryLen is the shortest autocomplete query that returns results.
const MinQueryLen = 2

// StockLevel classifies the outcome of a stock check.
type StockLevel string

const (
	StockOK           StockLevel = "ok"
	StockHighUsage    StockLevel = "high-usage"
	StockLow          StockLevel = "low"
	StockCritical     StockLevel = "critical"
	StockInsufficient StockLevel = "insufficient"
)

// StockCheck is the result of checking a requested quantity against a
// product's current stock. Shortage is zero unless Level is
// StockInsufficient.
type StockCheck struct {
	Level     StockLevel
	Product   model.Product
	Requested decimal.Decimal
	Available decimal.Decimal
	Shortage  decimal.Decimal
	Message   string
}

// Blocking reports whether the check should stop the invoice from being
// saved. Only an insufficient stock result blocks; the warning and info
// levels are advisory.
func (c StockCheck) Blocking() bool {
	return c.Level == StockInsufficient
}

// Service provides in-memory lookup over the product catalog.
type Service struct {
	products   []model.Product
	byID       map[string]model.Product
	thresholds config.StockConfig
}

// NewService creates a Service from a slice of products.
func NewService(products []model.Product, thresholds config.StockConfig) *Service {
	byID := make(map[string]model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &Service{products: products, byID: byID, thresholds: thresholds}
}

// Load reads products/catalog.csv from a data root and returns a Service.
func Load(dataRoot string, thresholds config.StockConfig) (*Service, error) {
	path := filepath.Join(dataRoot, "products", "catalog.csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening product catalog: %w", err)
	}
	defer f.Close()

	products, err := ReadProducts(f)
	if err != nil {
		return nil, fmt.Errorf("reading product catalog: %w", err)
	}
	return NewService(products, thresholds), nil
}

// All returns all products in file order.
func (s *Service) All() []model.Product {
	return s.products
}

// Get returns a product by ID.
func (s *Service) Get(id string) (model.Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// Search returns up to limit products whose names match the query,
// case-insensitively. Name-prefix matches rank before substring matches;
// within each group catalog order is preserved. Queries shorter than
// MinQueryLen return nothing.
func (s *Service) Search(query string, limit int) []model.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < MinQueryLen || limit <= 0 {
		return nil
	}

	var prefix, substring []model.Product
	for _, p := range s.products {
		name := strings.ToLower(p.Name)
		switch {
		case strings.HasPrefix(name, q):
			prefix = append(prefix, p)
		case strings.Contains(name, q):
			substring = append(substring, p)
		}
	}

	results := append(prefix, substring...)
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// CheckStock evaluates a requested quantity against a product's current
// stock. Unknown products and non-positive quantities yield no result.
func (s *Service) CheckStock(productID string, quantity decimal.Decimal) (StockCheck, bool) {
	product, ok := s.byID[productID]
	if !ok || !quantity.IsPositive() {
		return StockCheck{}, false
	}

	available := product.CurrentStock
	check := StockCheck{
		Product:   product,
		Requested: quantity,
		Available: available,
		Shortage:  decimal.Zero,
	}

	critical := decimal.NewFromFloat(s.thresholds.CriticalLevel)
	low := decimal.NewFromFloat(s.thresholds.LowLevel)
	highUsage := decimal.NewFromFloat(s.thresholds.HighUsagePercent).Div(decimal.NewFromInt(100))

	switch {
	case available.LessThan(quantity):
		check.Level = StockInsufficient
		check.Shortage = quantity.Sub(available)
		check.Message = fmt.Sprintf("%s: requested %s, available %s, short %s",
			product.Name, quantity, available, check.Shortage)
	case available.LessThanOrEqual(critical):
		check.Level = StockCritical
		check.Message = fmt.Sprintf("%s: only %s units left, restock urgently", product.Name, available)
	case available.LessThanOrEqual(low):
		check.Level = StockLow
		check.Message = fmt.Sprintf("%s: %s units left, plan restocking", product.Name, available)
	case quantity.GreaterThan(available.Mul(highUsage)):
		pct := quantity.Div(available).Mul(decimal.NewFromInt(100)).Round(0)
		check.Level = StockHighUsage
		check.Message = fmt.Sprintf("%s: using %s%% of available stock (%s of %s units)",
			product.Name, pct, quantity, available)
	default:
		check.Level = StockOK
	}
	return check, true
}
