package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/facto-dev/facto/internal/model"
)

// Config represents the top-level facto.yaml configuration.
type Config struct {
	Business        BusinessConfig        `yaml:"business"`
	Invoice         InvoiceConfig         `yaml:"invoice"`
	PaymentMethods  []PaymentMethodConfig `yaml:"payment_methods,omitempty"`
	CompanyDefaults map[string]string     `yaml:"company_defaults,omitempty"` // company id -> payment method id
	Stock           StockConfig           `yaml:"stock"`
	Posting         PostingConfig         `yaml:"posting"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name string `yaml:"name"`
}

// InvoiceConfig holds invoice-entry defaults.
type InvoiceConfig struct {
	DefaultTaxRate float64 `yaml:"default_tax_rate"` // percent applied when a line leaves the rate blank
	NumberSeries   string  `yaml:"number_series"`    // "EEE-PPP" establishment/emission-point prefix
}

// PaymentMethodConfig maps a payment method to the parent account whose
// descendants are valid for it. An empty parent code means no filtering.
type PaymentMethodConfig struct {
	ID                string `yaml:"id"`
	Name              string `yaml:"name"`
	ParentAccountCode string `yaml:"parent_account_code,omitempty"`
}

// StockConfig controls stock warning thresholds.
type StockConfig struct {
	CriticalLevel    float64 `yaml:"critical_level"`
	LowLevel         float64 `yaml:"low_level"`
	HighUsagePercent float64 `yaml:"high_usage_percent"`
}

// PostingConfig names the accounts a finalized invoice posts to.
type PostingConfig struct {
	ReceivableAccount string `yaml:"receivable_account"`
	RevenueAccount    string `yaml:"revenue_account"`
	TaxAccount        string `yaml:"tax_account"`
}

// Load reads a facto.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name: businessName,
		},
		Invoice: InvoiceConfig{
			DefaultTaxRate: 0,
			NumberSeries:   "001-001",
		},
		PaymentMethods: []PaymentMethodConfig{
			{ID: "efectivo", Name: "Efectivo", ParentAccountCode: "1.1.01"},
			{ID: "transferencia", Name: "Transferencia", ParentAccountCode: "1.1.02"},
			{ID: "cheque", Name: "Cheque", ParentAccountCode: "1.1.02"},
		},
		Stock: StockConfig{
			CriticalLevel:    5,
			LowLevel:         10,
			HighUsagePercent: 80,
		},
		Posting: PostingConfig{
			ReceivableAccount: "1.1.03.01",
			RevenueAccount:    "4.1.01",
			TaxAccount:        "2.1.01",
		},
	}
}

// Methods converts the configured payment methods to model records,
// preserving configuration order.
func (c *Config) Methods() []model.PaymentMethod {
	methods := make([]model.PaymentMethod, len(c.PaymentMethods))
	for i, m := range c.PaymentMethods {
		methods[i] = model.PaymentMethod{
			ID:                m.ID,
			Name:              m.Name,
			ParentAccountCode: m.ParentAccountCode,
		}
	}
	return methods
}

// MethodByID returns the configured payment method with the given ID.
func (c *Config) MethodByID(id string) (model.PaymentMethod, bool) {
	for _, m := range c.PaymentMethods {
		if m.ID == id {
			return model.PaymentMethod{
				ID:                m.ID,
				Name:              m.Name,
				ParentAccountCode: m.ParentAccountCode,
			}, true
		}
	}
	return model.PaymentMethod{}, false
}

// MethodIDs returns the set of configured payment method IDs.
func (c *Config) MethodIDs() map[string]bool {
	ids := make(map[string]bool, len(c.PaymentMethods))
	for _, m := range c.PaymentMethods {
		ids[m.ID] = true
	}
	return ids
}
