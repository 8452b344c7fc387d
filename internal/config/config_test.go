package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("GUEBER")
	cfg.Invoice.DefaultTaxRate = 15
	cfg.CompanyDefaults = map[string]string{"gueber": "efectivo"}

	path := filepath.Join(t.TempDir(), "facto.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Business.Name, got.Business.Name)
	assert.InDelta(t, cfg.Invoice.DefaultTaxRate, got.Invoice.DefaultTaxRate, 0.001)
	assert.Equal(t, cfg.Invoice.NumberSeries, got.Invoice.NumberSeries)
	assert.Equal(t, cfg.CompanyDefaults, got.CompanyDefaults)
	assert.Equal(t, cfg.PaymentMethods, got.PaymentMethods)
	assert.InDelta(t, cfg.Stock.CriticalLevel, got.Stock.CriticalLevel, 0.001)
	assert.Equal(t, cfg.Posting, got.Posting)
}

func TestDefaults(t *testing.T) {
	cfg := Default("Mi Empresa")

	assert.Equal(t, "Mi Empresa", cfg.Business.Name)
	assert.Zero(t, cfg.Invoice.DefaultTaxRate, "unspecified tax rate defaults to 0")
	assert.Equal(t, "001-001", cfg.Invoice.NumberSeries)
	require.Len(t, cfg.PaymentMethods, 3)
	assert.Equal(t, "efectivo", cfg.PaymentMethods[0].ID)
	assert.Equal(t, "1.1.01", cfg.PaymentMethods[0].ParentAccountCode)
	assert.InDelta(t, 5, cfg.Stock.CriticalLevel, 0.001)
	assert.InDelta(t, 10, cfg.Stock.LowLevel, 0.001)
	assert.InDelta(t, 80, cfg.Stock.HighUsagePercent, 0.001)
	assert.Equal(t, "1.1.03.01", cfg.Posting.ReceivableAccount)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("Mi Empresa")
	path := filepath.Join(t.TempDir(), "facto.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Mi Empresa")
	assert.Contains(t, contents, "number_series: 001-001")
	assert.Contains(t, contents, "id: efectivo")
	assert.Contains(t, contents, "parent_account_code: 1.1.01")
}

func TestMethodLookups(t *testing.T) {
	cfg := Default("Mi Empresa")

	m, ok := cfg.MethodByID("transferencia")
	require.True(t, ok)
	assert.Equal(t, "Transferencia", m.Name)
	assert.Equal(t, "1.1.02", m.ParentAccountCode)

	_, ok = cfg.MethodByID("bitcoin")
	assert.False(t, ok)

	ids := cfg.MethodIDs()
	assert.True(t, ids["efectivo"])
	assert.True(t, ids["cheque"])
	assert.False(t, ids["bitcoin"])

	methods := cfg.Methods()
	require.Len(t, methods, 3)
	assert.Equal(t, "efectivo", methods[0].ID)
}
