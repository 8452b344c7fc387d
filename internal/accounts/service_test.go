package accounts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	chart := DefaultChart()
	svc := NewService(chart)

	assert.Len(t, svc.All(), len(chart))
}

func TestGetExists(t *testing.T) {
	svc := NewService(DefaultChart())

	acct, ok := svc.Get("1.1.02.01")
	assert.True(t, ok)
	assert.Equal(t, "Banco Pichincha", acct.Name)

	_, ok = svc.Get("9.9.99")
	assert.False(t, ok)

	assert.True(t, svc.Exists("1.1.02.01"))
	assert.True(t, svc.Exists("1.1.02."), "trailing dot normalizes to the same account")
	assert.False(t, svc.Exists("9.9.99"))
}

func TestChildren(t *testing.T) {
	svc := NewService(DefaultChart())

	banks := svc.Children("1.1.02")
	require.Len(t, banks, 2)
	assert.Equal(t, "1.1.02.01", banks[0].Code)
	assert.Equal(t, "1.1.02.02", banks[1].Code)

	all := svc.Children("")
	assert.Len(t, all, len(DefaultChart()))
}

func TestSaveRoundTrip(t *testing.T) {
	chart := DefaultChart()
	svc := NewService(chart)

	dir := t.TempDir()
	err := svc.Save(dir)
	require.NoError(t, err)

	path := filepath.Join(dir, "accounts", "chart-of-accounts.csv")
	_, err = os.Stat(path)
	require.NoError(t, err)

	svc2, err := Load(dir)
	require.NoError(t, err)
	assert.Len(t, svc2.All(), len(chart))

	for _, orig := range chart {
		got, ok := svc2.Get(orig.Code)
		require.True(t, ok, "account %s should exist", orig.Code)
		assert.Equal(t, orig.Name, got.Name)
		assert.Equal(t, orig.Description, got.Description)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
