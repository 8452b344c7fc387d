package accounts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/facto-dev/facto/internal/hierarchy"
	"github.com/facto-dev/facto/internal/model"
)

// Service provides in-memory lookup over the chart of accounts.
type Service struct {
	accounts []model.Account
	byCode   map[string]model.Account
}

// NewService creates a Service from a slice of accounts. Codes are
// normalized before indexing so "1.1.02." and "1.1.02" are the same key.
func NewService(accounts []model.Account) *Service {
	byCode := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byCode[hierarchy.NormalizeCode(a.Code)] = a
	}
	return &Service{accounts: accounts, byCode: byCode}
}

// Load reads chart-of-accounts.csv from a data root and returns a Service.
func Load(dataRoot string) (*Service, error) {
	path := filepath.Join(dataRoot, "accounts", "chart-of-accounts.csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewService(accts), nil
}

// All returns all accounts in file order.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by code.
func (s *Service) Get(code string) (model.Account, bool) {
	a, ok := s.byCode[hierarchy.NormalizeCode(code)]
	return a, ok
}

// Exists reports whether an account code exists.
func (s *Service) Exists(code string) bool {
	_, ok := s.byCode[hierarchy.NormalizeCode(code)]
	return ok
}

// Children returns the accounts below parentCode, in file order. An
// empty parent code returns the full chart.
func (s *Service) Children(parentCode string) []model.Account {
	return hierarchy.FilterByParent(s.accounts, parentCode)
}

// Save writes the chart of accounts to accounts/chart-of-accounts.csv.
func (s *Service) Save(dataRoot string) error {
	dir := filepath.Join(dataRoot, "accounts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	path := filepath.Join(dir, "chart-of-accounts.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}
