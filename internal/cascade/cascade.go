// Package cascade applies the form-level policy around the pure
// hierarchy filter: which payment method an invoice form starts with and
// which accounts its account select may offer.
package cascade

import (
	"github.com/rs/zerolog"

	"github.com/facto-dev/facto/internal/accounts"
	"github.com/facto-dev/facto/internal/config"
	"github.com/facto-dev/facto/internal/hierarchy"
	"github.com/facto-dev/facto/internal/logging"
	"github.com/facto-dev/facto/internal/model"
)

// Service resolves payment-method defaults and account options against a
// config and a chart of accounts.
type Service struct {
	cfg   *config.Config
	chart *accounts.Service
	log   zerolog.Logger
}

// AccountOptions is what the account select should offer for a payment
// method. Suggested is the preselected option when the filter applied;
// it is empty when the full chart is shown.
type AccountOptions struct {
	Accounts  []model.Account
	Filtered  bool
	Suggested model.Account
}

// NewService creates a cascade Service. Chart entries with malformed
// codes are logged once as data-quality warnings; they can never match a
// parent filter.
func NewService(cfg *config.Config, chart *accounts.Service) *Service {
	s := &Service{cfg: cfg, chart: chart, log: logging.WithComponent("cascade")}
	for _, a := range chart.All() {
		if !hierarchy.ValidCode(hierarchy.NormalizeCode(a.Code)) {
			s.log.Warn().Str("code", a.Code).Str("name", a.Name).
				Msg("malformed account code in chart, excluded from hierarchy filtering")
		}
	}
	return s
}

// SuggestMethod picks the payment method an invoice form should show for
// a company. In edit mode the current selection always wins: existing
// invoices keep their values and only get filtering applied. On creation
// the company's configured default is used when it is available, falling
// back to the first configured method.
func (s *Service) SuggestMethod(companyID, currentMethodID string, editMode bool) (model.PaymentMethod, bool) {
	if editMode {
		if m, ok := s.cfg.MethodByID(currentMethodID); ok {
			return m, true
		}
		return model.PaymentMethod{}, false
	}

	if id, ok := hierarchy.ResolveDefaultPaymentMethod(companyID, s.cfg.CompanyDefaults, s.cfg.MethodIDs()); ok {
		if m, ok := s.cfg.MethodByID(id); ok {
			return m, true
		}
	}

	// First configured method is the creation-mode fallback.
	methods := s.cfg.Methods()
	if len(methods) == 0 {
		return model.PaymentMethod{}, false
	}
	return methods[0], true
}

// OptionsForMethod returns the account options for a payment method. A
// method without a configured parent account, or an unknown method,
// places no restriction and offers the full chart. A configured parent
// narrows the options to its descendants; when none exist the empty set
// is returned and a warning logged, leaving the fallback to the caller.
func (s *Service) OptionsForMethod(methodID string) AccountOptions {
	method, ok := s.cfg.MethodByID(methodID)
	if !ok || method.ParentAccountCode == "" {
		return AccountOptions{Accounts: s.chart.All()}
	}

	filtered := s.chart.Children(method.ParentAccountCode)
	opts := AccountOptions{Accounts: filtered, Filtered: true}
	if len(filtered) == 0 {
		s.log.Warn().Str("method", methodID).Str("parent", method.ParentAccountCode).
			Msg("no child accounts under configured parent")
		return opts
	}
	opts.Suggested = filtered[0]
	return opts
}
