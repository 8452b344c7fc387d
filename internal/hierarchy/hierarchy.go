// Package hierarchy implements the dotted-code chart-of-accounts
// hierarchy: "1.1.02.01" is a descendant of "1.1.02" but not of "1.1.0".
package hierarchy

import (
	"strings"

	"github.com/facto-dev/facto/internal/model"
)

// NormalizeCode strips a single trailing dot from a code. Configuration
// data sometimes carries parent codes as "1.1.02.".
func NormalizeCode(code string) string {
	return strings.TrimSuffix(code, ".")
}

// ValidCode reports whether code is a well-formed dotted account code:
// one or more non-empty all-digit segments separated by dots.
func ValidCode(code string) bool {
	if code == "" {
		return false
	}
	for _, seg := range strings.Split(code, ".") {
		if seg == "" {
			return false
		}
		for _, r := range seg {
			if r < '0' || r > '9' {
				return false
			}
		}
	}
	return true
}

// IsDescendant reports whether accountCode sits anywhere below
// parentCode. Both codes must already be normalized. The test is against
// the literal parent followed by a dot, so "1.10" is not a descendant of
// "1.1", and a code is never a descendant of itself. Malformed codes
// match nothing in either direction.
func IsDescendant(accountCode, parentCode string) bool {
	if !ValidCode(accountCode) || !ValidCode(parentCode) {
		return false
	}
	return accountCode != parentCode && strings.HasPrefix(accountCode, parentCode+".")
}

// FilterByParent returns the accounts below parentCode, preserving the
// input order. An empty parent code means no restriction: the input is
// returned unchanged. An empty result is returned as-is; whether to fall
// back to the full list is the caller's policy.
func FilterByParent(accounts []model.Account, parentCode string) []model.Account {
	parent := NormalizeCode(parentCode)
	if parent == "" {
		return accounts
	}

	var filtered []model.Account
	for _, a := range accounts {
		if IsDescendant(NormalizeCode(a.Code), parent) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// ResolveDefaultPaymentMethod returns the configured default payment
// method for a company, but only when that method is among the available
// ones. The second return is false when the company has no usable
// default; picking a first-available fallback is up to the caller.
func ResolveDefaultPaymentMethod(companyID string, defaults map[string]string, available map[string]bool) (string, bool) {
	methodID, ok := defaults[companyID]
	if !ok || methodID == "" {
		return "", false
	}
	if !available[methodID] {
		return "", false
	}
	return methodID, true
}
