package model

// PaymentMethod describes one configured payment method. A non-empty
// ParentAccountCode restricts the account options to descendants of that
// code; empty means no restriction.
type PaymentMethod struct {
	ID                string
	Name              string
	ParentAccountCode string
}
