package model

// Account is one entry in the chart of accounts. Code is a dotted
// hierarchical code ("1.1.02.01"); each segment is one level deep.
type Account struct {
	Code        string
	Name        string
	Description string
}

// String renders the account the way select widgets label it.
func (a Account) String() string {
	if a.Name == "" {
		return a.Code
	}
	return a.Code + " - " + a.Name
}
