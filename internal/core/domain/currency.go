package domain

// Currency describes how amounts in a currency are displayed.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // e.g., "USD"
	Symbol       string `json:"symbol"`       // e.g., "$"
	Name         string `json:"name"`         // e.g., "US Dollar"
	Precision    int    `json:"precision"`    // Number of fraction digits shown
}

// USD is the only currency amounts are rendered in.
var USD = Currency{
	CurrencyCode: "USD",
	Symbol:       "$",
	Name:         "US Dollar",
	Precision:    2,
}
