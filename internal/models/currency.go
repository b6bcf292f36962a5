package models

// Currency represents a row in the currencies table.
type Currency struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	NameAr       string `json:"nameAr"`
	Precision    int    `json:"precision"`
	AuditFields
}
