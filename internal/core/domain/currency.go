package domain

// Currency represents a currency supported by the system.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // ISO-like code, e.g. "SAR", "USD"
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	NameAr       string `json:"nameAr"`
	Precision    int    `json:"precision"` // decimal places, typically 2
	AuditFields
}
