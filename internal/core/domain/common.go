package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

// DocumentKind identifies the numbering sequence a document draws from.
type DocumentKind string

const (
	KindJournalEntry DocumentKind = "JE"
	KindInvoice      DocumentKind = "INV"
	KindExpense      DocumentKind = "EXP"
	KindVoucher      DocumentKind = "VCH"
	KindCheck        DocumentKind = "CHK"
)
