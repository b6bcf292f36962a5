package domain

import "time"

// Attachment holds the reference metadata for a file stored by the external
// attachment store. The blob itself never passes through this service.
type Attachment struct {
	AttachmentID string    `json:"attachmentID"`
	CompanyID    string    `json:"companyID"`
	ParentType   string    `json:"parentType"` // e.g. "journal_entry", "invoice"
	ParentID     string    `json:"parentID"`
	FileName     string    `json:"fileName"`
	URL          string    `json:"url"`
	SizeBytes    int64     `json:"sizeBytes"`
	UploadedAt   time.Time `json:"uploadedAt"`
	UploadedBy   string    `json:"uploadedBy"`
}
