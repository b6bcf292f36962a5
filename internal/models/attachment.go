package models

import "time"

// Attachment represents a row in the attachments metadata table.
type Attachment struct {
	AttachmentID string    `json:"attachmentID"`
	CompanyID    string    `json:"companyID"`
	ParentType   string    `json:"parentType"`
	ParentID     string    `json:"parentID"`
	FileName     string    `json:"fileName"`
	URL          string    `json:"url"`
	SizeBytes    int64     `json:"sizeBytes"`
	UploadedAt   time.Time `json:"uploadedAt"`
	UploadedBy   string    `json:"uploadedBy"`
}
