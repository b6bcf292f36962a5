package dto

import (
	"github.com/hisabiq/hisab_backend/internal/core/domain"
)

// RecordAttachmentRequest registers metadata for a file already uploaded to
// the external attachment store.
type RecordAttachmentRequest struct {
	ParentType string `json:"parentType" binding:"required,oneof=journal_entry invoice expense voucher check"`
	ParentID   string `json:"parentID" binding:"required"`
	FileName   string `json:"fileName" binding:"required"`
	URL        string `json:"url" binding:"required,url"`
	SizeBytes  int64  `json:"sizeBytes" binding:"required,gt=0"`
}

// ToDomainAttachment converts the request to a domain attachment. Identity
// and audit stamps are assigned by the service.
func (r RecordAttachmentRequest) ToDomainAttachment() domain.Attachment {
	return domain.Attachment{
		ParentType: r.ParentType,
		ParentID:   r.ParentID,
		FileName:   r.FileName,
		URL:        r.URL,
		SizeBytes:  r.SizeBytes,
	}
}
