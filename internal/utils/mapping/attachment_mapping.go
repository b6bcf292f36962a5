package mapping

import (
	"github.com/hisabiq/hisab_backend/internal/core/domain"
	"github.com/hisabiq/hisab_backend/internal/models"
)

// ToModelAttachment converts a domain Attachment to a model Attachment
func ToModelAttachment(d domain.Attachment) models.Attachment {
	return models.Attachment{
		AttachmentID: d.AttachmentID,
		CompanyID:    d.CompanyID,
		ParentType:   d.ParentType,
		ParentID:     d.ParentID,
		FileName:     d.FileName,
		URL:          d.URL,
		SizeBytes:    d.SizeBytes,
		UploadedAt:   d.UploadedAt,
		UploadedBy:   d.UploadedBy,
	}
}

// ToDomainAttachment converts a model Attachment to a domain Attachment
func ToDomainAttachment(m models.Attachment) domain.Attachment {
	return domain.Attachment{
		AttachmentID: m.AttachmentID,
		CompanyID:    m.CompanyID,
		ParentType:   m.ParentType,
		ParentID:     m.ParentID,
		FileName:     m.FileName,
		URL:          m.URL,
		SizeBytes:    m.SizeBytes,
		UploadedAt:   m.UploadedAt,
		UploadedBy:   m.UploadedBy,
	}
}
