package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/hisabiq/hisab_backend/internal/core/domain"
	portsrepo "github.com/hisabiq/hisab_backend/internal/core/ports/repositories"
	portssvc "github.com/hisabiq/hisab_backend/internal/core/ports/services"
	"github.com/hisabiq/hisab_backend/internal/middleware"
)

// attachmentService records attachment metadata only. Upload and download of
// the blob happen against the external attachment store directly.
type attachmentService struct {
	attachmentRepo portsrepo.AttachmentRepositoryFacade
	companySvc     portssvc.CompanySvcFacade
}

// NewAttachmentService creates a new AttachmentService.
func NewAttachmentService(attachmentRepo portsrepo.AttachmentRepositoryFacade, companySvc portssvc.CompanySvcFacade) portssvc.AttachmentSvcFacade {
	return &attachmentService{attachmentRepo: attachmentRepo, companySvc: companySvc}
}

var _ portssvc.AttachmentSvcFacade = (*attachmentService)(nil)

func (s *attachmentService) RecordAttachment(ctx context.Context, companyID string, attachment domain.Attachment, userID string) (*domain.Attachment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleMember); err != nil {
		return nil, err
	}

	attachment.AttachmentID = uuid.NewString()
	attachment.CompanyID = companyID
	attachment.UploadedAt = time.Now().UTC()
	attachment.UploadedBy = userID

	if err := s.attachmentRepo.SaveAttachment(ctx, attachment); err != nil {
		logger.Error("Failed to record attachment", slog.String("error", err.Error()), slog.String("parent_id", attachment.ParentID))
		return nil, fmt.Errorf("failed to record attachment: %w", err)
	}
	return &attachment, nil
}

func (s *attachmentService) ListAttachments(ctx context.Context, companyID, parentType, parentID, userID string) ([]domain.Attachment, error) {
	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleReadOnly); err != nil {
		return nil, err
	}
	return s.attachmentRepo.ListAttachmentsByParent(ctx, companyID, parentType, parentID)
}

func (s *attachmentService) RemoveAttachment(ctx context.Context, companyID, attachmentID, userID string) error {
	if err := s.companySvc.AuthorizeUserAction(ctx, userID, companyID, domain.RoleMember); err != nil {
		return err
	}
	return s.attachmentRepo.DeleteAttachment(ctx, attachmentID)
}
