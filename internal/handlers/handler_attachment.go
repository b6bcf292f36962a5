package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hisabiq/hisab_backend/internal/core/ports/services"
	"github.com/hisabiq/hisab_backend/internal/dto"
	"github.com/hisabiq/hisab_backend/internal/middleware"
)

// attachmentHandler handles HTTP requests for attachment metadata.
type attachmentHandler struct {
	attachmentService portssvc.AttachmentSvcFacade
}

func newAttachmentHandler(attachmentService portssvc.AttachmentSvcFacade) *attachmentHandler {
	return &attachmentHandler{attachmentService: attachmentService}
}

// recordAttachment godoc
// @Summary Record attachment metadata
// @Description Registers a file already uploaded to the external store against a parent document
// @Tags attachments
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   attachment body dto.RecordAttachmentRequest true "Attachment metadata"
// @Success 201 {object} domain.Attachment
// @Security BearerAuth
// @Router /companies/{companyID}/attachments [post]
func (h *attachmentHandler) recordAttachment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RecordAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	attachment, err := h.attachmentService.RecordAttachment(c.Request.Context(), c.Param("companyID"), req.ToDomainAttachment(), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Attachment recorded",
		slog.String("attachment_id", attachment.AttachmentID),
		slog.String("parent_type", attachment.ParentType),
		slog.String("parent_id", attachment.ParentID))
	c.JSON(http.StatusCreated, attachment)
}

// listAttachments godoc
// @Summary List attachments of a parent document
// @Tags attachments
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   parentType query string true "Parent document type"
// @Param   parentID query string true "Parent document ID"
// @Success 200 {array} domain.Attachment
// @Security BearerAuth
// @Router /companies/{companyID}/attachments [get]
func (h *attachmentHandler) listAttachments(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	parentType := c.Query("parentType")
	parentID := c.Query("parentID")
	if parentType == "" || parentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "parentType and parentID query parameters are required"})
		return
	}

	attachments, err := h.attachmentService.ListAttachments(c.Request.Context(), c.Param("companyID"), parentType, parentID, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, attachments)
}

// removeAttachment godoc
// @Summary Remove attachment metadata
// @Description Removes the metadata record; the blob in the external store is untouched
// @Tags attachments
// @Param   companyID path string true "Company ID"
// @Param   attachmentID path string true "Attachment ID"
// @Success 204 "Attachment removed"
// @Security BearerAuth
// @Router /companies/{companyID}/attachments/{attachmentID} [delete]
func (h *attachmentHandler) removeAttachment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.attachmentService.RemoveAttachment(c.Request.Context(), c.Param("companyID"), c.Param("attachmentID"), userID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// registerAttachmentRoutes registers attachment routes under the company scope.
func registerAttachmentRoutes(companies *gin.RouterGroup, attachmentService portssvc.AttachmentSvcFacade) {
	h := newAttachmentHandler(attachmentService)

	attachments := companies.Group("/:companyID/attachments")
	{
		attachments.POST("", h.recordAttachment)
		attachments.GET("", h.listAttachments)
		attachments.DELETE("/:attachmentID", h.removeAttachment)
	}
}
