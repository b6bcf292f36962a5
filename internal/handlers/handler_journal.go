package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/hisabiq/hisab_backend/internal/core/ports/services"
	"github.com/hisabiq/hisab_backend/internal/dto"
	"github.com/hisabiq/hisab_backend/internal/export"
	"github.com/hisabiq/hisab_backend/internal/middleware"
)

// journalHandler handles HTTP requests for the journal entry lifecycle.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: journalService}
}

// saveDraft godoc
// @Summary Save a draft journal entry
// @Description Creates a new draft or replaces an existing draft's header and lines. Unbalanced drafts are accepted; structural violations return the full field-keyed error map.
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   entry body dto.SaveJournalEntryRequest true "Entry header and lines"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 400 {object} map[string]map[string]string "Field-keyed validation errors"
// @Security BearerAuth
// @Router /companies/{companyID}/journal-entries [post]
func (h *journalHandler) saveDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SaveJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for saveDraft", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, result, err := h.journalService.SaveDraft(c.Request.Context(), c.Param("companyID"), req, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if result != nil && !result.Valid() {
		logger.Warn("Draft save rejected by validation", slog.Int("violations", len(result.Errors)))
		c.JSON(http.StatusBadRequest, gin.H{"errors": result.Errors})
		return
	}

	logger.Info("Draft saved", slog.String("entry_id", entry.EntryID), slog.String("entry_number", entry.EntryNumber))
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// getEntry godoc
// @Summary Get a journal entry with its lines
// @Tags journal-entries
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Security BearerAuth
// @Router /companies/{companyID}/journal-entries/{entryID} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, err := h.journalService.GetEntryByID(c.Request.Context(), c.Param("companyID"), c.Param("entryID"), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Token-paginated, newest first. Reversal mirrors are excluded unless includeReversals is set.
// @Tags journal-entries
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   limit query int false "Page size"
// @Param   nextToken query string false "Pagination token"
// @Param   includeReversals query bool false "Include reversal mirror entries"
// @Param   includeLines query bool false "Attach lines to each entry"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Security BearerAuth
// @Router /companies/{companyID}/journal-entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.journalService.ListEntries(c.Request.Context(), c.Param("companyID"), userID, params)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// exportEntries godoc
// @Summary Export journal entries as an xlsx workbook
// @Tags journal-entries
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   companyID path string true "Company ID"
// @Param   includeReversals query bool false "Include reversal mirror entries"
// @Success 200 {file} binary "Workbook"
// @Security BearerAuth
// @Router /companies/{companyID}/journal-entries/export [get]
func (h *journalHandler) exportEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	// A workbook is a full listing, not a page.
	params := dto.ListJournalEntriesParams{
		Limit:            1000,
		IncludeReversals: c.Query("includeReversals") == "true",
	}
	companyID := c.Param("companyID")

	entries, err := h.journalService.EntriesForExport(c.Request.Context(), companyID, userID, params)
	if err != nil {
		respondWithError(c, err)
		return
	}

	workbook, err := export.JournalEntriesWorkbook(entries)
	if err != nil {
		logger.Error("Failed to build journal workbook", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build export"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=journal-entries-%s.xlsx", companyID))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := workbook.Write(c.Writer); err != nil {
		logger.Error("Failed to stream journal workbook", slog.String("error", err.Error()))
	}
}

// postEntry godoc
// @Summary Post a draft entry
// @Description Transitions DRAFT to POSTED after a strict balance re-check, applying account balance changes atomically
// @Tags journal-entries
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   entryID path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 409 {object} map[string]string "Entry is not a draft"
// @Failure 422 {object} map[string]string "Entry is unbalanced"
// @Security BearerAuth
// @Router /companies/{companyID}/journal-entries/{entryID}/post [post]
func (h *journalHandler) postEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, err := h.journalService.Post(c.Request.Context(), c.Param("companyID"), c.Param("entryID"), userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Entry posted", slog.String("entry_id", entry.EntryID), slog.String("entry_number", entry.EntryNumber))
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// reverseEntry godoc
// @Summary Reverse a posted entry
// @Description Creates a posted mirror entry with swapped debits and credits and flips the original to REVERSED. A reason is mandatory.
// @Tags journal-entries
// @Accept  json
// @Produce  json
// @Param   companyID path string true "Company ID"
// @Param   entryID path string true "Entry ID"
// @Param   reversal body dto.ReverseJournalEntryRequest true "Reversal reason"
// @Success 200 {object} dto.JournalEntryResponse "The mirror entry"
// @Failure 400 {object} map[string]string "Reason missing"
// @Failure 409 {object} map[string]string "Entry is not posted"
// @Security BearerAuth
// @Router /companies/{companyID}/journal-entries/{entryID}/reverse [post]
func (h *journalHandler) reverseEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ReverseJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Reversal reason is required"})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	mirror, err := h.journalService.Reverse(c.Request.Context(), c.Param("companyID"), c.Param("entryID"), userID, req.Reason)
	if err != nil {
		respondWithError(c, err)
		return
	}

	logger.Info("Entry reversed",
		slog.String("original_entry_id", c.Param("entryID")),
		slog.String("mirror_entry_id", mirror.EntryID))
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(mirror))
}

// deleteEntry godoc
// @Summary Delete a draft entry
// @Description Only drafts can be deleted; posted and reversed entries are permanent audit records
// @Tags journal-entries
// @Param   companyID path string true "Company ID"
// @Param   entryID path string true "Entry ID"
// @Success 204 "Entry deleted"
// @Failure 409 {object} map[string]string "Entry is not a draft"
// @Security BearerAuth
// @Router /companies/{companyID}/journal-entries/{entryID} [delete]
func (h *journalHandler) deleteEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.journalService.Delete(c.Request.Context(), c.Param("companyID"), c.Param("entryID"), userID); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// toggleActive godoc
// @Summary Toggle an entry's visibility flag
// @Description Soft-hides or restores an entry of any status. Hidden entries drop out of listings and aggregation; account balances are untouched.
// @Tags journal-entries
// @Accept  json
// @Param   companyID path string true "Company ID"
// @Param   entryID path string true "Entry ID"
// @Param   flag body dto.ToggleActiveRequest true "Desired visibility"
// @Success 204 "Flag updated"
// @Security BearerAuth
// @Router /companies/{companyID}/journal-entries/{entryID}/active [patch]
func (h *journalHandler) toggleActive(c *gin.Context) {
	var req dto.ToggleActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.journalService.ToggleActive(c.Request.Context(), c.Param("companyID"), c.Param("entryID"), userID, *req.IsActive); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// registerJournalRoutes registers journal entry routes under the company scope.
func registerJournalRoutes(companies *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	entries := companies.Group("/:companyID/journal-entries")
	{
		entries.POST("", h.saveDraft)
		entries.GET("", h.listEntries)
		entries.GET("/export", h.exportEntries)
		entries.GET("/:entryID", h.getEntry)
		entries.POST("/:entryID/post", h.postEntry)
		entries.POST("/:entryID/reverse", h.reverseEntry)
		entries.DELETE("/:entryID", h.deleteEntry)
		entries.PATCH("/:entryID/active", h.toggleActive)
	}
}
