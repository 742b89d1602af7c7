package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gdgoc.backend/internal/domain/entities"
	"gdgoc.backend/internal/interfaces/http/response"
	"gdgoc.backend/internal/usecases"
	"gdgoc.backend/pkg/utils"
)

// RecruitmentHandler handles recruitment application endpoints
type RecruitmentHandler struct {
	recruitmentUsecase *usecases.RecruitmentUsecase
}

// NewRecruitmentHandler creates a new recruitment handler
func NewRecruitmentHandler(recruitmentUsecase *usecases.RecruitmentUsecase) *RecruitmentHandler {
	return &RecruitmentHandler{recruitmentUsecase: recruitmentUsecase}
}

// Create submits an application
// POST /api/recruitment
func (h *RecruitmentHandler) Create(c *gin.Context) {
	var input entities.CreateRecruitmentInput
	if !bindJSON(c, &input) {
		return
	}

	app, err := h.recruitmentUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, app)
}

// List lists applications filtered by search, status, team and role
// GET /api/recruitment
func (h *RecruitmentHandler) List(c *gin.Context) {
	filter := listFilter(c)

	apps, total, err := h.recruitmentUsecase.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, "applications", apps, utils.CalculateMeta(total, filter.Page, filter.Limit))
}

// All returns every application matching the filters
// GET /api/recruitment/all
func (h *RecruitmentHandler) All(c *gin.Context) {
	apps, err := h.recruitmentUsecase.All(c.Request.Context(), listFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"applications": apps, "total": len(apps)})
}

// ExportCSV downloads the filtered applications as CSV
// GET /api/recruitment/export.csv
func (h *RecruitmentHandler) ExportCSV(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.recruitmentUsecase.ExportCSV(c.Request.Context(), listFilter(c), &buf); err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("recruitment-%s.csv", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// Stats returns counts by status, team and role
// GET /api/recruitment/stats
func (h *RecruitmentHandler) Stats(c *gin.Context) {
	stats, err := h.recruitmentUsecase.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// Emails returns the email addresses of the filtered applications
// GET /api/recruitment/emails
func (h *RecruitmentHandler) Emails(c *gin.Context) {
	emails, err := h.recruitmentUsecase.Emails(c.Request.Context(), listFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"emails": emails, "count": len(emails)})
}

// GetByID returns one application
// GET /api/recruitment/:id
func (h *RecruitmentHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	app, err := h.recruitmentUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, app)
}

// UpdateStatus sets the status of one application
// PATCH /api/recruitment/:id/status
func (h *RecruitmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input entities.UpdateStatusInput
	if !bindJSON(c, &input) {
		return
	}

	app, err := h.recruitmentUsecase.UpdateStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, app)
}

// BulkUpdateStatus sets the status of several applications
// PATCH /api/recruitment/bulk-update
func (h *RecruitmentHandler) BulkUpdateStatus(c *gin.Context) {
	var input entities.BulkStatusInput
	if !bindJSON(c, &input) {
		return
	}

	updated, err := h.recruitmentUsecase.BulkUpdateStatus(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": updated, "status": input.Status})
}

// Delete removes an application
// DELETE /api/recruitment/:id
func (h *RecruitmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.recruitmentUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	deleted(c, "Application")
}
