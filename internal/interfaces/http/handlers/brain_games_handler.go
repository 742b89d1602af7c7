package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gdgoc.backend/internal/domain/entities"
	"gdgoc.backend/internal/interfaces/http/response"
	"gdgoc.backend/internal/usecases"
	"gdgoc.backend/pkg/utils"
)

// BrainGamesHandler handles brain games registration endpoints
type BrainGamesHandler struct {
	brainGamesUsecase *usecases.BrainGamesUsecase
}

// NewBrainGamesHandler creates a new brain games handler
func NewBrainGamesHandler(brainGamesUsecase *usecases.BrainGamesUsecase) *BrainGamesHandler {
	return &BrainGamesHandler{brainGamesUsecase: brainGamesUsecase}
}

// Create registers a team
// POST /api/brain-games
func (h *BrainGamesHandler) Create(c *gin.Context) {
	var input entities.CreateBrainGamesInput
	if !bindJSON(c, &input) {
		return
	}

	reg, err := h.brainGamesUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, reg)
}

// List lists registrations filtered by search and status
// GET /api/brain-games
func (h *BrainGamesHandler) List(c *gin.Context) {
	filter := listFilter(c)

	regs, total, err := h.brainGamesUsecase.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, "registrations", regs, utils.CalculateMeta(total, filter.Page, filter.Limit))
}

// All returns every registration matching the filters
// GET /api/brain-games/all
func (h *BrainGamesHandler) All(c *gin.Context) {
	regs, err := h.brainGamesUsecase.All(c.Request.Context(), listFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"registrations": regs, "total": len(regs)})
}

// Stats returns counts by status
// GET /api/brain-games/stats
func (h *BrainGamesHandler) Stats(c *gin.Context) {
	stats, err := h.brainGamesUsecase.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// GetByID returns one registration
// GET /api/brain-games/:id
func (h *BrainGamesHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	reg, err := h.brainGamesUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, reg)
}

// UpdateStatus sets the status of one registration
// PATCH /api/brain-games/:id/status
func (h *BrainGamesHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input entities.UpdateStatusInput
	if !bindJSON(c, &input) {
		return
	}

	reg, err := h.brainGamesUsecase.UpdateStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, reg)
}

// Delete removes a registration
// DELETE /api/brain-games/:id
func (h *BrainGamesHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.brainGamesUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	deleted(c, "Registration")
}
