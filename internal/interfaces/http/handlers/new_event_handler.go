package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gdgoc.backend/internal/domain/entities"
	"gdgoc.backend/internal/interfaces/http/response"
	"gdgoc.backend/internal/usecases"
	"gdgoc.backend/pkg/utils"
)

// NewEventRegistrationHandler handles new-event registration endpoints
type NewEventRegistrationHandler struct {
	newEventUsecase *usecases.NewEventRegistrationUsecase
}

// NewNewEventHandler creates a new new-event handler
func NewNewEventHandler(newEventUsecase *usecases.NewEventRegistrationUsecase) *NewEventRegistrationHandler {
	return &NewEventRegistrationHandler{newEventUsecase: newEventUsecase}
}

// Create registers a team
// POST /api/new-event
func (h *NewEventRegistrationHandler) Create(c *gin.Context) {
	var input entities.CreateNewEventInput
	if !bindJSON(c, &input) {
		return
	}

	reg, err := h.newEventUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, reg)
}

// List lists registrations filtered by search and status
// GET /api/new-event
func (h *NewEventRegistrationHandler) List(c *gin.Context) {
	filter := listFilter(c)

	regs, total, err := h.newEventUsecase.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, "registrations", regs, utils.CalculateMeta(total, filter.Page, filter.Limit))
}

// Stats returns counts by status
// GET /api/new-event/stats
func (h *NewEventRegistrationHandler) Stats(c *gin.Context) {
	stats, err := h.newEventUsecase.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// GetByID returns one registration
// GET /api/new-event/:id
func (h *NewEventRegistrationHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	reg, err := h.newEventUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, reg)
}

// Accept accepts a registration and queues the decision email
// PATCH /api/new-event/:id/accept
func (h *NewEventRegistrationHandler) Accept(c *gin.Context) {
	h.decide(c, h.newEventUsecase.Accept)
}

// Reject rejects a registration and queues the decision email
// PATCH /api/new-event/:id/reject
func (h *NewEventRegistrationHandler) Reject(c *gin.Context) {
	h.decide(c, h.newEventUsecase.Reject)
}

func (h *NewEventRegistrationHandler) decide(c *gin.Context, fn func(context.Context, uuid.UUID) (*entities.NewEventRegistration, error)) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	reg, err := fn(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, reg)
}

// UpdateStatus sets any new-event status, including back to registered
// PATCH /api/new-event/:id/status
func (h *NewEventRegistrationHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input entities.UpdateStatusInput
	if !bindJSON(c, &input) {
		return
	}

	reg, err := h.newEventUsecase.UpdateStatus(c.Request.Context(), id, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, reg)
}

// Delete removes a registration
// DELETE /api/new-event/:id
func (h *NewEventRegistrationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.newEventUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	deleted(c, "Registration")
}
