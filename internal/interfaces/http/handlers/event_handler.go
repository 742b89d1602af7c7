package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"gdgoc.backend/internal/domain/entities"
	"gdgoc.backend/internal/domain/repositories"
	"gdgoc.backend/internal/interfaces/http/response"
	"gdgoc.backend/internal/usecases"
	"gdgoc.backend/pkg/utils"
)

// EventHandler handles event endpoints
type EventHandler struct {
	eventUsecase *usecases.EventUsecase
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventUsecase *usecases.EventUsecase) *EventHandler {
	return &EventHandler{eventUsecase: eventUsecase}
}

// List lists events, newest first
// GET /api/event
func (h *EventHandler) List(c *gin.Context) {
	h.list(c, listFilter(c))
}

// Search lists events whose title or description contains q
// GET /api/event/search
func (h *EventHandler) Search(c *gin.Context) {
	filter := listFilter(c)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		filter.Search = q
	}
	h.list(c, filter)
}

func (h *EventHandler) list(c *gin.Context, filter repositories.ListFilter) {
	events, total, err := h.eventUsecase.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, "events", events, utils.CalculateMeta(total, filter.Page, filter.Limit))
}

// Latest returns the most recent events for the landing page
// GET /api/event/latest
func (h *EventHandler) Latest(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	events, err := h.eventUsecase.Latest(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"events": events})
}

// GetByID returns one event
// GET /api/event/:id
func (h *EventHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	event, err := h.eventUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, event)
}

// Create creates an event
// POST /api/event
func (h *EventHandler) Create(c *gin.Context) {
	var input entities.EventInput
	if !bindJSON(c, &input) {
		return
	}

	event, err := h.eventUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, event)
}

// Update replaces an event's content
// PUT /api/event/:id
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input entities.EventInput
	if !bindJSON(c, &input) {
		return
	}

	event, err := h.eventUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, event)
}

// Delete removes an event
// DELETE /api/event/:id
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.eventUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	deleted(c, "Event")
}
