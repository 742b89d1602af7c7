package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gdgoc.backend/internal/domain/entities"
	"gdgoc.backend/internal/interfaces/http/response"
	"gdgoc.backend/internal/usecases"
	"gdgoc.backend/pkg/utils"
)

// ContactHandler handles contact form endpoints
type ContactHandler struct {
	contactUsecase *usecases.ContactUsecase
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactUsecase *usecases.ContactUsecase) *ContactHandler {
	return &ContactHandler{contactUsecase: contactUsecase}
}

// Create stores a contact message and queues the confirmation email
// POST /api/contact
func (h *ContactHandler) Create(c *gin.Context) {
	var input entities.CreateContactInput
	if !bindJSON(c, &input) {
		return
	}

	contact, err := h.contactUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, contact)
}

// List lists contact messages, newest first
// GET /api/contact
func (h *ContactHandler) List(c *gin.Context) {
	filter := listFilter(c)

	contacts, total, err := h.contactUsecase.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, "contacts", contacts, utils.CalculateMeta(total, filter.Page, filter.Limit))
}

// GetByID returns one contact message
// GET /api/contact/:id
func (h *ContactHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	contact, err := h.contactUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, contact)
}

// Delete removes a contact message
// DELETE /api/contact/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.contactUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	deleted(c, "Contact")
}
