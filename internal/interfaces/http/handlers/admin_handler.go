package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gdgoc.backend/internal/domain/entities"
	domainerrors "gdgoc.backend/internal/domain/errors"
	"gdgoc.backend/internal/interfaces/http/middleware"
	"gdgoc.backend/internal/interfaces/http/response"
	"gdgoc.backend/internal/usecases"
)

// AdminHandler handles admin account endpoints
type AdminHandler struct {
	adminUsecase *usecases.AdminUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase *usecases.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

// Register creates another admin account
// POST /api/admin/register
func (h *AdminHandler) Register(c *gin.Context) {
	var input entities.CreateAdminInput
	if !bindJSON(c, &input) {
		return
	}

	admin, err := h.adminUsecase.Register(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, admin)
}

// Login exchanges credentials for a bearer token
// POST /api/admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if !bindJSON(c, &input) {
		return
	}

	auth, err := h.adminUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, auth)
}

// List lists admins
// GET /api/admin
func (h *AdminHandler) List(c *gin.Context) {
	admins, err := h.adminUsecase.List(c.Request.Context(), strings.TrimSpace(c.Query("search")))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"admins": admins})
}

// GetMe returns the admin the bearer token belongs to
// GET /api/admin/by-token
func (h *AdminHandler) GetMe(c *gin.Context) {
	admin, ok := middleware.GetAdmin(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("not authenticated"))
		return
	}
	response.Success(c, http.StatusOK, admin)
}

// UpdateMe updates the admin the bearer token belongs to
// PUT /api/admin/by-token
func (h *AdminHandler) UpdateMe(c *gin.Context) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("not authenticated"))
		return
	}

	var input entities.UpdateAdminInput
	if !bindJSON(c, &input) {
		return
	}

	admin, err := h.adminUsecase.Update(c.Request.Context(), adminID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, admin)
}

// GetByID returns one admin
// GET /api/admin/:id
func (h *AdminHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	admin, err := h.adminUsecase.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, admin)
}

// Update updates any admin profile
// PUT /api/admin/:id
func (h *AdminHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input entities.UpdateAdminInput
	if !bindJSON(c, &input) {
		return
	}

	admin, err := h.adminUsecase.Update(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, admin)
}

// ChangePassword replaces an admin password after checking the current one
// PUT /api/admin/:id/change-password
func (h *AdminHandler) ChangePassword(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input entities.ChangePasswordInput
	if !bindJSON(c, &input) {
		return
	}

	if err := h.adminUsecase.ChangePassword(c.Request.Context(), id, &input); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// Delete removes an admin. Admins cannot delete themselves.
// DELETE /api/admin/:id
func (h *AdminHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	actorID, _ := middleware.GetAdminID(c)

	if err := h.adminUsecase.Delete(c.Request.Context(), actorID, id); err != nil {
		response.Error(c, err)
		return
	}
	deleted(c, "Admin")
}
