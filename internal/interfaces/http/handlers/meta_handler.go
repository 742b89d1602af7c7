package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gdgoc.backend/internal/config"
	"gdgoc.backend/internal/domain/validation"
	"gdgoc.backend/internal/interfaces/http/response"
)

// UploadOptions tells browsers where to upload images before submitting URLs
type UploadOptions struct {
	Provider     string `json:"provider"`
	CloudName    string `json:"cloudName"`
	UploadPreset string `json:"uploadPreset"`
	Enabled      bool   `json:"enabled"`
}

// FormOptionsResponse is the body of GET /api/meta/form-options
type FormOptionsResponse struct {
	validation.FormOptions
	Upload UploadOptions `json:"upload"`
}

// MetaHandler publishes the rules shared with the front-ends
type MetaHandler struct {
	upload UploadOptions
}

// NewMetaHandler creates a new meta handler
func NewMetaHandler(cloudinary config.CloudinaryConfig) *MetaHandler {
	return &MetaHandler{upload: UploadOptions{
		Provider:     "cloudinary",
		CloudName:    cloudinary.CloudName,
		UploadPreset: cloudinary.UploadPreset,
		Enabled:      cloudinary.CloudName != "" && cloudinary.UploadPreset != "",
	}}
}

// FormOptions returns the validation rules and upload settings
// GET /api/meta/form-options
func (h *MetaHandler) FormOptions(c *gin.Context) {
	response.Success(c, http.StatusOK, FormOptionsResponse{
		FormOptions: validation.Options(),
		Upload:      h.upload,
	})
}
