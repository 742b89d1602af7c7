package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gdgoc.backend/internal/domain/entities"
	domainerrors "gdgoc.backend/internal/domain/errors"
	"gdgoc.backend/internal/domain/repositories"
	"gdgoc.backend/internal/domain/validation"
	"gdgoc.backend/internal/interfaces/http/response"
	"gdgoc.backend/pkg/utils"
)

// bindJSON decodes the request body into obj and renders a 400 with
// per-field messages when it does not validate.
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		response.Error(c, validation.ToAppError(err))
		return false
	}
	return true
}

// pathID parses the :id route parameter
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid id"))
		return uuid.Nil, false
	}
	return id, true
}

// listFilter reads the common list query parameters
func listFilter(c *gin.Context) repositories.ListFilter {
	p := utils.ParsePagination(c.Query("page"), c.Query("limit"))
	return repositories.ListFilter{
		Page:   p.Page,
		Limit:  p.Limit,
		Search: strings.TrimSpace(c.Query("search")),
		Status: entities.ApplicationStatus(strings.TrimSpace(c.Query("status"))),
		Team:   strings.TrimSpace(c.Query("team")),
		Role:   entities.RecruitmentRole(strings.TrimSpace(c.Query("role"))),
	}
}

func deleted(c *gin.Context, what string) {
	response.Success(c, http.StatusOK, gin.H{"message": what + " deleted successfully"})
}
