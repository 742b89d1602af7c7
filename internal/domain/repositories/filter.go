package repositories

import (
	"gdgoc.backend/internal/domain/entities"
	"gdgoc.backend/pkg/utils"
)

// ListFilter narrows and pages a list query. Limit 0 returns every match.
type ListFilter struct {
	Page   int
	Limit  int
	Search string
	Status entities.ApplicationStatus
	Team   string
	Role   entities.RecruitmentRole
}

// Offset returns the number of records to skip
func (f ListFilter) Offset() int {
	return utils.PaginationParams{Page: f.Page, Limit: f.Limit}.CalculateOffset()
}
