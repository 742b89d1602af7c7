package utils

import (
	"errors"
	"math"
	"strconv"
)

const (
	// DefaultPageLimit is applied when the client sends no limit
	DefaultPageLimit = 10
	// MaxPageLimit caps the limit accepted from clients
	MaxPageLimit = 100
	// MaxPage caps the page accepted from clients so the offset stays in range
	MaxPage = 1_000_000
)

// PaginationParams holds pagination request parameters
type PaginationParams struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// PaginationMeta holds pagination response metadata
type PaginationMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// ParsePagination parses raw query values. Missing or invalid values fall back
// to page 1 and DefaultPageLimit; pages above MaxPage and limits above
// MaxPageLimit are clamped.
func ParsePagination(rawPage, rawLimit string) PaginationParams {
	page, err := strconv.Atoi(rawPage)
	switch {
	case errors.Is(err, strconv.ErrRange) && page > 0:
		page = MaxPage
	case err != nil || page < 1:
		page = 1
	case page > MaxPage:
		page = MaxPage
	}
	limit, err := strconv.Atoi(rawLimit)
	if err != nil || limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return PaginationParams{Page: page, Limit: limit}
}

// CalculateOffset returns the number of records to skip. A limit of 0 means
// no paging; offsets that would overflow saturate at math.MaxInt32.
func (p PaginationParams) CalculateOffset() int {
	if p.Page < 1 || p.Limit <= 0 {
		return 0
	}
	if p.Page-1 > math.MaxInt32/p.Limit {
		return math.MaxInt32
	}
	return (p.Page - 1) * p.Limit
}

// CalculateMeta generates pagination metadata
func CalculateMeta(total int64, page, limit int) PaginationMeta {
	if limit <= 0 {
		return PaginationMeta{
			Page:       1,
			Limit:      int(total),
			Total:      total,
			TotalPages: 1,
		}
	}

	totalPages := int(math.Ceil(float64(total) / float64(limit)))
	if totalPages < 0 {
		totalPages = 0
	}

	return PaginationMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
