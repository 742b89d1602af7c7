package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	domainerrors "gdgoc.backend/internal/domain/errors"
	domainRepos "gdgoc.backend/internal/domain/repositories"
)

// translateError maps driver errors to domain sentinels
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domainerrors.ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
		return fmt.Errorf("%w: %v", domainerrors.ErrAlreadyExists, err)
	}
	return err
}

// isUniqueViolation matches sqlite and postgres messages for drivers opened
// without TranslateError.
func isUniqueViolation(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

// whereSearch adds a case-insensitive "contains" match over cols
func whereSearch(q *gorm.DB, search string, cols ...string) *gorm.DB {
	term := strings.ToLower(strings.TrimSpace(search))
	if term == "" || len(cols) == 0 {
		return q
	}
	like := "%" + term + "%"
	parts := make([]string, 0, len(cols))
	args := make([]interface{}, 0, len(cols))
	for _, c := range cols {
		parts = append(parts, "LOWER("+c+") LIKE ?")
		args = append(args, like)
	}
	return q.Where("("+strings.Join(parts, " OR ")+")", args...)
}

// whereStatus filters on the status column when set
func whereStatus(q *gorm.DB, f domainRepos.ListFilter) *gorm.DB {
	if f.Status != "" {
		q = q.Where("status = ?", string(f.Status))
	}
	return q
}

// page applies newest-first ordering and the filter's offset/limit
func page(q *gorm.DB, f domainRepos.ListFilter) *gorm.DB {
	q = q.Order("created_at DESC")
	if f.Limit > 0 {
		q = q.Offset(f.Offset()).Limit(f.Limit)
	}
	return q
}

// checkAffected turns a zero-row write into ErrNotFound
func checkAffected(result *gorm.DB) error {
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

type labelCount struct {
	Label string
	Count int64
}

// groupCount counts rows of model grouped by column
func groupCount(q *gorm.DB, model interface{}, column string) (map[string]int64, error) {
	var rows []labelCount
	err := q.Model(model).
		Select(column + " AS label, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Label] = r.Count
	}
	return out, nil
}
