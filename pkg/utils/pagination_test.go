package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePagination(t *testing.T) {
	cases := []struct {
		name      string
		page      string
		limit     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", "", 1, DefaultPageLimit},
		{"explicit", "3", "25", 3, 25},
		{"garbage", "abc", "xyz", 1, DefaultPageLimit},
		{"negative", "-2", "-5", 1, DefaultPageLimit},
		{"clamped", "1", "1000", 1, MaxPageLimit},
		{"page clamped", "5000000", "10", MaxPage, 10},
		{"page out of int range", "99999999999999999999999", "10", MaxPage, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := ParsePagination(tc.page, tc.limit)
			assert.Equal(t, tc.wantPage, p.Page)
			assert.Equal(t, tc.wantLimit, p.Limit)
		})
	}
}

func TestCalculateOffset(t *testing.T) {
	p := PaginationParams{Page: 1, Limit: 20}
	assert.Equal(t, 0, p.CalculateOffset())

	p = PaginationParams{Page: 3, Limit: 20}
	assert.Equal(t, 40, p.CalculateOffset())

	p = PaginationParams{Page: 0, Limit: 20}
	assert.Equal(t, 0, p.CalculateOffset())

	p = PaginationParams{Page: 4, Limit: 0}
	assert.Equal(t, 0, p.CalculateOffset())

	p = PaginationParams{Page: math.MaxInt, Limit: MaxPageLimit}
	assert.Equal(t, math.MaxInt32, p.CalculateOffset())

	p = ParsePagination("99999999999999999999", "100")
	assert.Equal(t, (MaxPage-1)*MaxPageLimit, p.CalculateOffset())
	assert.Greater(t, p.CalculateOffset(), 0)
}

func TestCalculateMeta(t *testing.T) {
	meta := CalculateMeta(100, 2, 20)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 20, meta.Limit)
	assert.Equal(t, int64(100), meta.Total)
	assert.Equal(t, 5, meta.TotalPages)

	meta = CalculateMeta(21, 1, 10)
	assert.Equal(t, 3, meta.TotalPages)

	meta = CalculateMeta(0, 1, 10)
	assert.Equal(t, 0, meta.TotalPages)

	noLimit := CalculateMeta(15, 1, 0)
	assert.Equal(t, 1, noLimit.Page)
	assert.Equal(t, 15, noLimit.Limit)
	assert.Equal(t, 1, noLimit.TotalPages)
}
