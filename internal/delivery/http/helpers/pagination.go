package helpers

import (
	"fmt"
	"net/http"
	"strconv"

	"mentormatch/internal/domain"
)

// Pagination query parameter defaults and limits. skip is a zero-based offset
// into the post-filter result set, take a positive count.
const (
	DefaultSkip = 0
	DefaultTake = 20
	MaxTake     = 100
)

// ParsePagination reads skip and take from the request query string and
// returns domain.PageParams. Missing values fall back to defaults; malformed,
// negative, or oversized values are an error, never silently clamped.
func ParsePagination(r *http.Request) (domain.PageParams, error) {
	page := domain.PageParams{Skip: DefaultSkip, Take: DefaultTake}
	if s := r.URL.Query().Get("skip"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return page, fmt.Errorf("skip must be an integer")
		}
		page.Skip = v
	}
	if s := r.URL.Query().Get("take"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return page, fmt.Errorf("take must be an integer")
		}
		if v <= 0 {
			return page, fmt.Errorf("take must be positive")
		}
		if v > MaxTake {
			return page, fmt.Errorf("take must not exceed %d", MaxTake)
		}
		page.Take = v
	}
	if err := page.Validate(); err != nil {
		return page, err
	}
	return page, nil
}

// PaginationMeta is the pagination metadata included in paginated list responses.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Skip  int `json:"skip"`
	Take  int `json:"take"`
	Total int `json:"total"`
}

// NewPaginationMeta builds PaginationMeta from the applied page and the
// post-filter total count.
func NewPaginationMeta(page domain.PageParams, total int) PaginationMeta {
	return PaginationMeta{Skip: page.Skip, Take: page.Take, Total: total}
}
