package domain

import "fmt"

// PageParams holds offset-based pagination for list queries: Skip is a
// zero-based offset into the result set, Take the maximum number of entries
// returned. Both apply after any filtering, so pages are stable for an
// unchanged dataset.
type PageParams struct {
	Skip int
	Take int
}

// Validate rejects a negative skip and a non-positive take. Out-of-range
// pagination is a caller error, never silently clamped.
func (p PageParams) Validate() error {
	if p.Skip < 0 {
		return fmt.Errorf("%w: skip must not be negative", ErrInvalidRange)
	}
	if p.Take <= 0 {
		return fmt.Errorf("%w: take must be positive", ErrInvalidRange)
	}
	return nil
}

// Slice applies the page to an already-ordered result set. The page must
// have passed Validate.
func Slice[T any](items []T, p PageParams) []T {
	if p.Skip >= len(items) {
		return []T{}
	}
	items = items[p.Skip:]
	if p.Take < len(items) {
		items = items[:p.Take]
	}
	return items
}
