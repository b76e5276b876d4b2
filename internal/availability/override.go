package availability

import (
	"time"

	"mentormatch/internal/domain"
)

// ApplyOverrides resolves date overrides on top of expanded weekly intervals.
// For every calendar date (in loc) named by an override, the weekly-derived
// intervals on that date are discarded; if the override is a replacement set
// rather than a full-day block, its intervals are substituted, clipped to the
// window. Dates without an override pass through unchanged. The result is
// merged into sorted, maximal disjoint working intervals.
func ApplyOverrides(working []domain.Interval, overrides []*domain.DateOverride, loc *time.Location, window domain.Interval) []domain.Interval {
	if len(overrides) == 0 {
		return Merge(working)
	}
	if loc == nil {
		loc = time.UTC
	}

	byDate := make(map[string]*domain.DateOverride, len(overrides))
	for _, ov := range overrides {
		byDate[ov.Date] = ov
	}

	out := make([]domain.Interval, 0, len(working))
	for _, iv := range working {
		if _, overridden := byDate[iv.Start.In(loc).Format(domain.OverrideDateLayout)]; overridden {
			continue
		}
		out = append(out, iv)
	}

	// Replacement sets may add availability on dates the weekly rules skip
	// entirely, so they are applied from the override list, not from the
	// surviving working intervals.
	for _, ov := range overrides {
		if ov.Unavailable {
			continue
		}
		for _, iv := range ov.Intervals {
			iv = iv.Clip(window)
			if !iv.IsZero() {
				out = append(out, iv)
			}
		}
	}

	return Merge(out)
}
