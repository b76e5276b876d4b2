package availability

import (
	"sort"

	"mentormatch/internal/domain"
)

// Merge sorts intervals by start and coalesces overlapping or touching ones
// into maximal disjoint ranges. Zero-length inputs are dropped. The input
// slice is not modified.
func Merge(intervals []domain.Interval) []domain.Interval {
	sorted := make([]domain.Interval, 0, len(intervals))
	for _, iv := range intervals {
		if !iv.IsZero() {
			sorted = append(sorted, iv)
		}
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start.Before(sorted[j].Start) })

	var out []domain.Interval
	for _, iv := range sorted {
		if n := len(out); n > 0 && !iv.Start.After(out[n-1].End) {
			if iv.End.After(out[n-1].End) {
				out[n-1].End = iv.End
			}
			continue
		}
		out = append(out, iv)
	}
	return out
}

// MergeBusy merges busy intervals within each source, then interleaves the
// result sorted by start. Intervals from different sources are never merged
// with each other so the source tag survives.
func MergeBusy(busy []domain.BusyInterval) []domain.BusyInterval {
	bySource := make(map[domain.BusySource][]domain.Interval)
	for _, b := range busy {
		bySource[b.Source] = append(bySource[b.Source], b.Interval)
	}

	var out []domain.BusyInterval
	for source, ivs := range bySource {
		for _, iv := range Merge(ivs) {
			out = append(out, domain.BusyInterval{Interval: iv, Source: source})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start.Equal(out[j].Start) {
			return out[i].Source < out[j].Source
		}
		return out[i].Start.Before(out[j].Start)
	})
	return out
}
