package availability

import (
	"time"

	"mentormatch/internal/domain"
)

// Subtract removes busy time from working intervals, producing free ranges.
// Both inputs must be sorted by start; working intervals must additionally be
// disjoint (as produced by ApplyOverrides). The sweep is a single pass over
// both sequences, O(n+m).
//
// Invariant: the union of the returned free ranges and the busy intervals,
// both clipped to the working intervals, reconstructs the working intervals
// exactly. Zero-length remainders are dropped.
func Subtract(working []domain.Interval, busy []domain.BusyInterval) []domain.Interval {
	free := make([]domain.Interval, 0, len(working))
	j := 0
	for _, w := range working {
		cursor := w.Start
		// Busy intervals ending before this working interval can never clip
		// anything later either, since working intervals are sorted.
		for j < len(busy) && !busy[j].End.After(cursor) {
			j++
		}
		for k := j; k < len(busy) && busy[k].Start.Before(w.End); k++ {
			b := busy[k]
			if !b.End.After(cursor) {
				continue
			}
			if b.Start.After(cursor) {
				free = append(free, domain.Interval{Start: cursor, End: minTime(b.Start, w.End)})
			}
			cursor = b.End
			if !cursor.Before(w.End) {
				break
			}
		}
		if cursor.Before(w.End) {
			free = append(free, domain.Interval{Start: cursor, End: w.End})
		}
	}
	return free
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
