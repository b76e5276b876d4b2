// Package availability implements the availability resolution engine: it
// expands weekly recurring rules into concrete intervals, applies per-date
// overrides, collects busy time from bookings and out-of-office periods, and
// subtracts the two to produce a user's free ranges inside a query window.
//
// All functions are pure (no storage, no clock reads); inputs are pre-sorted
// or sorted internally, and every emitted interval lies inside the window it
// was resolved against.
package availability

import (
	"sort"
	"time"

	"mentormatch/internal/domain"
)

// ExpandWeeklyRules turns recurring weekly rules into concrete intervals for
// every matching weekday occurrence inside the window. Rule times of day are
// interpreted in loc (the schedule's zone) on the calendar date under
// consideration, so DST shifts fall out of time.Date. The result is sorted
// by start and clipped to the window; it is not yet merged.
func ExpandWeeklyRules(rules []domain.WeeklyRule, loc *time.Location, window domain.Interval) []domain.Interval {
	if loc == nil {
		loc = time.UTC
	}
	var out []domain.Interval

	// Walk whole calendar dates in the schedule's zone, starting at the local
	// midnight of the date containing the window start. A window that opens on
	// a Sunday must still reach a Monday rule later in the same week, so the
	// walk is bounded by the window end, not by weekday arithmetic.
	first := window.Start.In(loc)
	day := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, loc)
	for day.Before(window.End) {
		weekday := domain.WeekdayFromTime(day.Weekday())
		for _, rule := range rules {
			if !rule.Matches(weekday) {
				continue
			}
			iv := domain.Interval{
				Start: time.Date(day.Year(), day.Month(), day.Day(), 0, rule.StartMinute, 0, 0, loc),
				End:   time.Date(day.Year(), day.Month(), day.Day(), 0, rule.EndMinute, 0, 0, loc),
			}
			iv = iv.Clip(window)
			if !iv.IsZero() {
				out = append(out, iv)
			}
		}
		day = time.Date(day.Year(), day.Month(), day.Day()+1, 0, 0, 0, 0, loc)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out
}
