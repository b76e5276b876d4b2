package availability

import (
	"mentormatch/internal/domain"
)

// ResolveWorking computes one user's override-resolved working intervals
// inside the window, across all participating schedules. Each schedule is
// expanded in its own time zone and resolved against its own overrides; the
// per-schedule results are then unioned into maximal disjoint ranges.
func ResolveWorking(schedules []*domain.Schedule, overrides []*domain.DateOverride, window domain.Interval) []domain.Interval {
	bySchedule := make(map[string][]*domain.DateOverride)
	for _, ov := range overrides {
		bySchedule[ov.ScheduleID] = append(bySchedule[ov.ScheduleID], ov)
	}

	var working []domain.Interval
	for _, s := range schedules {
		loc := s.Location()
		expanded := ExpandWeeklyRules(s.Rules, loc, window)
		working = append(working, ApplyOverrides(expanded, bySchedule[s.ID], loc, window)...)
	}
	return Merge(working)
}
