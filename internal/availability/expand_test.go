package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mentormatch/internal/domain"
)

// 2025-06-02 is a Monday.
func utc(day, hour, min int) time.Time {
	return time.Date(2025, 6, day, hour, min, 0, 0, time.UTC)
}

func TestWeekdayFromTime(t *testing.T) {
	assert.Equal(t, domain.Monday, domain.WeekdayFromTime(time.Monday))
	assert.Equal(t, domain.Saturday, domain.WeekdayFromTime(time.Saturday))
	assert.Equal(t, domain.Sunday, domain.WeekdayFromTime(time.Sunday))
}

func TestExpandWeeklyRules(t *testing.T) {
	mondayNineToFive := domain.WeeklyRule{
		Days:        []domain.Weekday{domain.Monday},
		StartMinute: 9 * 60,
		EndMinute:   17 * 60,
	}

	tests := []struct {
		name   string
		rules  []domain.WeeklyRule
		loc    *time.Location
		window domain.Interval
		want   []domain.Interval
	}{
		{
			name:   "single monday inside window",
			rules:  []domain.WeeklyRule{mondayNineToFive},
			loc:    time.UTC,
			window: domain.Interval{Start: utc(2, 0, 0), End: utc(3, 0, 0)},
			want:   []domain.Interval{{Start: utc(2, 9, 0), End: utc(2, 17, 0)}},
		},
		{
			name:  "window starting on sunday still reaches the monday rule",
			rules: []domain.WeeklyRule{mondayNineToFive},
			loc:   time.UTC,
			// 2025-06-01 is a Sunday; a full week must enumerate Monday the 2nd.
			window: domain.Interval{Start: utc(1, 0, 0), End: utc(8, 0, 0)},
			want:   []domain.Interval{{Start: utc(2, 9, 0), End: utc(2, 17, 0)}},
		},
		{
			name:   "two occurrences across two weeks",
			rules:  []domain.WeeklyRule{mondayNineToFive},
			loc:    time.UTC,
			window: domain.Interval{Start: utc(1, 0, 0), End: utc(15, 0, 0)},
			want: []domain.Interval{
				{Start: utc(2, 9, 0), End: utc(2, 17, 0)},
				{Start: utc(9, 9, 0), End: utc(9, 17, 0)},
			},
		},
		{
			name:   "occurrence clipped by window edges",
			rules:  []domain.WeeklyRule{mondayNineToFive},
			loc:    time.UTC,
			window: domain.Interval{Start: utc(2, 10, 0), End: utc(2, 12, 0)},
			want:   []domain.Interval{{Start: utc(2, 10, 0), End: utc(2, 12, 0)}},
		},
		{
			name:   "no matching weekday in window",
			rules:  []domain.WeeklyRule{mondayNineToFive},
			loc:    time.UTC,
			window: domain.Interval{Start: utc(3, 0, 0), End: utc(5, 0, 0)},
			want:   nil,
		},
		{
			name: "multiple days sorted by start",
			rules: []domain.WeeklyRule{
				{Days: []domain.Weekday{domain.Monday, domain.Tuesday}, StartMinute: 9 * 60, EndMinute: 12 * 60},
				{Days: []domain.Weekday{domain.Monday}, StartMinute: 14 * 60, EndMinute: 16 * 60},
			},
			loc:    time.UTC,
			window: domain.Interval{Start: utc(2, 0, 0), End: utc(4, 0, 0)},
			want: []domain.Interval{
				{Start: utc(2, 9, 0), End: utc(2, 12, 0)},
				{Start: utc(2, 14, 0), End: utc(2, 16, 0)},
				{Start: utc(3, 9, 0), End: utc(3, 12, 0)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExpandWeeklyRules(tt.rules, tt.loc, tt.window)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpandWeeklyRules_ScheduleTimeZone(t *testing.T) {
	// 09:00 in New York is 13:00 UTC during June (EDT, UTC-4).
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	rules := []domain.WeeklyRule{{
		Days:        []domain.Weekday{domain.Monday},
		StartMinute: 9 * 60,
		EndMinute:   17 * 60,
	}}
	window := domain.Interval{Start: utc(2, 0, 0), End: utc(3, 12, 0)}

	got := ExpandWeeklyRules(rules, ny, window)
	require.Len(t, got, 1)
	assert.True(t, got[0].Start.Equal(utc(2, 13, 0)), "start should be 13:00 UTC, got %v", got[0].Start)
	assert.True(t, got[0].End.Equal(utc(2, 21, 0)), "end should be 21:00 UTC, got %v", got[0].End)
}

func TestExpandWeeklyRules_WindowBoundsAllOutput(t *testing.T) {
	rules := []domain.WeeklyRule{{
		Days:        []domain.Weekday{domain.Monday, domain.Wednesday, domain.Friday, domain.Sunday},
		StartMinute: 0,
		EndMinute:   24 * 60,
	}}
	window := domain.Interval{Start: utc(1, 6, 30), End: utc(12, 18, 45)}

	for _, iv := range ExpandWeeklyRules(rules, time.UTC, window) {
		assert.False(t, iv.Start.Before(window.Start))
		assert.False(t, iv.End.After(window.End))
		assert.True(t, iv.Start.Before(iv.End))
	}
}
