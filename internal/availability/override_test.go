package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mentormatch/internal/domain"
)

func TestApplyOverrides(t *testing.T) {
	window := domain.Interval{Start: utc(1, 0, 0), End: utc(8, 0, 0)}
	monday := domain.Interval{Start: utc(2, 9, 0), End: utc(2, 17, 0)}
	tuesday := domain.Interval{Start: utc(3, 9, 0), End: utc(3, 17, 0)}

	tests := []struct {
		name      string
		working   []domain.Interval
		overrides []*domain.DateOverride
		want      []domain.Interval
	}{
		{
			name:      "no overrides passes through merged",
			working:   []domain.Interval{monday, tuesday},
			overrides: nil,
			want:      []domain.Interval{monday, tuesday},
		},
		{
			name:    "full-day block removes the date",
			working: []domain.Interval{monday, tuesday},
			overrides: []*domain.DateOverride{
				{Date: "2025-06-02", Unavailable: true},
			},
			want: []domain.Interval{tuesday},
		},
		{
			name:    "replacement set supersedes the weekly expansion",
			working: []domain.Interval{monday, tuesday},
			overrides: []*domain.DateOverride{
				{Date: "2025-06-02", Intervals: []domain.Interval{
					{Start: utc(2, 13, 0), End: utc(2, 15, 0)},
				}},
			},
			want: []domain.Interval{
				{Start: utc(2, 13, 0), End: utc(2, 15, 0)},
				tuesday,
			},
		},
		{
			name:    "replacement adds availability on a day the rules skip",
			working: []domain.Interval{monday},
			overrides: []*domain.DateOverride{
				{Date: "2025-06-04", Intervals: []domain.Interval{
					{Start: utc(4, 10, 0), End: utc(4, 12, 0)},
				}},
			},
			want: []domain.Interval{
				monday,
				{Start: utc(4, 10, 0), End: utc(4, 12, 0)},
			},
		},
		{
			name:    "replacement intervals clipped to the window",
			working: nil,
			overrides: []*domain.DateOverride{
				{Date: "2025-06-07", Intervals: []domain.Interval{
					{Start: utc(7, 20, 0), End: utc(8, 4, 0)},
				}},
			},
			want: []domain.Interval{
				{Start: utc(7, 20, 0), End: utc(8, 0, 0)},
			},
		},
		{
			name: "touching intervals merge into one range",
			working: []domain.Interval{
				{Start: utc(2, 9, 0), End: utc(2, 12, 0)},
				{Start: utc(2, 12, 0), End: utc(2, 17, 0)},
			},
			overrides: nil,
			want:      []domain.Interval{monday},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyOverrides(tt.working, tt.overrides, time.UTC, window)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyOverrides_DateKeyedInScheduleZone(t *testing.T) {
	// 2025-06-02 23:00 UTC is already 2025-06-03 in Berlin (UTC+2): an
	// override for the 3rd must remove it when the schedule zone is Berlin.
	berlin, err := time.LoadLocation("Europe/Berlin")
	assert.NoError(t, err)

	window := domain.Interval{Start: utc(1, 0, 0), End: utc(8, 0, 0)}
	working := []domain.Interval{{Start: utc(2, 23, 0), End: utc(3, 1, 0)}}
	overrides := []*domain.DateOverride{{Date: "2025-06-03", Unavailable: true}}

	got := ApplyOverrides(working, overrides, berlin, window)
	assert.Empty(t, got)
}
