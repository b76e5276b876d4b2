package domain

import (
	"context"
	"fmt"
	"time"
)

// Weekday indexes days of the week Monday=0 through Sunday=6. This is the
// canonical convention everywhere in this codebase; convert from time.Weekday
// (Sunday=0) with WeekdayFromTime at the edges only.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// WeekdayFromTime converts the standard library's Sunday=0 numbering to the
// canonical Monday=0 numbering.
func WeekdayFromTime(w time.Weekday) Weekday {
	return Weekday((int(w) + 6) % 7)
}

// WeeklyRule is a recurring availability block: a set of weekdays plus a
// start and end time of day, expressed as minutes since local midnight in
// the owning schedule's time zone.
type WeeklyRule struct {
	Days        []Weekday `json:"days"`
	StartMinute int       `json:"start_minute"`
	EndMinute   int       `json:"end_minute"`
}

// Validate checks the rule invariants: a non-empty day set, minutes within a
// day, and start strictly before end.
func (r WeeklyRule) Validate() error {
	if len(r.Days) == 0 {
		return fmt.Errorf("weekly rule requires at least one day")
	}
	for _, d := range r.Days {
		if d < Monday || d > Sunday {
			return fmt.Errorf("weekly rule day out of range: %d", d)
		}
	}
	if r.StartMinute < 0 || r.EndMinute > 24*60 {
		return fmt.Errorf("weekly rule minutes out of range")
	}
	if r.StartMinute >= r.EndMinute {
		return fmt.Errorf("weekly rule start must be before end")
	}
	return nil
}

// Matches reports whether the rule applies on the given day.
func (r WeeklyRule) Matches(day Weekday) bool {
	for _, d := range r.Days {
		if d == day {
			return true
		}
	}
	return false
}

// Schedule is a named set of weekly rules owned by one user. A user may have
// several; queries select participating schedules by name.
type Schedule struct {
	ID       string       `json:"id"`
	UserID   string       `json:"user_id"`
	Name     string       `json:"name"`
	TimeZone string       `json:"time_zone"`
	Rules    []WeeklyRule `json:"rules"`
}

// Location resolves the schedule's time zone, falling back to UTC.
func (s *Schedule) Location() *time.Location {
	if s.TimeZone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// OverrideDateLayout is the calendar-date key format for date overrides.
const OverrideDateLayout = "2006-01-02"

// DateOverride replaces the weekly-rule expansion for one calendar date.
// Unavailable blocks the whole date; otherwise Intervals (already resolved to
// absolute instants) substitute for whatever the weekly rules produced.
type DateOverride struct {
	ScheduleID  string     `json:"schedule_id"`
	Date        string     `json:"date"` // OverrideDateLayout, in the schedule's zone
	Unavailable bool       `json:"unavailable"`
	Intervals   []Interval `json:"intervals,omitempty"`
}

// OutOfOffice is a period during which a user is away regardless of schedule.
type OutOfOffice struct {
	ID     string    `json:"id"`
	UserID string    `json:"user_id"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Reason string    `json:"reason,omitempty"`
}

// ScheduleRepository defines the interface for schedule, override, and
// out-of-office storage. The availability engine only ever reads.
type ScheduleRepository interface {
	// ListByUser returns the user's schedules with rules loaded. A non-empty
	// name restricts the result to schedules with that exact name.
	ListByUser(ctx context.Context, userID, name string) ([]*Schedule, error)
	// ListOverrides returns date overrides for the user's schedules whose date
	// falls inside the window.
	ListOverrides(ctx context.Context, userID string, window Interval) ([]*DateOverride, error)
	// ListOutOfOffice returns out-of-office periods intersecting the window.
	ListOutOfOffice(ctx context.Context, userID string, window Interval) ([]*OutOfOffice, error)
}
