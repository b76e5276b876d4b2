package domain

import (
	"context"
	"fmt"
)

// AvailabilityQuery is a validated request for mentor availability inside a
// window. Candidates selects window mode (all users, optionally verified
// only) or identity mode (explicit email list); Page applies after excluding
// candidates with no free time. ScheduleName optionally restricts which of a
// user's schedules participate.
type AvailabilityQuery struct {
	Window       Interval
	Candidates   CandidateFilter
	Page         PageParams
	ScheduleName string
}

// Validate enforces the boundary contract: the resolution engine never sees a
// malformed window or negative pagination.
func (q AvailabilityQuery) Validate() error {
	if !q.Window.Start.Before(q.Window.End) {
		return fmt.Errorf("%w: from must be before to", ErrInvalidRange)
	}
	if err := q.Page.Validate(); err != nil {
		return err
	}
	return nil
}

// MentorAvailability is one candidate's resolved availability inside the
// query window. FreeRanges are pairwise disjoint, sorted, and lie fully
// inside the window; BusyIntervals carry the reason time was excluded.
type MentorAvailability struct {
	User          *User          `json:"user"`
	TimeZone      string         `json:"time_zone"`
	FreeRanges    []Interval     `json:"free_ranges"`
	BusyIntervals []BusyInterval `json:"busy_intervals"`
	OutOfOffice   []*OutOfOffice `json:"out_of_office"`
}

// AvailabilityService resolves free/busy time for mentors.
type AvailabilityService interface {
	// ResolveMentors returns, for every candidate matching the query, that
	// candidate's availability inside the window. Candidates with no free time
	// are excluded, not returned empty. The returned total is the post-filter
	// match count before pagination.
	ResolveMentors(ctx context.Context, q AvailabilityQuery) ([]*MentorAvailability, int, error)
	// ResolveUser resolves a single user's availability by email.
	ResolveUser(ctx context.Context, email string, window Interval) (*MentorAvailability, error)
}
