package domain

import "time"

// Interval is a half-open time range [Start, End).
type Interval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// IsZero reports whether the interval spans no time.
func (i Interval) IsZero() bool {
	return !i.Start.Before(i.End)
}

// Overlaps reports whether i and other share any instant.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Contains reports whether other lies fully inside i.
func (i Interval) Contains(other Interval) bool {
	return !other.Start.Before(i.Start) && !other.End.After(i.End)
}

// Clip returns the portion of i inside bounds. The result may be zero.
func (i Interval) Clip(bounds Interval) Interval {
	out := i
	if out.Start.Before(bounds.Start) {
		out.Start = bounds.Start
	}
	if out.End.After(bounds.End) {
		out.End = bounds.End
	}
	return out
}

// BusySource identifies what consumed a busy interval.
type BusySource string

const (
	// BusySourceBooking marks time occupied by a pending or accepted booking.
	BusySourceBooking BusySource = "booking"
	// BusySourceOutOfOffice marks time covered by an out-of-office period.
	BusySourceOutOfOffice BusySource = "out_of_office"
)

// BusyInterval is a time range consumed by a booking or out-of-office period.
type BusyInterval struct {
	Interval
	Source BusySource `json:"source"`
}
