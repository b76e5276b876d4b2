package domain

import (
	"context"
	"time"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingAccepted  BookingStatus = "accepted"
	BookingRejected  BookingStatus = "rejected"
	BookingCancelled BookingStatus = "cancelled"
)

// ValidBookingStatus reports whether s is a known status value.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingPending, BookingAccepted, BookingRejected, BookingCancelled:
		return true
	}
	return false
}

// Occupies reports whether a booking in this status consumes the mentor's
// time. Rejected and cancelled bookings free their interval.
func (s BookingStatus) Occupies() bool {
	return s == BookingPending || s == BookingAccepted
}

// CanTransition reports whether a booking may move from one status to
// another: pending may become accepted or rejected, accepted may become
// cancelled. Rejected and cancelled are terminal.
func CanTransition(from, to BookingStatus) bool {
	if from == to {
		return true
	}
	switch from {
	case BookingPending:
		return to == BookingAccepted || to == BookingRejected
	case BookingAccepted:
		return to == BookingCancelled
	}
	return false
}

// Booking is a mentee's reservation of a mentor's time.
// swagger:model Booking
type Booking struct {
	ID             string        `json:"id"`
	UID            string        `json:"uid"`
	UserID         string        `json:"user_id"` // owning mentor
	MenteeEmail    string        `json:"mentee_email"`
	MenteeName     string        `json:"mentee_name"`
	MenteeTimeZone string        `json:"mentee_time_zone"`
	EventTypeID    int           `json:"event_type_id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Start          time.Time     `json:"start"`
	End            time.Time     `json:"end"`
	Status         BookingStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// Interval returns the booking's occupied time range.
func (b *Booking) Interval() Interval {
	return Interval{Start: b.Start, End: b.End}
}

// BookingFilter selects bookings for list queries.
type BookingFilter struct {
	UserEmail string
	Status    BookingStatus // empty means any
}

// BookingPatch is a partial update of a booking. Nil fields are left
// untouched.
type BookingPatch struct {
	Title       *string
	Description *string
	Start       *time.Time
	End         *time.Time
	Status      *BookingStatus
}

// BookingRepository defines the interface for booking storage.
//
// Create must be atomic with respect to concurrent creates for the same
// mentor: the store, not the process, is the authority on overlap (implemented
// with a transaction-scoped conflict check, so that two concurrent requests
// for the same interval cannot both commit).
type BookingRepository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id string) (*Booking, error)
	// ListOccupying returns bookings owned by the user whose status occupies
	// time and whose interval intersects the window.
	ListOccupying(ctx context.Context, userID string, window Interval) ([]*Booking, error)
	List(ctx context.Context, filter BookingFilter, page PageParams) ([]*Booking, int, error)
	Update(ctx context.Context, b *Booking) error
	Delete(ctx context.Context, id string) error
}

// BookingService defines the booking lifecycle business logic.
type BookingService interface {
	Create(ctx context.Context, b *Booking) error
	Get(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter BookingFilter, page PageParams) ([]*Booking, int, error)
	Update(ctx context.Context, id string, patch BookingPatch) (*Booking, error)
	Delete(ctx context.Context, id string) error
}
