package domain

import "errors"

// Sentinel errors shared across services and repositories. Controllers map
// these to HTTP status codes; anything not in this list is treated as an
// internal failure and surfaced opaquely.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrInvalidRange       = errors.New("invalid time range")
	ErrSlotUnavailable    = errors.New("requested slot is not available")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidStatus      = errors.New("invalid booking status transition")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
