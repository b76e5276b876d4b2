package availability

import (
	"mentormatch/internal/domain"
)

// CollectBusy gathers busy time for one user inside the window: occupying
// bookings (pending or accepted) and out-of-office periods. Each interval is
// clipped to the window, merged within its source, and the combined sequence
// returned sorted by start. Bookings in rejected or cancelled status must be
// filtered by the caller's repository query; this function double-checks the
// status so a stale row can never occupy time.
func CollectBusy(bookings []*domain.Booking, outOfOffice []*domain.OutOfOffice, window domain.Interval) []domain.BusyInterval {
	var busy []domain.BusyInterval
	for _, b := range bookings {
		if !b.Status.Occupies() {
			continue
		}
		iv := b.Interval().Clip(window)
		if iv.IsZero() {
			continue
		}
		busy = append(busy, domain.BusyInterval{Interval: iv, Source: domain.BusySourceBooking})
	}
	for _, o := range outOfOffice {
		iv := domain.Interval{Start: o.Start, End: o.End}.Clip(window)
		if iv.IsZero() {
			continue
		}
		busy = append(busy, domain.BusyInterval{Interval: iv, Source: domain.BusySourceOutOfOffice})
	}
	return MergeBusy(busy)
}
