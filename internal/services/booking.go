package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"mentormatch/internal/availability"
	"mentormatch/internal/domain"
)

type bookingService struct {
	bookingRepo    domain.BookingRepository
	userRepo       domain.UserRepository
	scheduleRepo   domain.ScheduleRepository
	emailService   domain.EmailService
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewBookingService creates a BookingService. emailService may be nil, in
// which case no confirmation mail is sent.
func NewBookingService(bookingRepo domain.BookingRepository, userRepo domain.UserRepository, scheduleRepo domain.ScheduleRepository, emailService domain.EmailService, logger *slog.Logger, timeout time.Duration) domain.BookingService {
	return &bookingService{
		bookingRepo:    bookingRepo,
		userRepo:       userRepo,
		scheduleRepo:   scheduleRepo,
		emailService:   emailService,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *bookingService) Create(ctx context.Context, b *domain.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !b.Start.Before(b.End) {
		return fmt.Errorf("%w: start must be before end", domain.ErrInvalidRange)
	}
	if b.Status == "" {
		b.Status = domain.BookingPending
	}
	if !domain.ValidBookingStatus(b.Status) {
		return fmt.Errorf("%w: unknown status %q", domain.ErrInvalidStatus, b.Status)
	}

	mentor, err := s.userRepo.GetByID(ctx, b.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrUserNotFound
		}
		return fmt.Errorf("get mentor: %w", err)
	}

	if err := s.checkSlotFree(ctx, mentor.ID, b.Interval(), ""); err != nil {
		return err
	}

	if b.UID == "" {
		b.UID = uuid.NewString()
	}
	if b.Title == "" {
		b.Title = fmt.Sprintf("Meet between %s and %s", mentor.Email, b.MenteeEmail)
	}
	if b.Description == "" {
		b.Description = b.Title
	}
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	// The repository re-checks overlap inside its transaction; this create is
	// the commit half of the compare-and-commit, so a concurrent request for
	// the same interval surfaces here as ErrSlotUnavailable.
	if err := s.bookingRepo.Create(ctx, b); err != nil {
		if errors.Is(err, domain.ErrSlotUnavailable) {
			return domain.ErrSlotUnavailable
		}
		return fmt.Errorf("create booking: %w", err)
	}

	s.sendConfirmation(ctx, mentor, b)
	return nil
}

func (s *bookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}
	return b, nil
}

func (s *bookingService) List(ctx context.Context, filter domain.BookingFilter, page domain.PageParams) ([]*domain.Booking, int, error) {
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}
	if filter.Status != "" && !domain.ValidBookingStatus(filter.Status) {
		return nil, 0, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidStatus, filter.Status)
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	bookings, total, err := s.bookingRepo.List(ctx, filter, page)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}
	if bookings == nil {
		bookings = []*domain.Booking{}
	}
	return bookings, total, nil
}

func (s *bookingService) Update(ctx context.Context, id string, patch domain.BookingPatch) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.Description != nil {
		b.Description = *patch.Description
	}
	if patch.Status != nil {
		if !domain.ValidBookingStatus(*patch.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidStatus, *patch.Status)
		}
		if !domain.CanTransition(b.Status, *patch.Status) {
			return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidStatus, b.Status, *patch.Status)
		}
		b.Status = *patch.Status
	}

	timeChanged := false
	if patch.Start != nil {
		b.Start = *patch.Start
		timeChanged = true
	}
	if patch.End != nil {
		b.End = *patch.End
		timeChanged = true
	}
	if timeChanged {
		if !b.Start.Before(b.End) {
			return nil, fmt.Errorf("%w: start must be before end", domain.ErrInvalidRange)
		}
		// Moving a booking re-validates the slot, ignoring the booking's own
		// occupied time.
		if err := s.checkSlotFree(ctx, b.UserID, b.Interval(), b.ID); err != nil {
			return nil, err
		}
	}

	b.UpdatedAt = time.Now()
	if err := s.bookingRepo.Update(ctx, b); err != nil {
		if errors.Is(err, domain.ErrSlotUnavailable) {
			return nil, domain.ErrSlotUnavailable
		}
		return nil, fmt.Errorf("update booking: %w", err)
	}
	return b, nil
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, domain.ErrBookingNotFound) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("delete booking: %w", err)
	}
	return nil
}

// checkSlotFree verifies the requested interval currently lies inside one of
// the mentor's free ranges. excludeBookingID ignores a booking's own interval
// when re-validating an update. The check is advisory: the store's
// transactional overlap check is the authority under concurrency.
func (s *bookingService) checkSlotFree(ctx context.Context, mentorID string, slot domain.Interval, excludeBookingID string) error {
	schedules, err := s.scheduleRepo.ListByUser(ctx, mentorID, "")
	if err != nil {
		return fmt.Errorf("list schedules: %w", err)
	}
	overrides, err := s.scheduleRepo.ListOverrides(ctx, mentorID, slot)
	if err != nil {
		return fmt.Errorf("list overrides: %w", err)
	}
	bookings, err := s.bookingRepo.ListOccupying(ctx, mentorID, slot)
	if err != nil {
		return fmt.Errorf("list bookings: %w", err)
	}
	outOfOffice, err := s.scheduleRepo.ListOutOfOffice(ctx, mentorID, slot)
	if err != nil {
		return fmt.Errorf("list out-of-office: %w", err)
	}

	if excludeBookingID != "" {
		kept := bookings[:0]
		for _, existing := range bookings {
			if existing.ID != excludeBookingID {
				kept = append(kept, existing)
			}
		}
		bookings = kept
	}

	working := availability.ResolveWorking(schedules, overrides, slot)
	busy := availability.CollectBusy(bookings, outOfOffice, slot)
	for _, free := range availability.Subtract(working, busy) {
		if free.Contains(slot) {
			return nil
		}
	}
	return domain.ErrSlotUnavailable
}

func (s *bookingService) sendConfirmation(ctx context.Context, mentor *domain.User, b *domain.Booking) {
	if s.emailService == nil {
		return
	}
	// Times are rendered in the mentee's zone; an empty or unknown zone falls
	// back to the mentor's home zone.
	loc := mentor.Location()
	if b.MenteeTimeZone != "" {
		if l, err := time.LoadLocation(b.MenteeTimeZone); err == nil {
			loc = l
		}
	}
	data := &domain.BookingConfirmationEmailData{
		MenteeEmail: b.MenteeEmail,
		MenteeName:  b.MenteeName,
		MentorName:  mentor.Name,
		Title:       b.Title,
		Start:       b.Start.In(loc).Format(time.RFC1123),
		End:         b.End.In(loc).Format(time.RFC1123),
	}
	if err := s.emailService.SendBookingConfirmation(ctx, data); err != nil {
		// Mail failure must not fail the booking.
		s.logger.WarnContext(ctx, "booking confirmation email failed", "booking_id", b.ID, "err", err)
	}
}
