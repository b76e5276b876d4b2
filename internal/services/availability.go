package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"mentormatch/internal/availability"
	"mentormatch/internal/domain"
)

// maxConcurrentResolves bounds the per-mentor fan-out. Each candidate's
// resolution is independent, so the limit is purely about store pressure.
const maxConcurrentResolves = 8

type availabilityService struct {
	userRepo       domain.UserRepository
	scheduleRepo   domain.ScheduleRepository
	bookingRepo    domain.BookingRepository
	contextTimeout time.Duration
}

// NewAvailabilityService creates an AvailabilityService backed by the given
// repositories.
func NewAvailabilityService(userRepo domain.UserRepository, scheduleRepo domain.ScheduleRepository, bookingRepo domain.BookingRepository, timeout time.Duration) domain.AvailabilityService {
	return &availabilityService{
		userRepo:       userRepo,
		scheduleRepo:   scheduleRepo,
		bookingRepo:    bookingRepo,
		contextTimeout: timeout,
	}
}

func (s *availabilityService) ResolveMentors(ctx context.Context, q domain.AvailabilityQuery) ([]*domain.MentorAvailability, int, error) {
	if err := q.Validate(); err != nil {
		return nil, 0, err
	}
	if q.Candidates.IdentityMode() {
		for _, email := range q.Candidates.Emails {
			if strings.TrimSpace(email) == "" {
				return nil, 0, fmt.Errorf("%w: empty email in identity list", domain.ErrInvalidRange)
			}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	candidates, err := s.userRepo.ListCandidates(ctx, q.Candidates)
	if err != nil {
		return nil, 0, fmt.Errorf("list candidates: %w", err)
	}

	// Resolution order does not matter; result order must. Sort by email up
	// front so pagination is stable regardless of fetch order.
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Email < candidates[j].Email })

	resolved := make([]*domain.MentorAvailability, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentResolves)
	for i, user := range candidates {
		g.Go(func() error {
			ma, err := s.resolve(gctx, user, q.Window, q.ScheduleName)
			if err != nil {
				return err
			}
			resolved[i] = ma
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// Partial results are never returned as truncated success.
		return nil, 0, err
	}

	matched := make([]*domain.MentorAvailability, 0, len(resolved))
	for _, ma := range resolved {
		if len(ma.FreeRanges) == 0 {
			continue
		}
		matched = append(matched, ma)
	}

	return domain.Slice(matched, q.Page), len(matched), nil
}

func (s *availabilityService) ResolveUser(ctx context.Context, email string, window domain.Interval) (*domain.MentorAvailability, error) {
	if !window.Start.Before(window.End) {
		return nil, fmt.Errorf("%w: from must be before to", domain.ErrInvalidRange)
	}

	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return s.resolve(ctx, user, window, "")
}

// resolve computes one user's availability inside the window: expand weekly
// rules per schedule, apply overrides, subtract busy time.
func (s *availabilityService) resolve(ctx context.Context, user *domain.User, window domain.Interval, scheduleName string) (*domain.MentorAvailability, error) {
	schedules, err := s.scheduleRepo.ListByUser(ctx, user.ID, scheduleName)
	if err != nil {
		return nil, fmt.Errorf("list schedules for user %s: %w", user.ID, err)
	}
	overrides, err := s.scheduleRepo.ListOverrides(ctx, user.ID, window)
	if err != nil {
		return nil, fmt.Errorf("list overrides for user %s: %w", user.ID, err)
	}
	bookings, err := s.bookingRepo.ListOccupying(ctx, user.ID, window)
	if err != nil {
		return nil, fmt.Errorf("list bookings for user %s: %w", user.ID, err)
	}
	outOfOffice, err := s.scheduleRepo.ListOutOfOffice(ctx, user.ID, window)
	if err != nil {
		return nil, fmt.Errorf("list out-of-office for user %s: %w", user.ID, err)
	}

	working := availability.ResolveWorking(schedules, overrides, window)
	busy := availability.CollectBusy(bookings, outOfOffice, window)
	free := availability.Subtract(working, busy)

	if outOfOffice == nil {
		outOfOffice = []*domain.OutOfOffice{}
	}
	return &domain.MentorAvailability{
		User:          user,
		TimeZone:      user.TimeZone,
		FreeRanges:    free,
		BusyIntervals: busy,
		OutOfOffice:   outOfOffice,
	}, nil
}
