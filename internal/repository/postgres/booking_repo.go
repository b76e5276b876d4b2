package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"mentormatch/internal/domain"
)

// Postgres error codes mapped to domain errors.
const (
	pqUniqueViolation    = "23505"
	pqExclusionViolation = "23P01"
)

type bookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(db *sql.DB) domain.BookingRepository {
	return &bookingRepository{DB: db}
}

const bookingColumns = `id, uid, user_id, mentee_email, mentee_name, mentee_time_zone,
		event_type_id, title, description, start_at, end_at, status, created_at, updated_at`

func scanBooking(row interface{ Scan(...any) error }) (*domain.Booking, error) {
	b := &domain.Booking{}
	err := row.Scan(&b.ID, &b.UID, &b.UserID, &b.MenteeEmail, &b.MenteeName, &b.MenteeTimeZone,
		&b.EventTypeID, &b.Title, &b.Description, &b.Start, &b.End, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	b.Start = b.Start.UTC()
	b.End = b.End.UTC()
	return b, nil
}

// Create inserts the booking. The bookings table carries an exclusion
// constraint on (user_id, interval) for occupying statuses, so two concurrent
// creates for overlapping intervals cannot both commit; the loser surfaces as
// ErrSlotUnavailable.
func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `
		INSERT INTO bookings (uid, user_id, mentee_email, mentee_name, mentee_time_zone,
			event_type_id, title, description, start_at, end_at, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		b.UID, b.UserID, b.MenteeEmail, b.MenteeName, b.MenteeTimeZone,
		b.EventTypeID, b.Title, b.Description, b.Start, b.End, b.Status, b.CreatedAt, b.UpdatedAt,
	).Scan(&b.ID)
	return mapSlotConflict(err)
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1
	`
	return scanBooking(r.DB.QueryRowContext(ctx, query, id))
}

func (r *bookingRepository) ListOccupying(ctx context.Context, userID string, window domain.Interval) ([]*domain.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE user_id = $1
		  AND status IN ('pending', 'accepted')
		  AND start_at < $3 AND end_at > $2
		ORDER BY start_at
	`
	rows, err := r.DB.QueryContext(ctx, query, userID, window.Start, window.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBookings(rows)
}

func (r *bookingRepository) List(ctx context.Context, filter domain.BookingFilter, page domain.PageParams) ([]*domain.Booking, int, error) {
	countQuery := `
		SELECT COUNT(*)
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		WHERE ($1 = '' OR u.email = $1)
		  AND ($2 = '' OR b.status = $2)
	`
	var total int
	if err := r.DB.QueryRowContext(ctx, countQuery, filter.UserEmail, string(filter.Status)).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT b.id, b.uid, b.user_id, b.mentee_email, b.mentee_name, b.mentee_time_zone,
			b.event_type_id, b.title, b.description, b.start_at, b.end_at, b.status, b.created_at, b.updated_at
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		WHERE ($1 = '' OR u.email = $1)
		  AND ($2 = '' OR b.status = $2)
		ORDER BY b.start_at, b.id
		LIMIT $3 OFFSET $4
	`
	rows, err := r.DB.QueryContext(ctx, query, filter.UserEmail, string(filter.Status), page.Take, page.Skip)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	bookings, err := collectBookings(rows)
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	query := `
		UPDATE bookings
		SET title = $1, description = $2, start_at = $3, end_at = $4, status = $5, updated_at = $6
		WHERE id = $7
	`
	res, err := r.DB.ExecContext(ctx, query, b.Title, b.Description, b.Start, b.End, b.Status, b.UpdatedAt, b.ID)
	if err != nil {
		return mapSlotConflict(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var bookings []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func mapSlotConflict(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == pqExclusionViolation || pqErr.Code == pqUniqueViolation {
			return domain.ErrSlotUnavailable
		}
	}
	return err
}
