package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"mentormatch/internal/domain"
)

type scheduleRepository struct {
	DB *sql.DB
}

func NewScheduleRepository(db *sql.DB) domain.ScheduleRepository {
	return &scheduleRepository{DB: db}
}

func (r *scheduleRepository) ListByUser(ctx context.Context, userID, name string) ([]*domain.Schedule, error) {
	query := `
		SELECT s.id, s.user_id, s.name, s.time_zone, r.days, r.start_minute, r.end_minute
		FROM schedules s
		LEFT JOIN schedule_rules r ON r.schedule_id = s.id
		WHERE s.user_id = $1 AND ($2 = '' OR s.name = $2)
		ORDER BY s.id, r.id
	`
	rows, err := r.DB.QueryContext(ctx, query, userID, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[string]*domain.Schedule)
	var schedules []*domain.Schedule
	for rows.Next() {
		var (
			s           domain.Schedule
			days        pq.Int64Array
			startMinute sql.NullInt64
			endMinute   sql.NullInt64
		)
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.TimeZone, &days, &startMinute, &endMinute); err != nil {
			return nil, err
		}
		sched, ok := byID[s.ID]
		if !ok {
			sched = &domain.Schedule{ID: s.ID, UserID: s.UserID, Name: s.Name, TimeZone: s.TimeZone}
			byID[s.ID] = sched
			schedules = append(schedules, sched)
		}
		if startMinute.Valid && endMinute.Valid {
			rule := domain.WeeklyRule{
				Days:        make([]domain.Weekday, len(days)),
				StartMinute: int(startMinute.Int64),
				EndMinute:   int(endMinute.Int64),
			}
			for i, d := range days {
				rule.Days[i] = domain.Weekday(d)
			}
			sched.Rules = append(sched.Rules, rule)
		}
	}
	return schedules, rows.Err()
}

func (r *scheduleRepository) ListOverrides(ctx context.Context, userID string, window domain.Interval) ([]*domain.DateOverride, error) {
	// An unavailable date is a row with NULL times; a replacement set is one
	// row per interval. Rows are regrouped by (schedule, date) here.
	query := `
		SELECT o.schedule_id, o.date, o.unavailable, o.start_at, o.end_at
		FROM date_overrides o
		JOIN schedules s ON s.id = o.schedule_id
		WHERE s.user_id = $1 AND o.date >= $2 AND o.date <= $3
		ORDER BY o.schedule_id, o.date, o.start_at
	`
	rows, err := r.DB.QueryContext(ctx, query, userID,
		window.Start.AddDate(0, 0, -1).Format(domain.OverrideDateLayout),
		window.End.AddDate(0, 0, 1).Format(domain.OverrideDateLayout))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	type key struct{ scheduleID, date string }
	byKey := make(map[key]*domain.DateOverride)
	var overrides []*domain.DateOverride
	for rows.Next() {
		var (
			scheduleID  string
			date        string
			unavailable bool
			startAt     sql.NullTime
			endAt       sql.NullTime
		)
		if err := rows.Scan(&scheduleID, &date, &unavailable, &startAt, &endAt); err != nil {
			return nil, err
		}
		k := key{scheduleID, date}
		ov, ok := byKey[k]
		if !ok {
			ov = &domain.DateOverride{ScheduleID: scheduleID, Date: date, Unavailable: unavailable}
			byKey[k] = ov
			overrides = append(overrides, ov)
		}
		if unavailable {
			ov.Unavailable = true
		}
		if startAt.Valid && endAt.Valid {
			ov.Intervals = append(ov.Intervals, domain.Interval{Start: startAt.Time.UTC(), End: endAt.Time.UTC()})
		}
	}
	return overrides, rows.Err()
}

func (r *scheduleRepository) ListOutOfOffice(ctx context.Context, userID string, window domain.Interval) ([]*domain.OutOfOffice, error) {
	query := `
		SELECT id, user_id, start_at, end_at, reason
		FROM out_of_office
		WHERE user_id = $1 AND start_at < $3 AND end_at > $2
		ORDER BY start_at
	`
	rows, err := r.DB.QueryContext(ctx, query, userID, window.Start, window.End)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var periods []*domain.OutOfOffice
	for rows.Next() {
		o := &domain.OutOfOffice{}
		var start, end time.Time
		if err := rows.Scan(&o.ID, &o.UserID, &start, &end, &o.Reason); err != nil {
			return nil, err
		}
		o.Start = start.UTC()
		o.End = end.UTC()
		periods = append(periods, o)
	}
	return periods, rows.Err()
}
