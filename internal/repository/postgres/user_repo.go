package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"mentormatch/internal/domain"
)

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{DB: db}
}

const userColumns = `id, email, name, time_zone, verified, password_hash, salt, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.TimeZone, &u.Verified, &u.PasswordHash, &u.Salt, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`
	return scanUser(r.DB.QueryRowContext(ctx, query, email))
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`
	return scanUser(r.DB.QueryRowContext(ctx, query, id))
}

func (r *userRepository) ListCandidates(ctx context.Context, filter domain.CandidateFilter) ([]*domain.User, error) {
	// Ordering by email keeps candidate enumeration deterministic; callers
	// paginate on top of this order.
	var (
		query string
		args  []any
	)
	switch {
	case filter.IdentityMode():
		query = `
			SELECT ` + userColumns + `
			FROM users
			WHERE email = ANY($1)
			ORDER BY email
		`
		args = []any{pq.Array(filter.Emails)}
	case filter.VerifiedOnly:
		query = `
			SELECT ` + userColumns + `
			FROM users
			WHERE verified
			ORDER BY email
		`
	default:
		query = `
			SELECT ` + userColumns + `
			FROM users
			ORDER BY email
		`
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
