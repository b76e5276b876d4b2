package domain

import (
	"context"
	"time"
)

// User represents a registered mentor or platform user
// swagger:model User
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	TimeZone     string    `json:"time_zone"`
	Verified     bool      `json:"verified"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Location resolves the user's home time zone, falling back to UTC if the
// zone name is empty or unknown.
func (u *User) Location() *time.Location {
	if u.TimeZone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(u.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// CandidateFilter selects the users considered by an availability query.
// Exactly one mode is active: when Emails is non-empty the filter is in
// identity mode and VerifiedOnly is ignored; otherwise it is in window mode
// over all users, optionally restricted to verified ones.
type CandidateFilter struct {
	Emails       []string
	VerifiedOnly bool
}

// IdentityMode reports whether the filter restricts candidates to an explicit
// identity list.
func (f CandidateFilter) IdentityMode() bool {
	return len(f.Emails) > 0
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}

// UserRepository defines the interface for user storage
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	ListCandidates(ctx context.Context, filter CandidateFilter) ([]*User, error)
}

// AuthService defines the business logic for authenticating callers.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
}
