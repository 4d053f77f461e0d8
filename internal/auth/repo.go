package auth

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jurassic-quiz/jurassic-quiz/internal/platform/httpx"
)

// Repository defines persistence operations for the auth module.
type Repository interface {
	CreateUser(ctx context.Context, user *User) error
	FindUserByEmail(ctx context.Context, email string) (*User, error)
	CreateSession(ctx context.Context, sess Session) error
	FindSession(ctx context.Context, token string) (*Session, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// CreateUser inserts a new user. A unique-violation on the email index is
// reported as a conflict so register can rely on the constraint instead of
// a racy existence check.
func (r *PGRepository) CreateUser(ctx context.Context, user *User) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, password_hash, avatar, is_active)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		user.Name, user.Email, user.PasswordHash, user.Avatar, user.IsActive,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return httpx.ErrConflict
		}
		return err
	}
	return nil
}

// FindUserByEmail fetches a user by exact email match.
func (r *PGRepository) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, avatar, is_active, created_at
		 FROM users WHERE email = $1`,
		email,
	).Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Avatar, &user.IsActive, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, httpx.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateSession persists a new login session.
func (r *PGRepository) CreateSession(ctx context.Context, sess Session) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO sessions (token, email, created_at, expires_at) VALUES ($1, $2, $3, $4)`,
		sess.Token, sess.Email, sess.CreatedAt, sess.ExpiresAt,
	)
	return err
}

// FindSession looks up a session by exact token match.
func (r *PGRepository) FindSession(ctx context.Context, token string) (*Session, error) {
	var sess Session
	err := r.pool.QueryRow(ctx,
		`SELECT token, email, created_at, expires_at FROM sessions WHERE token = $1`,
		token,
	).Scan(&sess.Token, &sess.Email, &sess.CreatedAt, &sess.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, httpx.ErrNotFound
		}
		return nil, err
	}
	return &sess, nil
}

// DeleteSession removes a session by token. Deleting an absent token is not
// an error.
func (r *PGRepository) DeleteSession(ctx context.Context, token string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	return err
}

// DeleteExpiredSessions removes every session past its expiry, returning the
// number of rows purged. Used by the background housekeeping job; read-time
// expiry in ResolveCurrentUser remains the correctness mechanism.
func (r *PGRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE expires_at < $1`, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

var _ Repository = (*PGRepository)(nil)
