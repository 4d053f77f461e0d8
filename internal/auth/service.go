package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"time"

	"github.com/jurassic-quiz/jurassic-quiz/internal/platform/httpx"
)

// tokenBytes is the entropy of a session token before encoding.
const tokenBytes = 32

// Service wraps authentication business rules.
type Service struct {
	repo       Repository
	salt       string
	sessionTTL time.Duration
	logger     *slog.Logger
}

// NewService constructs a new Service.
func NewService(repo Repository, salt string, sessionTTL time.Duration, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, salt: salt, sessionTTL: sessionTTL, logger: logger}
}

// Register creates a user plus an initial session and returns its token.
// Duplicate emails surface as a conflict via the storage constraint.
func (s *Service) Register(ctx context.Context, name, email, password string) (Credentials, error) {
	user := &User{
		Name:         name,
		Email:        email,
		PasswordHash: HashPassword(s.salt, password),
		IsActive:     true,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return Credentials{}, err
	}

	token, err := s.createSession(ctx, email)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{Token: token, Name: name, Email: email}, nil
}

// Login validates credentials and mints a fresh session, independent of any
// sessions the user already holds. Unknown email and wrong password produce
// the same error so callers cannot tell which check failed.
func (s *Service) Login(ctx context.Context, email, password string) (Credentials, error) {
	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return Credentials{}, httpx.ErrUnauthorized
	}
	if !VerifyPassword(s.salt, password, user.PasswordHash) {
		return Credentials{}, httpx.ErrUnauthorized
	}

	token, err := s.createSession(ctx, email)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{Token: token, Name: user.Name, Email: user.Email}, nil
}

// Logout revokes the given token. It never fails: revoking an absent or
// already-expired token is a no-op.
func (s *Service) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := s.repo.DeleteSession(ctx, token); err != nil {
		s.logger.Warn("revoke session", slog.Any("error", err))
	}
}

// ResolveCurrentUser maps a token to its user. Expired sessions are deleted
// on sight. Any storage fault is treated as "not authenticated" rather than
// propagated; resolution must never turn into a server error.
func (s *Service) ResolveCurrentUser(ctx context.Context, token string) *User {
	if token == "" {
		return nil
	}
	sess, err := s.repo.FindSession(ctx, token)
	if err != nil {
		return nil
	}
	if time.Now().UTC().After(sess.ExpiresAt) {
		if err := s.repo.DeleteSession(ctx, token); err != nil {
			s.logger.Warn("sweep expired session", slog.Any("error", err))
		}
		return nil
	}
	user, err := s.repo.FindUserByEmail(ctx, sess.Email)
	if err != nil {
		return nil
	}
	return user
}

func (s *Service) createSession(ctx context.Context, email string) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()
	sess := Session{
		Token:     token,
		Email:     email,
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.repo.CreateSession(ctx, sess); err != nil {
		return "", err
	}
	return token, nil
}

func newToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
