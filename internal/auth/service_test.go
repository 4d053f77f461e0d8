package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jurassic-quiz/jurassic-quiz/internal/platform/httpx"
)

type mockRepository struct {
	users    map[string]*User
	sessions map[string]Session

	createUserErr  error
	findSessionErr error
	createSessErr  error
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		users:    make(map[string]*User),
		sessions: make(map[string]Session),
	}
}

func (m *mockRepository) CreateUser(ctx context.Context, user *User) error {
	if m.createUserErr != nil {
		return m.createUserErr
	}
	if _, ok := m.users[user.Email]; ok {
		return httpx.ErrConflict
	}
	user.ID = int64(len(m.users) + 1)
	user.CreatedAt = time.Now().UTC()
	clone := *user
	m.users[user.Email] = &clone
	return nil
}

func (m *mockRepository) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	user, ok := m.users[email]
	if !ok {
		return nil, httpx.ErrNotFound
	}
	clone := *user
	return &clone, nil
}

func (m *mockRepository) CreateSession(ctx context.Context, sess Session) error {
	if m.createSessErr != nil {
		return m.createSessErr
	}
	m.sessions[sess.Token] = sess
	return nil
}

func (m *mockRepository) FindSession(ctx context.Context, token string) (*Session, error) {
	if m.findSessionErr != nil {
		return nil, m.findSessionErr
	}
	sess, ok := m.sessions[token]
	if !ok {
		return nil, httpx.ErrNotFound
	}
	return &sess, nil
}

func (m *mockRepository) DeleteSession(ctx context.Context, token string) error {
	delete(m.sessions, token)
	return nil
}

func (m *mockRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	var n int64
	for token, sess := range m.sessions {
		if sess.ExpiresAt.Before(now) {
			delete(m.sessions, token)
			n++
		}
	}
	return n, nil
}

func newTestService(repo Repository) *Service {
	return NewService(repo, "jurassic-salt", 7*24*time.Hour, nil)
}

func TestRegisterReturnsTokenAndProfile(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	creds, err := svc.Register(context.Background(), "Alan Grant", "grant@dig.site", "raptor456")
	require.NoError(t, err)
	assert.Equal(t, "Alan Grant", creds.Name)
	assert.Equal(t, "grant@dig.site", creds.Email)
	assert.NotEmpty(t, creds.Token)

	raw, err := base64.RawURLEncoding.DecodeString(creds.Token)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(raw), 32, "token must carry at least 32 bytes of entropy")

	stored := repo.users["grant@dig.site"]
	require.NotNil(t, stored)
	assert.True(t, stored.IsActive)
	assert.Equal(t, HashPassword("jurassic-salt", "raptor456"), stored.PasswordHash)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), "Alan Grant", "grant@dig.site", "raptor456")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Other Grant", "grant@dig.site", "different")
	require.Error(t, err)
	assert.ErrorIs(t, err, httpx.ErrConflict)
}

func TestLoginUnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), "Alan Grant", "grant@dig.site", "raptor456")
	require.NoError(t, err)

	_, unknownErr := svc.Login(context.Background(), "nobody@dig.site", "raptor456")
	_, wrongErr := svc.Login(context.Background(), "grant@dig.site", "guessing")
	require.Error(t, unknownErr)
	require.Error(t, wrongErr)
	assert.ErrorIs(t, unknownErr, httpx.ErrUnauthorized)
	assert.ErrorIs(t, wrongErr, httpx.ErrUnauthorized)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error(), "error must not leak which check failed")
}

func TestLoginMintsIndependentSessions(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), "Alan Grant", "grant@dig.site", "raptor456")
	require.NoError(t, err)

	first, err := svc.Login(context.Background(), "grant@dig.site", "raptor456")
	require.NoError(t, err)
	second, err := svc.Login(context.Background(), "grant@dig.site", "raptor456")
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
	assert.Len(t, repo.sessions, 3, "register plus two logins each keep their own session")
	assert.NotNil(t, svc.ResolveCurrentUser(context.Background(), first.Token))
	assert.NotNil(t, svc.ResolveCurrentUser(context.Background(), second.Token))
}

func TestLogoutIsIdempotent(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	creds, err := svc.Register(context.Background(), "Alan Grant", "grant@dig.site", "raptor456")
	require.NoError(t, err)

	svc.Logout(context.Background(), creds.Token)
	assert.Nil(t, svc.ResolveCurrentUser(context.Background(), creds.Token), "revoked token must never resolve again")

	// Second revoke of the same token and revoking garbage are both no-ops.
	svc.Logout(context.Background(), creds.Token)
	svc.Logout(context.Background(), "no-such-token")
	svc.Logout(context.Background(), "")
}

func TestResolveExpiredSessionSweepsRecord(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	_, err := svc.Register(context.Background(), "Alan Grant", "grant@dig.site", "raptor456")
	require.NoError(t, err)

	stale := Session{
		Token:     "stale-token",
		Email:     "grant@dig.site",
		CreatedAt: time.Now().UTC().Add(-8 * 24 * time.Hour),
		ExpiresAt: time.Now().UTC().Add(-24 * time.Hour),
	}
	repo.sessions[stale.Token] = stale

	assert.Nil(t, svc.ResolveCurrentUser(context.Background(), stale.Token))
	_, stillThere := repo.sessions[stale.Token]
	assert.False(t, stillThere, "expired session must be deleted on first access")
}

func TestResolveUserVanished(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	creds, err := svc.Register(context.Background(), "Alan Grant", "grant@dig.site", "raptor456")
	require.NoError(t, err)

	delete(repo.users, "grant@dig.site")
	assert.Nil(t, svc.ResolveCurrentUser(context.Background(), creds.Token))
}

func TestResolveSwallowsStorageFaults(t *testing.T) {
	repo := newMockRepository()
	svc := newTestService(repo)

	repo.findSessionErr = errors.New("connection reset")
	assert.Nil(t, svc.ResolveCurrentUser(context.Background(), "any-token"),
		"storage faults during resolution mean unauthenticated, never a server error")
}
