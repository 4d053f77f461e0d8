package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jurassic-quiz/jurassic-quiz/internal/auth"
	"github.com/jurassic-quiz/jurassic-quiz/internal/platform/httpx"
)

type stubRepo struct {
	users    map[string]*auth.User
	sessions map[string]auth.Session
}

func newStubRepo() *stubRepo {
	return &stubRepo{users: make(map[string]*auth.User), sessions: make(map[string]auth.Session)}
}

func (s *stubRepo) CreateUser(ctx context.Context, user *auth.User) error {
	if _, ok := s.users[user.Email]; ok {
		return httpx.ErrConflict
	}
	user.ID = int64(len(s.users) + 1)
	s.users[user.Email] = user
	return nil
}

func (s *stubRepo) FindUserByEmail(ctx context.Context, email string) (*auth.User, error) {
	user, ok := s.users[email]
	if !ok {
		return nil, httpx.ErrNotFound
	}
	return user, nil
}

func (s *stubRepo) CreateSession(ctx context.Context, sess auth.Session) error {
	s.sessions[sess.Token] = sess
	return nil
}

func (s *stubRepo) FindSession(ctx context.Context, token string) (*auth.Session, error) {
	sess, ok := s.sessions[token]
	if !ok {
		return nil, httpx.ErrNotFound
	}
	return &sess, nil
}

func (s *stubRepo) DeleteSession(ctx context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

func (s *stubRepo) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

func newAuthRouter(t *testing.T) (*stubRepo, http.Handler) {
	t.Helper()
	repo := newStubRepo()
	service := auth.NewService(repo, "test-salt", time.Hour, nil)
	handler := auth.NewHandler(nil, service)
	r := chi.NewRouter()
	r.Route("/auth", handler.MountRoutes)
	return repo, r
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func TestRegisterEndpoint(t *testing.T) {
	_, router := newAuthRouter(t)

	res := doJSON(t, router, http.MethodPost, "/auth/register",
		`{"name":"Alan Grant","email":"grant@dig.site","password":"raptor456"}`)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", res.Code, res.Body.String())
	}

	var creds auth.Credentials
	if err := json.Unmarshal(res.Body.Bytes(), &creds); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if creds.Token == "" {
		t.Fatal("expected a session token")
	}
	if creds.Name != "Alan Grant" || creds.Email != "grant@dig.site" {
		t.Fatalf("unexpected profile: %+v", creds)
	}
}

func TestRegisterDuplicateEmailReturns400(t *testing.T) {
	_, router := newAuthRouter(t)

	payload := `{"name":"Alan Grant","email":"grant@dig.site","password":"raptor456"}`
	if res := doJSON(t, router, http.MethodPost, "/auth/register", payload); res.Code != http.StatusOK {
		t.Fatalf("first register: expected 200, got %d", res.Code)
	}
	res := doJSON(t, router, http.MethodPost, "/auth/register", payload)
	if res.Code != http.StatusBadRequest {
		t.Fatalf("duplicate register: expected 400, got %d", res.Code)
	}
}

func TestRegisterRejectsBadPayload(t *testing.T) {
	_, router := newAuthRouter(t)

	res := doJSON(t, router, http.MethodPost, "/auth/register",
		`{"name":"Alan Grant","email":"not-an-email","password":"raptor456"}`)
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid email, got %d", res.Code)
	}

	res = doJSON(t, router, http.MethodPost, "/auth/register", `{not json`)
	if res.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed JSON, got %d", res.Code)
	}
}

func TestLoginEndpoint(t *testing.T) {
	_, router := newAuthRouter(t)

	doJSON(t, router, http.MethodPost, "/auth/register",
		`{"name":"Alan Grant","email":"grant@dig.site","password":"raptor456"}`)

	res := doJSON(t, router, http.MethodPost, "/auth/login",
		`{"email":"grant@dig.site","password":"raptor456"}`)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", res.Code, res.Body.String())
	}

	res = doJSON(t, router, http.MethodPost, "/auth/login",
		`{"email":"grant@dig.site","password":"wrong"}`)
	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", res.Code)
	}

	res = doJSON(t, router, http.MethodPost, "/auth/login",
		`{"email":"nobody@dig.site","password":"raptor456"}`)
	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown email, got %d", res.Code)
	}
}

func TestLogoutAlwaysSucceeds(t *testing.T) {
	repo, router := newAuthRouter(t)

	register := doJSON(t, router, http.MethodPost, "/auth/register",
		`{"name":"Alan Grant","email":"grant@dig.site","password":"raptor456"}`)
	var creds auth.Credentials
	if err := json.Unmarshal(register.Body.Bytes(), &creds); err != nil {
		t.Fatalf("decode register: %v", err)
	}

	res := doJSON(t, router, http.MethodPost, "/auth/logout?token="+creds.Token, "")
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	if !strings.Contains(res.Body.String(), `"success":true`) {
		t.Fatalf("expected success body, got %s", res.Body.String())
	}
	if _, ok := repo.sessions[creds.Token]; ok {
		t.Fatal("session should be revoked")
	}

	// No token, unknown token: still success.
	for _, path := range []string{"/auth/logout", "/auth/logout?token=bogus"} {
		if res := doJSON(t, router, http.MethodPost, path, ""); res.Code != http.StatusOK {
			t.Fatalf("logout %s: expected 200, got %d", path, res.Code)
		}
	}
}

func TestMeEndpoint(t *testing.T) {
	_, router := newAuthRouter(t)

	register := doJSON(t, router, http.MethodPost, "/auth/register",
		`{"name":"Alan Grant","email":"grant@dig.site","password":"raptor456"}`)
	var creds auth.Credentials
	if err := json.Unmarshal(register.Body.Bytes(), &creds); err != nil {
		t.Fatalf("decode register: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+creds.Token)
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", res.Code)
	}
	if !strings.Contains(res.Body.String(), "grant@dig.site") {
		t.Fatalf("expected profile in body, got %s", res.Body.String())
	}

	res = doJSON(t, router, http.MethodGet, "/auth/me", "")
	if res.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", res.Code)
	}
}
