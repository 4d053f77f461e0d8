package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jurassic-quiz/jurassic-quiz/internal/auth"
	"github.com/jurassic-quiz/jurassic-quiz/internal/diag"
	"github.com/jurassic-quiz/jurassic-quiz/internal/platform/httpx"
	"github.com/jurassic-quiz/jurassic-quiz/internal/quiz"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger      *slog.Logger
	Config      *Config
	AuthHandler *auth.Handler
	QuizHandler *quiz.Handler
	DiagHandler *diag.Handler
}

// NewRouter constructs the chi.Router with application defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"message": "Jurassic Quiz API running"})
	})

	r.Route("/auth", params.AuthHandler.MountRoutes)
	r.Route("/quiz", params.QuizHandler.MountRoutes)

	if params.DiagHandler != nil {
		r.Get("/test", params.DiagHandler.TestDatabase)
	}

	return r
}
