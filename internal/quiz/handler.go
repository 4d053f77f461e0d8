package quiz

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/jurassic-quiz/jurassic-quiz/internal/platform/httpx"
)

// Handler wires HTTP endpoints for the quiz surface.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	validator *validator.Validate
}

// NewHandler constructs a Handler instance.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, service: service, validator: validator.New()}
}

// MountRoutes registers quiz routes on the provided router.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/questions", h.handleQuestions)
	r.Post("/submit", h.handleSubmit)
	r.Get("/leaderboard", h.handleLeaderboard)
}

func (h *Handler) handleQuestions(w http.ResponseWriter, r *http.Request) {
	difficulty := r.URL.Query().Get("difficulty")
	limit := queryInt(r, "limit", defaultLimit)

	questions, err := h.service.Questions(r.Context(), difficulty, limit)
	if err != nil {
		h.logger.Error("list questions", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if questions == nil {
		questions = []Question{}
	}
	httpx.JSON(w, http.StatusOK, questions)
}

type submitPayload struct {
	UserEmail  string `json:"user_email" validate:"required,email"`
	Answers    []int  `json:"answers" validate:"required,min=1"`
	Difficulty string `json:"difficulty"`
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var payload submitPayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", "invalid JSON body")
		return
	}
	if err := h.validator.Struct(payload); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Bad Request", err.Error())
		return
	}

	score, err := h.service.Submit(r.Context(), payload.UserEmail, payload.Answers, payload.Difficulty)
	if err != nil {
		h.logger.Error("submit quiz", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, score)
}

func (h *Handler) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", defaultLimit)

	entries, err := h.service.Leaderboard(r.Context(), limit)
	if err != nil {
		h.logger.Error("leaderboard", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	if entries == nil {
		entries = []LeaderboardEntry{}
	}
	httpx.JSON(w, http.StatusOK, entries)
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
