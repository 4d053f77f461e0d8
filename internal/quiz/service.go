package quiz

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/jurassic-quiz/jurassic-quiz/internal/platform/httpx"
)

const defaultLimit = 10

// Service handles catalog, scoring and leaderboard logic.
type Service struct {
	repo      Repository
	cache     *Cache
	logger    *slog.Logger
	seedGroup singleflight.Group
}

// NewService builds a Service instance. cache may be nil.
func NewService(repo Repository, cache *Cache, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, cache: cache, logger: logger}
}

// EnsureSeeded populates the jurassic question set when the catalog is empty.
// Safe to call on every request. In-process concurrent callers collapse into
// one seeding attempt; two separate processes racing past the count can still
// double-seed, an accepted and bounded risk.
func (s *Service) EnsureSeeded(ctx context.Context) error {
	_, err, _ := s.seedGroup.Do("seed:"+ThemeJurassic, func() (any, error) {
		count, err := s.repo.CountQuestions(ctx, ThemeJurassic)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, nil
		}
		s.logger.Info("seeding question catalog", slog.String("theme", ThemeJurassic), slog.Int("count", len(jurassicQuestions)))
		return nil, s.repo.InsertQuestions(ctx, SeedQuestions())
	})
	return err
}

// Questions returns up to limit questions for the theme, optionally filtered
// by difficulty. Unknown difficulty values are ignored rather than rejected.
func (s *Service) Questions(ctx context.Context, difficulty string, limit int) ([]Question, error) {
	if err := s.EnsureSeeded(ctx); err != nil {
		return nil, err
	}
	if !ValidDifficulty(difficulty) {
		difficulty = ""
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	questions, err := s.repo.Questions(ctx, ThemeJurassic, difficulty, limit)
	if err != nil {
		return nil, err
	}

	// Re-serialize into the canonical shape, defaulting anything a partial
	// or malformed row left empty.
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		out = append(out, sanitizeQuestion(q))
	}
	return out, nil
}

// Submit grades answers positionally against the filtered question set and
// persists the outcome.
//
// Grading is positional: the nth answer is compared to the nth question in
// insertion order, not matched by question identity. The stable ORDER BY id
// keeps this aligned with what Questions served, except when a concurrent
// double-seed has duplicated rows.
func (s *Service) Submit(ctx context.Context, userEmail string, answers []int, difficulty string) (Score, error) {
	if err := s.EnsureSeeded(ctx); err != nil {
		return Score{}, err
	}
	if !ValidDifficulty(difficulty) {
		difficulty = ""
	}

	questions, err := s.repo.Questions(ctx, ThemeJurassic, difficulty, 0)
	if err != nil {
		return Score{}, err
	}
	if len(questions) == 0 {
		return Score{}, fmt.Errorf("%w: no questions available", httpx.ErrBadRequest)
	}

	total := len(questions)
	if len(answers) < total {
		total = len(answers)
	}
	score := 0
	for i := 0; i < total; i++ {
		if answers[i] == questions[i].AnswerIndex {
			score++
		}
	}

	resolved := difficulty
	if resolved == "" {
		resolved = questions[0].Difficulty
		if resolved == "" {
			resolved = DifficultyEasy
		}
	}

	result := Result{
		ID:         uuid.NewString(),
		UserEmail:  userEmail,
		Score:      score,
		Total:      total,
		Difficulty: resolved,
		Theme:      ThemeJurassic,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.InsertResult(ctx, result); err != nil {
		return Score{}, err
	}

	if err := s.cache.Bump(ctx); err != nil {
		s.logger.Warn("bump leaderboard cache", slog.Any("error", err))
	}

	return Score{Score: score, Total: total}, nil
}

// Leaderboard returns the top results by score, cached briefly in Redis. A
// cache fault falls back to a direct read rather than failing the request.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if err := s.EnsureSeeded(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	key, err := s.cache.BuildKey(ctx, "quiz", "leaderboard", strconv.Itoa(limit))
	if err == nil {
		var entries []LeaderboardEntry
		cacheErr := s.cache.FetchJSON(ctx, key, &entries, func(ctx context.Context) (any, error) {
			return s.repo.TopResults(ctx, ThemeJurassic, limit)
		})
		if cacheErr == nil {
			return entries, nil
		}
		s.logger.Warn("leaderboard cache read", slog.Any("error", cacheErr))
	} else {
		s.logger.Warn("leaderboard cache key", slog.Any("error", err))
	}

	return s.repo.TopResults(ctx, ThemeJurassic, limit)
}

func sanitizeQuestion(q Question) Question {
	if q.Options == nil {
		q.Options = []string{}
	}
	if q.Difficulty == "" {
		q.Difficulty = DifficultyEasy
	}
	if q.Theme == "" {
		q.Theme = ThemeJurassic
	}
	return q
}
