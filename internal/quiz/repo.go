package quiz

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines persistence operations for the quiz module.
type Repository interface {
	CountQuestions(ctx context.Context, theme string) (int64, error)
	InsertQuestions(ctx context.Context, questions []Question) error
	// Questions returns rows filtered by theme and, when difficulty is
	// non-empty, by difficulty. limit <= 0 means no limit. Rows come back in
	// insertion order.
	Questions(ctx context.Context, theme, difficulty string, limit int) ([]Question, error)
	InsertResult(ctx context.Context, result Result) error
	TopResults(ctx context.Context, theme string, limit int) ([]LeaderboardEntry, error)
}

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// CountQuestions counts stored questions for a theme.
func (r *PGRepository) CountQuestions(ctx context.Context, theme string) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM quiz_questions WHERE theme = $1`, theme,
	).Scan(&count)
	return count, err
}

// InsertQuestions stores the given questions, preserving slice order via the
// serial primary key.
func (r *PGRepository) InsertQuestions(ctx context.Context, questions []Question) error {
	for _, q := range questions {
		if _, err := r.pool.Exec(ctx,
			`INSERT INTO quiz_questions (question, options, answer_index, difficulty, theme)
			 VALUES ($1, $2, $3, $4, $5)`,
			q.Question, q.Options, q.AnswerIndex, q.Difficulty, q.Theme,
		); err != nil {
			return err
		}
	}
	return nil
}

// Questions fetches questions filtered by theme and optional difficulty.
func (r *PGRepository) Questions(ctx context.Context, theme, difficulty string, limit int) ([]Question, error) {
	query := `SELECT id, question, options, answer_index, difficulty, theme
	          FROM quiz_questions WHERE theme = $1`
	args := []any{theme}
	if difficulty != "" {
		query += ` AND difficulty = $2`
		args = append(args, difficulty)
	}
	query += ` ORDER BY id`
	if limit > 0 {
		args = append(args, limit)
		if difficulty != "" {
			query += ` LIMIT $3`
		} else {
			query += ` LIMIT $2`
		}
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []Question
	for rows.Next() {
		var q Question
		if err := rows.Scan(&q.ID, &q.Question, &q.Options, &q.AnswerIndex, &q.Difficulty, &q.Theme); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return questions, nil
}

// InsertResult persists a submission outcome.
func (r *PGRepository) InsertResult(ctx context.Context, result Result) error {
	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO quiz_results (id, user_email, score, total, difficulty, theme, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		result.ID, result.UserEmail, result.Score, result.Total, result.Difficulty, result.Theme, result.CreatedAt,
	)
	return err
}

// TopResults returns results ordered by score descending. Ties fall back to
// storage order, so their relative order is not guaranteed.
func (r *PGRepository) TopResults(ctx context.Context, theme string, limit int) ([]LeaderboardEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT user_email, score, total, difficulty, created_at
		 FROM quiz_results WHERE theme = $1
		 ORDER BY score DESC
		 LIMIT $2`,
		theme, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []LeaderboardEntry
	for rows.Next() {
		var e LeaderboardEntry
		if err := rows.Scan(&e.UserEmail, &e.Score, &e.Total, &e.Difficulty, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

var _ Repository = (*PGRepository)(nil)
