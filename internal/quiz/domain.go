package quiz

import "time"

// ThemeJurassic is the only theme shipped today. Seeding and every query key
// on it.
const ThemeJurassic = "jurassic"

// Difficulty levels accepted by the catalog.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// ValidDifficulty reports whether s names a known difficulty level.
func ValidDifficulty(s string) bool {
	return s == DifficultyEasy || s == DifficultyMedium || s == DifficultyHard
}

// Question is an immutable multiple-choice question.
//
// AnswerIndex is serialized in API responses. That leaks the correct answer
// to the client; it is preserved deliberately because the shipped frontend
// grades locally against it. Fixing it means changing the wire contract.
type Question struct {
	ID          int64    `json:"-"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answer_index"`
	Difficulty  string   `json:"difficulty"`
	Theme       string   `json:"theme"`
}

// Result is one submitted quiz run. Append-only; user_email is caller-supplied
// free text, not derived from a session.
type Result struct {
	ID         string    `json:"-"`
	UserEmail  string    `json:"user_email"`
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	Difficulty string    `json:"difficulty"`
	Theme      string    `json:"theme"`
	CreatedAt  time.Time `json:"created_at"`
}

// LeaderboardEntry is the read-only projection served by the leaderboard.
type LeaderboardEntry struct {
	UserEmail  string    `json:"user_email"`
	Score      int       `json:"score"`
	Total      int       `json:"total"`
	Difficulty string    `json:"difficulty"`
	CreatedAt  time.Time `json:"created_at"`
}

// Score is the outcome of a submission.
type Score struct {
	Score int `json:"score"`
	Total int `json:"total"`
}
