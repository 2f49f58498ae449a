package store

import (
	"context"
	"time"

	"github.com/abhisek/quizbot/internal/quiz"
)

// SessionRepo persists quiz sessions by quiz-taker key.
type SessionRepo interface {
	// Load returns the session stored under key, or nil if there is none.
	Load(ctx context.Context, key string) (*quiz.Session, error)

	// Save inserts or replaces the session stored under sess.Key.
	Save(ctx context.Context, sess *quiz.Session) error

	// Delete removes the session stored under key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}

// Result is the outcome of one completed quiz attempt.
type Result struct {
	AttemptID  string
	Key        string
	Correct    int
	Total      int
	Percentage float64
	FinishedAt time.Time
}

// ResultRepo records completed attempts.
type ResultRepo interface {
	// AppendResult records a completed attempt. Appending the same attempt
	// twice keeps the first record.
	AppendResult(ctx context.Context, r Result) error

	// RecentResults returns up to limit results, newest first (0 = unlimited).
	RecentResults(ctx context.Context, limit int) ([]Result, error)
}
