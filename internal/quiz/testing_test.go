package quiz

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/quizbot/internal/catalog"
)

// recordingSaver captures every saved session snapshot.
type recordingSaver struct {
	saved []*Session
	err   error
}

func (r *recordingSaver) Save(_ context.Context, sess *Session) error {
	if r.err != nil {
		return r.err
	}
	r.saved = append(r.saved, sess.Clone())
	return nil
}

var errSaveFailed = errors.New("disk full")

func exampleCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Question{
		{ID: 0, Text: "2+2?", CorrectAnswer: "4"},
		{ID: 1, Text: "Capital of France?", CorrectAnswer: "Paris"},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return cat
}

func fourQuestionCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Question{
		{ID: 0, Text: "q0", CorrectAnswer: "a0"},
		{ID: 1, Text: "q1", CorrectAnswer: "a1"},
		{ID: 2, Text: "q2", CorrectAnswer: "a2"},
		{ID: 3, Text: "q3", CorrectAnswer: "a3"},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return cat
}

func intPtr(v int) *int { return &v }
