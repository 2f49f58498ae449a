package results

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/quizbot/internal/store"
)

func TestResultsScreen_Title(t *testing.T) {
	s := New(context.Background(), store.NewMemory(), 10)
	if s.Title() != "Scores" {
		t.Errorf("Title = %q, want %q", s.Title(), "Scores")
	}
}

func TestResultsScreen_LoadsResults(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()
	finished := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	if err := mem.AppendResult(ctx, store.Result{
		AttemptID: "a1", Key: "telegram:42", Correct: 5, Total: 7,
		Percentage: 500.0 / 7, FinishedAt: finished,
	}); err != nil {
		t.Fatalf("append result: %v", err)
	}

	s := New(ctx, mem, 10)
	if view := s.View(80, 18); !strings.Contains(view, "Loading") {
		t.Error("expected loading state before results arrive")
	}

	s.Update(s.Init()())

	view := s.View(80, 18)
	for _, want := range []string{"telegram:42", "5/7", "71.4%"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestResultsScreen_Empty(t *testing.T) {
	s := New(context.Background(), store.NewMemory(), 10)
	s.Update(s.Init()())
	if view := s.View(80, 18); !strings.Contains(view, "No finished quizzes yet.") {
		t.Error("expected empty message")
	}
}

func TestResultsScreen_Error(t *testing.T) {
	s := New(context.Background(), store.NewMemory(), 10)
	s.Update(loadedMsg{Err: errors.New("db locked")})
	if view := s.View(80, 18); !strings.Contains(view, "db locked") {
		t.Error("expected error message")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 20); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	if got := truncate("abcdefghij", 5); got != "abcd…" {
		t.Errorf("truncate = %q, want %q", got, "abcd…")
	}
}
