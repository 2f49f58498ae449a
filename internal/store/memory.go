package store

import (
	"context"
	"sort"
	"sync"

	"github.com/abhisek/quizbot/internal/quiz"
)

// Memory is a process-local SessionRepo and ResultRepo. Sessions are
// cloned on the way in and out so callers never share state with the store.
type Memory struct {
	mu       sync.Mutex
	sessions map[string]*quiz.Session
	results  []Result
	seen     map[string]struct{}
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		sessions: make(map[string]*quiz.Session),
		seen:     make(map[string]struct{}),
	}
}

func (m *Memory) Load(_ context.Context, key string) (*quiz.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[key]
	if !ok {
		return nil, nil
	}
	return sess.Clone(), nil
}

func (m *Memory) Save(_ context.Context, sess *quiz.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[sess.Key] = sess.Clone()
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, key)
	return nil
}

func (m *Memory) AppendResult(_ context.Context, r Result) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, dup := m.seen[r.AttemptID]; dup {
		return nil
	}
	m.seen[r.AttemptID] = struct{}{}
	m.results = append(m.results, r)
	return nil
}

func (m *Memory) RecentResults(_ context.Context, limit int) ([]Result, error) {
	m.mu.Lock()
	out := make([]Result, len(m.results))
	copy(out, m.results)
	m.mu.Unlock()

	// Newest first; equal timestamps keep reverse insertion order.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FinishedAt.After(out[j].FinishedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
