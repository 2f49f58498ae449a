package quiz

import (
	"time"

	"github.com/google/uuid"
)

// State is the position of a session in the quiz lifecycle.
type State int

const (
	StateNotStarted State = iota // No question asked yet
	StateInProgress              // Waiting for an answer to CurrentQuestionID
	StateFinished                // Last question answered and scored
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateInProgress:
		return "in-progress"
	case StateFinished:
		return "finished"
	}
	return "unknown"
}

// Session is the mutable quiz state of one quiz-taker.
type Session struct {
	// Key identifies the quiz-taker to session stores (e.g. "telegram:42").
	Key string

	// ID identifies this attempt. It changes when the session is reset.
	ID string

	// CurrentQuestionID is the question awaiting an answer. Nil before the
	// quiz starts and after it finishes.
	CurrentQuestionID *int

	// Finished marks the terminal state.
	Finished bool

	// Answers maps question ID to the trimmed answer text.
	Answers map[int]string

	StartedAt time.Time
	UpdatedAt time.Time
}

// NewSession creates a fresh, not-started session for key.
func NewSession(key string) *Session {
	return &Session{
		Key:     key,
		ID:      uuid.New().String(),
		Answers: make(map[int]string),
	}
}

// State derives the lifecycle state from the session fields.
func (s *Session) State() State {
	switch {
	case s.Finished:
		return StateFinished
	case s.CurrentQuestionID == nil:
		return StateNotStarted
	default:
		return StateInProgress
	}
}

// Reset returns the session to the not-started state under a new attempt ID.
func (s *Session) Reset() {
	s.ID = uuid.New().String()
	s.CurrentQuestionID = nil
	s.Finished = false
	s.Answers = make(map[int]string)
	s.StartedAt = time.Time{}
}

// Clone returns a deep copy of the session.
func (s *Session) Clone() *Session {
	c := *s
	if s.CurrentQuestionID != nil {
		id := *s.CurrentQuestionID
		c.CurrentQuestionID = &id
	}
	c.Answers = make(map[int]string, len(s.Answers))
	for k, v := range s.Answers {
		c.Answers[k] = v
	}
	return &c
}

func (s *Session) setCurrent(id int) {
	s.CurrentQuestionID = &id
}

func (s *Session) finish() {
	s.CurrentQuestionID = nil
	s.Finished = true
}
