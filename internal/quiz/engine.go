package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/quizbot/internal/catalog"
)

// DefaultWelcome is the greeting sent before the first question.
const DefaultWelcome = "Welcome to the quiz! Reply to each question with a single message."

// Saver persists a session after the engine mutates it.
type Saver interface {
	Save(ctx context.Context, sess *Session) error
}

// Option configures an Engine.
type Option func(*Engine)

// WithWelcome overrides the greeting sent when a session starts.
func WithWelcome(text string) Option {
	return func(e *Engine) {
		e.welcome = text
	}
}

// WithClock overrides the time source used to stamp sessions.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// Engine drives a session through the catalog one incoming message at a time.
type Engine struct {
	catalog *catalog.Catalog
	saver   Saver
	welcome string
	now     func() time.Time
}

// NewEngine creates an Engine over cat that persists through saver.
func NewEngine(cat *catalog.Catalog, saver Saver, opts ...Option) *Engine {
	e := &Engine{
		catalog: cat,
		saver:   saver,
		welcome: DefaultWelcome,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Catalog returns the engine's question catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// WelcomeMessage is the greeting followed by the first question.
func (e *Engine) WelcomeMessage() string {
	return e.welcome + "\n\n" + e.catalog.First().Text
}

// Respond handles one incoming message and returns the replies to send, in
// order. Rejected answers produce their validation message as the only reply
// and leave the session where it was. A finished session yields
// ErrSessionFinished. On any error sess is left unchanged.
func (e *Engine) Respond(ctx context.Context, sess *Session, message string) ([]string, error) {
	if sess.State() == StateFinished {
		return nil, ErrSessionFinished
	}

	next := sess.Clone()
	replies, err := e.step(ctx, next, message)
	if err != nil {
		return nil, err
	}
	*sess = *next
	return replies, nil
}

// step advances sess by one message and saves it when it changed.
func (e *Engine) step(ctx context.Context, sess *Session, message string) ([]string, error) {
	if sess.State() == StateNotStarted {
		// The opening message only starts the quiz; it is never an answer.
		sess.setCurrent(0)
		sess.StartedAt = e.now()
		if err := e.save(ctx, sess); err != nil {
			return nil, err
		}
		return []string{e.WelcomeMessage()}, nil
	}

	current := *sess.CurrentQuestionID
	if _, err := e.catalog.Get(current); err != nil {
		return nil, fmt.Errorf("session %s: %w", sess.ID, err)
	}

	if err := RecordAnswer(message, current, sess); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return []string{verr.Message}, nil
		}
		return nil, err
	}

	var reply string
	if text, next, ok := NextQuestion(e.catalog, &current); ok {
		reply = text
		sess.setCurrent(next)
	} else {
		reply = Score(e.catalog, sess).Message
		sess.finish()
	}

	if err := e.save(ctx, sess); err != nil {
		return nil, err
	}
	return []string{reply}, nil
}

// CurrentQuestion returns the text of the question awaiting an answer.
func (e *Engine) CurrentQuestion(sess *Session) (string, bool) {
	if sess.State() != StateInProgress {
		return "", false
	}
	q, err := e.catalog.Get(*sess.CurrentQuestionID)
	if err != nil {
		return "", false
	}
	return q.Text, true
}

func (e *Engine) save(ctx context.Context, sess *Session) error {
	sess.UpdatedAt = e.now()
	if err := e.saver.Save(ctx, sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}
