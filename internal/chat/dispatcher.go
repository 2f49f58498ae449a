package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/abhisek/quizbot/internal/catalog"
	"github.com/abhisek/quizbot/internal/quiz"
	"github.com/abhisek/quizbot/internal/store"
)

// Options configures a Dispatcher.
type Options struct {
	Catalog  *catalog.Catalog
	Sessions store.SessionRepo

	// Results records completed attempts. Nil disables the result log.
	Results store.ResultRepo

	Policy FinishedPolicy

	// Welcome overrides quiz.DefaultWelcome when non-empty.
	Welcome string

	// Logger receives warnings. Nil discards them.
	Logger *log.Logger

	// Now overrides time.Now.
	Now func() time.Time
}

// Dispatcher routes incoming messages to the quiz engine. It loads the
// session for the sender, lets the engine respond and records finished
// attempts. Calls for the same key are serialized.
type Dispatcher struct {
	engine   *quiz.Engine
	sessions store.SessionRepo
	results  store.ResultRepo
	policy   FinishedPolicy
	logger   *log.Logger
	now      func() time.Time
	locks    *keyedMutex
}

// New creates a Dispatcher from opts.
func New(opts Options) *Dispatcher {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard, "", 0)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	engineOpts := []quiz.Option{quiz.WithClock(opts.Now)}
	if opts.Welcome != "" {
		engineOpts = append(engineOpts, quiz.WithWelcome(opts.Welcome))
	}

	return &Dispatcher{
		engine:   quiz.NewEngine(opts.Catalog, opts.Sessions, engineOpts...),
		sessions: opts.Sessions,
		results:  opts.Results,
		policy:   opts.Policy,
		logger:   opts.Logger,
		now:      opts.Now,
		locks:    newKeyedMutex(),
	}
}

// Catalog returns the catalog the quiz runs over.
func (d *Dispatcher) Catalog() *catalog.Catalog {
	return d.engine.Catalog()
}

// Policy returns the finished-state policy.
func (d *Dispatcher) Policy() FinishedPolicy {
	return d.policy
}

// Handle processes one message from the quiz-taker identified by key and
// returns the replies to send.
func (d *Dispatcher) Handle(ctx context.Context, key, message string) ([]string, error) {
	unlock := d.locks.Lock(key)
	defer unlock()

	sess, err := d.load(ctx, key)
	if err != nil {
		return nil, err
	}
	return d.respond(ctx, sess, message)
}

// Resume tells the quiz-taker where they are: the current question when a
// quiz is in progress, otherwise whatever Handle would reply to an empty
// message.
func (d *Dispatcher) Resume(ctx context.Context, key string) ([]string, error) {
	unlock := d.locks.Lock(key)
	defer unlock()

	sess, err := d.load(ctx, key)
	if err != nil {
		return nil, err
	}
	if text, ok := d.engine.CurrentQuestion(sess); ok {
		return []string{text}, nil
	}
	return d.respond(ctx, sess, "")
}

// Restart abandons the current attempt for key and starts a new one.
func (d *Dispatcher) Restart(ctx context.Context, key string) ([]string, error) {
	unlock := d.locks.Lock(key)
	defer unlock()

	sess, err := d.load(ctx, key)
	if err != nil {
		return nil, err
	}
	sess.Reset()
	return d.respond(ctx, sess, "")
}

// Reset deletes the stored session for key.
func (d *Dispatcher) Reset(ctx context.Context, key string) error {
	unlock := d.locks.Lock(key)
	defer unlock()

	if err := d.sessions.Delete(ctx, key); err != nil {
		return fmt.Errorf("reset %s: %w", key, err)
	}
	return nil
}

// Status reports the progress of the quiz-taker identified by key.
func (d *Dispatcher) Status(ctx context.Context, key string) (Status, error) {
	unlock := d.locks.Lock(key)
	defer unlock()

	sess, err := d.load(ctx, key)
	if err != nil {
		return Status{}, err
	}
	return d.status(sess), nil
}

func (d *Dispatcher) load(ctx context.Context, key string) (*quiz.Session, error) {
	sess, err := d.sessions.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", key, err)
	}
	if sess == nil {
		return quiz.NewSession(key), nil
	}

	// A catalog that shrank since the session was saved leaves it pointing
	// at a question that no longer exists.
	if cur := sess.CurrentQuestionID; cur != nil && (*cur < 0 || *cur >= d.engine.Catalog().Len()) {
		d.logger.Printf("warning: session %s is at question id %d but the catalog has %d questions; starting a new attempt",
			key, *cur, d.engine.Catalog().Len())
		sess.Reset()
	}
	return sess, nil
}

func (d *Dispatcher) respond(ctx context.Context, sess *quiz.Session, message string) ([]string, error) {
	if sess.State() == quiz.StateFinished {
		if d.policy != PolicyRestart {
			return []string{FinishedReply}, nil
		}
		sess.Reset()
	}

	replies, err := d.engine.Respond(ctx, sess, message)
	if errors.Is(err, quiz.ErrSessionFinished) {
		return []string{FinishedReply}, nil
	}
	if err != nil {
		return nil, err
	}

	// The state only turns finished inside Respond, so this runs once per attempt.
	if sess.State() == quiz.StateFinished {
		d.recordResult(ctx, sess)
	}
	return replies, nil
}

func (d *Dispatcher) recordResult(ctx context.Context, sess *quiz.Session) {
	if d.results == nil {
		return
	}
	report := quiz.Score(d.engine.Catalog(), sess)
	res := store.Result{
		AttemptID:  sess.ID,
		Key:        sess.Key,
		Correct:    report.Correct,
		Total:      report.Total,
		Percentage: report.Percentage,
		FinishedAt: d.now(),
	}
	if err := d.results.AppendResult(ctx, res); err != nil {
		d.logger.Printf("warning: record result for %s: %v", sess.Key, err)
	}
}
