package telegram

import (
	"context"
	"fmt"
	"log"
	"sync"

	tele "gopkg.in/telebot.v4"

	"github.com/abhisek/quizbot/internal/chat"
)

// sessionKey maps a Telegram user to a session store key.
func sessionKey(userID int64) string {
	return fmt.Sprintf("telegram:%d", userID)
}

type handlers struct {
	d      *chat.Dispatcher
	logger *log.Logger

	mu  sync.RWMutex
	ctx context.Context
}

func newHandlers(d *chat.Dispatcher, logger *log.Logger) *handlers {
	return &handlers{d: d, logger: logger, ctx: context.Background()}
}

func (h *handlers) setContext(ctx context.Context) {
	h.mu.Lock()
	h.ctx = ctx
	h.mu.Unlock()
}

func (h *handlers) baseContext() context.Context {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.ctx
}

// reply runs fn for the sender and sends its replies in order. Failures are
// logged and answered with FailureReply.
func (h *handlers) reply(c tele.Context, fn func(ctx context.Context, key string) ([]string, error)) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}
	key := sessionKey(sender.ID)

	replies, err := fn(h.baseContext(), key)
	if err != nil {
		h.logger.Printf("error: %s: %v", key, err)
		return c.Send(FailureReply)
	}
	for _, r := range replies {
		if err := c.Send(r); err != nil {
			return fmt.Errorf("send to %s: %w", key, err)
		}
	}
	return nil
}

func (h *handlers) start(c tele.Context) error {
	return h.reply(c, h.d.Resume)
}

func (h *handlers) restart(c tele.Context) error {
	return h.reply(c, h.d.Restart)
}

func (h *handlers) status(c tele.Context) error {
	return h.reply(c, func(ctx context.Context, key string) ([]string, error) {
		st, err := h.d.Status(ctx, key)
		if err != nil {
			return nil, err
		}
		return []string{st.Summary()}, nil
	})
}

func (h *handlers) text(c tele.Context) error {
	msg := c.Text()
	return h.reply(c, func(ctx context.Context, key string) ([]string, error) {
		return h.d.Handle(ctx, key, msg)
	})
}
