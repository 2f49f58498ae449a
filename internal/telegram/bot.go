// Package telegram serves the quiz over a Telegram bot.
package telegram

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/abhisek/quizbot/internal/chat"
)

// FailureReply is sent when a message could not be processed.
const FailureReply = "Something went wrong. Please try again."

// Settings configures the bot.
type Settings struct {
	Token       string
	PollTimeout time.Duration
}

// Bot connects a Telegram long poller to a chat.Dispatcher.
type Bot struct {
	bot      *tele.Bot
	handlers *handlers
	logger   *log.Logger
}

// New creates the bot and registers its handlers. It contacts Telegram to
// verify the token.
func New(s Settings, d *chat.Dispatcher, logger *log.Logger) (*Bot, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	bot, err := tele.NewBot(tele.Settings{
		Token:  s.Token,
		Poller: &tele.LongPoller{Timeout: s.PollTimeout},
		OnError: func(err error, c tele.Context) {
			logger.Printf("error: %v", err)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	b := &Bot{
		bot:      bot,
		handlers: newHandlers(d, logger),
		logger:   logger,
	}
	b.register()
	return b, nil
}

func (b *Bot) register() {
	b.bot.Use(Recover(b.logger), Logger(b.logger))

	b.bot.Handle("/start", b.handlers.start)
	b.bot.Handle("/restart", b.handlers.restart)
	b.bot.Handle("/status", b.handlers.status)
	b.bot.Handle(tele.OnText, b.handlers.text)
}

// Commands is the command menu shown by Telegram clients.
var Commands = []tele.Command{
	{Text: "start", Description: "Start the quiz or repeat the current question"},
	{Text: "restart", Description: "Start over with a new attempt"},
	{Text: "status", Description: "Show your progress"},
}

// Run polls for updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.bot.SetCommands(Commands); err != nil {
		b.logger.Printf("warning: set commands: %v", err)
	}

	b.handlers.setContext(ctx)
	go func() {
		<-ctx.Done()
		b.bot.Stop()
	}()

	b.logger.Printf("polling as @%s", b.bot.Me.Username)
	b.bot.Start()
	return nil
}
