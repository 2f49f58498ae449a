// Package console runs the quiz as a plain line-oriented conversation over
// a reader and a writer.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/quizbot/internal/chat"
)

// Commands understood on their own line.
const (
	CmdQuit    = "/quit"
	CmdRestart = "/restart"
	CmdStatus  = "/status"
)

// Run greets the quiz-taker identified by key and then answers one line of
// input at a time until EOF, CmdQuit or ctx is cancelled.
func Run(ctx context.Context, in io.Reader, out io.Writer, d *chat.Dispatcher, key string) error {
	replies, err := d.Resume(ctx, key)
	if err != nil {
		return err
	}
	if err := write(out, replies); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Text()
		switch strings.TrimSpace(line) {
		case CmdQuit:
			return nil
		case CmdRestart:
			replies, err = d.Restart(ctx, key)
		case CmdStatus:
			var st chat.Status
			st, err = d.Status(ctx, key)
			replies = []string{st.Summary()}
		default:
			replies, err = d.Handle(ctx, key, line)
		}
		if err != nil {
			return err
		}
		if err := write(out, replies); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func write(out io.Writer, replies []string) error {
	for _, r := range replies {
		if _, err := fmt.Fprintln(out, r); err != nil {
			return fmt.Errorf("write reply: %w", err)
		}
	}
	return nil
}
