// Package chat is the terminal chat screen: the quiz transcript with an
// input line under it.
package chat

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	qchat "github.com/abhisek/quizbot/internal/chat"
	"github.com/abhisek/quizbot/internal/quiz"
	"github.com/abhisek/quizbot/internal/screen"
	"github.com/abhisek/quizbot/internal/ui/components"
	"github.com/abhisek/quizbot/internal/ui/layout"
	"github.com/abhisek/quizbot/internal/ui/theme"
)

// entry is one line of the transcript.
type entry struct {
	fromUser bool
	text     string
}

// ChatScreen implements screen.Screen for a quiz conversation.
type ChatScreen struct {
	ctx        context.Context
	dispatcher *qchat.Dispatcher
	key        string

	transcript []entry
	input      components.TextInput
	status     qchat.Status
	busy       bool
	errMsg     string
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)
var _ screen.StatusProvider = (*ChatScreen)(nil)
var _ screen.BusyReporter = (*ChatScreen)(nil)

// New creates a ChatScreen for the quiz-taker identified by key.
func New(ctx context.Context, d *qchat.Dispatcher, key string) *ChatScreen {
	return &ChatScreen{
		ctx:        ctx,
		dispatcher: d,
		key:        key,
		input:      components.NewTextInput("Type your answer...", 200),
		busy:       true,
	}
}

func (s *ChatScreen) Init() tea.Cmd {
	return tea.Batch(s.resume(), s.input.Init())
}

func (s *ChatScreen) Title() string {
	return "Quiz"
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+R", Description: "Restart"},
		{Key: "Ctrl+S", Description: "Scores"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Status summarizes progress for the header.
func (s *ChatScreen) Status() string {
	switch s.status.State {
	case quiz.StateInProgress:
		return fmt.Sprintf("Q %d/%d", s.status.Question, s.status.Total)
	case quiz.StateFinished:
		if s.status.Report != nil {
			return quiz.FormatPercentage(s.status.Report.Percentage) + "%"
		}
		return "done"
	}
	return ""
}

// Busy reports whether a reply is still outstanding.
func (s *ChatScreen) Busy() bool {
	return s.busy
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		for _, r := range msg.Replies {
			s.transcript = append(s.transcript, entry{text: r})
		}
		s.status = msg.Status
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "enter":
			if s.busy {
				return s, nil
			}
			text := s.input.Take()
			s.transcript = append(s.transcript, entry{fromUser: true, text: text})
			s.busy = true
			return s, s.send(text)
		case "ctrl+r":
			if s.busy {
				return s, nil
			}
			s.transcript = append(s.transcript, entry{fromUser: true, text: "/restart"})
			s.busy = true
			return s, s.restart()
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ChatScreen) resume() tea.Cmd {
	return s.call(s.dispatcher.Resume)
}

func (s *ChatScreen) restart() tea.Cmd {
	return s.call(s.dispatcher.Restart)
}

func (s *ChatScreen) send(text string) tea.Cmd {
	return s.call(func(ctx context.Context, key string) ([]string, error) {
		return s.dispatcher.Handle(ctx, key, text)
	})
}

// call runs fn off the update loop and reports its replies with the
// resulting status.
func (s *ChatScreen) call(fn func(ctx context.Context, key string) ([]string, error)) tea.Cmd {
	ctx, d, key := s.ctx, s.dispatcher, s.key
	return func() tea.Msg {
		replies, err := fn(ctx, key)
		if err != nil {
			return replyMsg{Err: err}
		}
		st, err := d.Status(ctx, key)
		if err != nil {
			return replyMsg{Err: err}
		}
		return replyMsg{Replies: replies, Status: st}
	}
}

func (s *ChatScreen) View(width, height int) string {
	contentWidth := width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	var top []string
	if s.status.Total > 0 {
		done := float64(s.status.Answered) / float64(s.status.Total)
		label := fmt.Sprintf("%d/%d answered", s.status.Answered, s.status.Total)
		top = append(top, components.NewProgressBar(label, done, false, contentWidth).View())
		if !layout.IsCompactHeight(height) {
			top = append(top, "")
		}
	}

	var bottom []string
	if s.errMsg != "" {
		bottom = append(bottom, theme.Incorrect.Render("Error: "+s.errMsg))
	}
	bottom = append(bottom, s.input.View(contentWidth))

	topHeight := lipgloss.Height(strings.Join(top, "\n"))
	if len(top) == 0 {
		topHeight = 0
	}
	bottomHeight := lipgloss.Height(strings.Join(bottom, "\n"))
	transcriptHeight := height - topHeight - bottomHeight
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}

	transcript := lipgloss.NewStyle().
		Height(transcriptHeight).
		Render(s.renderTranscript(contentWidth, transcriptHeight))

	sections := append(top, transcript)
	sections = append(sections, bottom...)

	return lipgloss.NewStyle().
		Padding(0, 2).
		Render(strings.Join(sections, "\n"))
}

// renderTranscript wraps every entry to width and keeps the newest lines
// that fit in height.
func (s *ChatScreen) renderTranscript(width, height int) string {
	wrap := lipgloss.NewStyle().Width(width - 2)

	var lines []string
	for _, e := range s.transcript {
		var block string
		if e.fromUser {
			block = lipgloss.JoinHorizontal(lipgloss.Top,
				theme.UserPrefix.Render("› "), theme.UserText.Render(wrap.Render(e.text)))
		} else {
			block = lipgloss.JoinHorizontal(lipgloss.Top,
				theme.BotPrefix.Render("● "), theme.Body.Render(wrap.Render(e.text)))
		}
		lines = append(lines, strings.Split(block, "\n")...)
	}
	if s.busy {
		lines = append(lines, theme.Hint.Render("…"))
	}

	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return strings.Join(lines, "\n")
}
