package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbot/internal/chat"
	"github.com/abhisek/quizbot/internal/router"
	"github.com/abhisek/quizbot/internal/screen"
	chatscreen "github.com/abhisek/quizbot/internal/screens/chat"
	"github.com/abhisek/quizbot/internal/screens/results"
	"github.com/abhisek/quizbot/internal/screens/splash"
	"github.com/abhisek/quizbot/internal/store"
	"github.com/abhisek/quizbot/internal/ui/layout"
)

// scoreLimit is how many results the scores screen lists.
const scoreLimit = 20

// Options holds dependencies for the TUI.
type Options struct {
	Dispatcher *chat.Dispatcher

	// Results backs the scores screen. Nil disables it.
	Results store.ResultRepo

	// Key identifies the local quiz-taker to the session store.
	Key string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	ctx    context.Context
	opts   Options
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the splash screen.
func newAppModel(ctx context.Context, opts Options) AppModel {
	quizScreen := func() screen.Screen {
		return chatscreen.New(ctx, opts.Dispatcher, opts.Key)
	}
	return AppModel{
		ctx:    ctx,
		opts:   opts,
		router: router.New(splash.New(opts.Dispatcher.Catalog().Len(), quizScreen)),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		case "ctrl+s":
			// Covering a screen with a pending reply would drop that reply.
			if b, ok := m.router.Active().(screen.BusyReporter); ok && b.Busy() {
				return m, nil
			}
			if m.opts.Results != nil && m.router.Depth() == 1 {
				scores := results.New(m.ctx, m.opts.Results, scoreLimit)
				return m, func() tea.Msg { return router.PushScreenMsg{Screen: scores} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current window size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title, status := "", ""
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newAppModel(ctx, opts), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
