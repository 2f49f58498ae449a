// Package splash shows the opening banner before the quiz starts.
package splash

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbot/internal/router"
	"github.com/abhisek/quizbot/internal/screen"
	"github.com/abhisek/quizbot/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerAt     = 300 * time.Millisecond
	hintAt       = 900 * time.Millisecond
)

type tickMsg time.Time

// SplashScreen shows the banner and the size of the quiz, then hands over
// to the screen built by next on the first key press.
type SplashScreen struct {
	next         func() screen.Screen
	questions    int
	elapsed      time.Duration
	transitioned bool
}

var _ screen.Screen = (*SplashScreen)(nil)

// New creates a SplashScreen for a quiz of the given number of questions.
func New(questions int, next func() screen.Screen) *SplashScreen {
	return &SplashScreen{next: next, questions: questions}
}

func (s *SplashScreen) Title() string {
	return ""
}

func (s *SplashScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (s *SplashScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		s.elapsed += tickInterval
		if s.elapsed >= hintAt {
			return s, nil
		}
		return s, tick()

	case tea.KeyPressMsg:
		return s, s.transition()
	}
	return s, nil
}

func (s *SplashScreen) transition() tea.Cmd {
	if s.transitioned {
		return nil
	}
	s.transitioned = true
	next := s.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *SplashScreen) View(width, height int) string {
	var sections []string

	if s.elapsed >= bannerAt {
		sections = append(sections, RenderBanner(width), "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render(fmt.Sprintf("%d questions. One message per answer.", s.questions)))
	}

	if s.elapsed >= hintAt {
		sections = append(sections, "", theme.Hint.Render("press any key to begin"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
