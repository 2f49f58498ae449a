package splash

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizbot/internal/router"
	"github.com/abhisek/quizbot/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "quiz" }
func (s *stubScreen) Title() string                          { return "Quiz" }

func newTestSplash() (*SplashScreen, *int) {
	calls := 0
	return New(7, func() screen.Screen {
		calls++
		return &stubScreen{}
	}), &calls
}

func sendTicks(s *SplashScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		_, cmd = s.Update(tickMsg(time.Now()))
	}
	return cmd
}

func TestPhases(t *testing.T) {
	s, _ := newTestSplash()

	if view := s.View(80, 24); strings.Contains(view, "7 questions") {
		t.Error("tagline should not be visible at start")
	}

	sendTicks(s, 3)
	view := s.View(80, 24)
	if !strings.Contains(view, "7 questions") {
		t.Error("tagline should be visible after the banner phase")
	}
	if strings.Contains(view, "press any key") {
		t.Error("hint should not be visible yet")
	}

	sendTicks(s, 6)
	if view := s.View(80, 24); !strings.Contains(view, "press any key") {
		t.Error("hint should be visible at the end")
	}
}

func TestTicksStopWhenComplete(t *testing.T) {
	s, _ := newTestSplash()
	if cmd := sendTicks(s, 9); cmd != nil {
		t.Error("expected ticking to stop once the animation completes")
	}
	if s.elapsed != hintAt {
		t.Errorf("elapsed = %v, want %v", s.elapsed, hintAt)
	}
}

func TestKeypressEmitsReplace(t *testing.T) {
	s, calls := newTestSplash()
	sendTicks(s, 2)

	_, cmd := s.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("expected a command from keypress")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if *calls != 1 {
		t.Errorf("factory calls = %d, want 1", *calls)
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	s, calls := newTestSplash()
	s.Update(tea.KeyPressMsg{Code: 'a'})

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'b'})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *calls != 1 {
		t.Errorf("factory calls = %d, want 1", *calls)
	}
}

func TestCompactBanner(t *testing.T) {
	if got := RenderBanner(40); !strings.Contains(got, "Q U I Z B O T") {
		t.Errorf("compact banner = %q", got)
	}
}
