package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		width, height int
		want          bool
	}{
		{80, 24, false},
		{79, 24, true},
		{80, 23, true},
		{120, 40, false},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.width, tt.height); got != tt.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tt.width, tt.height, got, tt.want)
		}
	}
}

func TestRenderHeader(t *testing.T) {
	header := RenderHeader("Quiz", "Q 2/7", 80)

	for _, want := range []string{"quizbot", "Quiz", "Q 2/7"} {
		if !strings.Contains(header, want) {
			t.Errorf("header missing %q", want)
		}
	}
	if got := lipgloss.Height(header); got != 3 {
		t.Errorf("header height = %d, want 3", got)
	}
}

func TestRenderFrameFillsHeight(t *testing.T) {
	header := RenderHeader("Quiz", "", 80)
	footer := RenderFooter([]KeyHint{{Key: "Enter", Description: "Send"}}, 80)

	frame := RenderFrame(header, "hello", footer, 80, 24)
	if got := lipgloss.Height(frame); got != 24 {
		t.Errorf("frame height = %d, want 24", got)
	}
	if !strings.Contains(frame, "Send") {
		t.Error("frame missing footer hint")
	}
}
