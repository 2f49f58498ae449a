// Package results lists recently completed quiz attempts.
package results

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbot/internal/quiz"
	"github.com/abhisek/quizbot/internal/screen"
	"github.com/abhisek/quizbot/internal/store"
	"github.com/abhisek/quizbot/internal/ui/layout"
	"github.com/abhisek/quizbot/internal/ui/theme"
)

type loadedMsg struct {
	Results []store.Result
	Err     error
}

// ResultsScreen shows the newest results from a ResultRepo.
type ResultsScreen struct {
	ctx     context.Context
	repo    store.ResultRepo
	limit   int
	results []store.Result
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen that shows up to limit results.
func New(ctx context.Context, repo store.ResultRepo, limit int) *ResultsScreen {
	return &ResultsScreen{ctx: ctx, repo: repo, limit: limit}
}

func (s *ResultsScreen) Init() tea.Cmd {
	ctx, repo, limit := s.ctx, s.repo, s.limit
	return func() tea.Msg {
		results, err := repo.RecentResults(ctx, limit)
		return loadedMsg{Results: results, Err: err}
	}
}

func (s *ResultsScreen) Title() string {
	return "Scores"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(loadedMsg); ok {
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.results = msg.Results
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	var body string
	switch {
	case s.errMsg != "":
		body = theme.Incorrect.Render("Could not load scores: " + s.errMsg)
	case !s.loaded:
		body = theme.Hint.Render("Loading...")
	case len(s.results) == 0:
		body = theme.Hint.Render("No finished quizzes yet.")
	default:
		body = s.renderTable()
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func (s *ResultsScreen) renderTable() string {
	lines := []string{
		theme.Title.Render(fmt.Sprintf("%-17s  %-20s  %7s  %6s", "Finished", "Player", "Correct", "Score")),
	}
	for _, r := range s.results {
		row := fmt.Sprintf("%-17s  %-20s  %7s  %6s",
			r.FinishedAt.Local().Format("2006-01-02 15:04"),
			truncate(r.Key, 20),
			fmt.Sprintf("%d/%d", r.Correct, r.Total),
			quiz.FormatPercentage(r.Percentage)+"%",
		)
		style := theme.Incorrect
		if r.Percentage >= quiz.PassThreshold {
			style = theme.Correct
		}
		lines = append(lines, style.Render(row))
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
