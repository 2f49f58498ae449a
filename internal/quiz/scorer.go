package quiz

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/abhisek/quizbot/internal/catalog"
)

// PassThreshold is the percentage at or above which a score is framed as a success.
const PassThreshold = 70.0

// ScoreReport is the outcome of a finished quiz.
type ScoreReport struct {
	Correct    int
	Total      int
	Percentage float64 // 0-100, unrounded
	Message    string
}

// Passed reports whether the score met PassThreshold.
func (r ScoreReport) Passed() bool {
	return r.Percentage >= PassThreshold
}

// Score compares each stored answer against its question's correct answer
// using exact, case-sensitive matching of trimmed text.
//
// The catalog must not be empty; catalog.New guarantees that.
func Score(cat *catalog.Catalog, sess *Session) ScoreReport {
	correct := 0
	for _, q := range cat.All() {
		answer, ok := sess.Answers[q.ID]
		if !ok {
			continue
		}
		if strings.TrimSpace(answer) == strings.TrimSpace(q.CorrectAnswer) {
			correct++
		}
	}

	total := cat.Len()
	report := ScoreReport{
		Correct:    correct,
		Total:      total,
		Percentage: 100 * float64(correct) / float64(total),
	}

	pct := FormatPercentage(report.Percentage)
	if report.Passed() {
		report.Message = fmt.Sprintf("Congratulations! You scored %s%%.", pct)
	} else {
		report.Message = fmt.Sprintf("Your score is %s%%. You may want to review your answers.", pct)
	}
	return report
}

// FormatPercentage rounds p half away from zero to one decimal place and
// drops a trailing ".0": 100 -> "100", 66.666 -> "66.7".
func FormatPercentage(p float64) string {
	rounded := math.Round(p*10) / 10
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
