package catalog

import (
	"fmt"
	"strings"
)

// validateQuestions performs all structural checks on a question list.
// Returns a combined error describing all problems found, or nil if valid.
func validateQuestions(questions []Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("catalog validation failed:\n  catalog has no questions")
	}

	var errs []string
	seenText := make(map[string]int, len(questions))

	for i, q := range questions {
		if q.ID != i {
			errs = append(errs, fmt.Sprintf("question at position %d has id %d (ids must be contiguous from 0)", i, q.ID))
		}

		text := strings.TrimSpace(q.Text)
		if text == "" {
			errs = append(errs, fmt.Sprintf("question %d: text is blank", q.ID))
		} else if prev, ok := seenText[text]; ok {
			errs = append(errs, fmt.Sprintf("question %d: duplicate text of question %d", q.ID, prev))
		} else {
			seenText[text] = q.ID
		}

		if strings.TrimSpace(q.CorrectAnswer) == "" {
			errs = append(errs, fmt.Sprintf("question %d: correct answer is blank", q.ID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
