package quiz

import "github.com/abhisek/quizbot/internal/catalog"

// NextQuestion returns the question following current. A nil current means
// the quiz has not started. ok is false once the catalog is exhausted.
func NextQuestion(cat *catalog.Catalog, current *int) (text string, next int, ok bool) {
	idx := -1
	if current != nil {
		idx = *current
	}
	next = idx + 1

	q, err := cat.Get(next)
	if err != nil {
		return "", 0, false
	}
	return q.Text, next, true
}
