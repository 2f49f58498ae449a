package chat

import (
	"fmt"

	"github.com/abhisek/quizbot/internal/quiz"
)

// Status is a read-only view of one quiz-taker's progress.
type Status struct {
	State quiz.State

	// Question is the 1-based position of the question awaiting an answer,
	// or 0 when none is.
	Question int
	Total    int
	Answered int

	// Report is set once the quiz is finished.
	Report *quiz.ScoreReport
}

func (d *Dispatcher) status(sess *quiz.Session) Status {
	st := Status{
		State:    sess.State(),
		Total:    d.engine.Catalog().Len(),
		Answered: len(sess.Answers),
	}
	switch st.State {
	case quiz.StateInProgress:
		st.Question = *sess.CurrentQuestionID + 1
	case quiz.StateFinished:
		report := quiz.Score(d.engine.Catalog(), sess)
		st.Report = &report
	}
	return st
}

// Summary renders the status as a chat reply.
func (s Status) Summary() string {
	switch s.State {
	case quiz.StateInProgress:
		return fmt.Sprintf("Question %d of %d. %d answered so far.", s.Question, s.Total, s.Answered)
	case quiz.StateFinished:
		return s.Report.Message
	}
	return "No quiz in progress. Send any message to start."
}
