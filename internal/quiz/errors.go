package quiz

import "errors"

// ErrSessionFinished is returned by Engine.Respond for a session in the
// terminal state.
var ErrSessionFinished = errors.New("quiz session already finished")

// ValidationError reports an answer that cannot be recorded. Message is
// meant to be shown to the quiz-taker as-is.
type ValidationError struct {
	Reason  string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Reason + ": " + e.Message
}

// ErrEmptyAnswer rejects blank or whitespace-only answers.
var ErrEmptyAnswer = &ValidationError{
	Reason:  "empty answer",
	Message: "Answer cannot be empty.",
}
