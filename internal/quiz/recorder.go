package quiz

import "strings"

// RecordAnswer validates answer and stores it, trimmed, for questionID.
// A previous answer for the same question is overwritten. The session is
// left untouched on error. Persisting is the caller's job.
func RecordAnswer(answer string, questionID int, sess *Session) error {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return ErrEmptyAnswer
	}
	if sess.Answers == nil {
		sess.Answers = make(map[int]string)
	}
	sess.Answers[questionID] = answer
	return nil
}
