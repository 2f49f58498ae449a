package cmd

import (
	"time"

	"github.com/abhisek/quizbot/internal/quiz"
)

func newSession(key string) *quiz.Session {
	sess := quiz.NewSession(key)
	current := 1
	sess.CurrentQuestionID = &current
	sess.Answers[0] = "def"
	sess.UpdatedAt = time.Now()
	return sess
}
