package store

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/abhisek/quizbot/internal/quiz"
)

// sessionRecord is the JSON form of a session in key-value stores.
type sessionRecord struct {
	Key               string            `json:"key"`
	AttemptID         string            `json:"attempt_id"`
	CurrentQuestionID *int              `json:"current_question_id"`
	Finished          bool              `json:"finished"`
	Answers           map[string]string `json:"answers"`
	StartedAt         int64             `json:"started_at,omitempty"`
	UpdatedAt         int64             `json:"updated_at"`
}

func encodeSession(sess *quiz.Session) ([]byte, error) {
	rec := sessionRecord{
		Key:       sess.Key,
		AttemptID: sess.ID,
		Finished:  sess.Finished,
		Answers:   make(map[string]string, len(sess.Answers)),
		UpdatedAt: sess.UpdatedAt.UnixMilli(),
	}
	if sess.CurrentQuestionID != nil {
		id := *sess.CurrentQuestionID
		rec.CurrentQuestionID = &id
	}
	for id, a := range sess.Answers {
		rec.Answers[strconv.Itoa(id)] = a
	}
	if !sess.StartedAt.IsZero() {
		rec.StartedAt = sess.StartedAt.UnixMilli()
	}
	return json.Marshal(rec)
}

func decodeSession(data []byte) (*quiz.Session, error) {
	var rec sessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	sess := &quiz.Session{
		Key:               rec.Key,
		ID:                rec.AttemptID,
		CurrentQuestionID: rec.CurrentQuestionID,
		Finished:          rec.Finished,
		Answers:           make(map[int]string, len(rec.Answers)),
		UpdatedAt:         time.UnixMilli(rec.UpdatedAt).UTC(),
	}
	for k, a := range rec.Answers {
		id, err := strconv.Atoi(k)
		if err != nil {
			return nil, fmt.Errorf("decode session: answer key %q: %w", k, err)
		}
		sess.Answers[id] = a
	}
	if rec.StartedAt != 0 {
		sess.StartedAt = time.UnixMilli(rec.StartedAt).UTC()
	}
	return sess, nil
}

// resultRecord is the JSON form of a Result in key-value stores.
type resultRecord struct {
	AttemptID  string  `json:"attempt_id"`
	Key        string  `json:"key"`
	Correct    int     `json:"correct"`
	Total      int     `json:"total"`
	Percentage float64 `json:"percentage"`
	FinishedAt int64   `json:"finished_at"`
}

func encodeResult(r Result) ([]byte, error) {
	return json.Marshal(resultRecord{
		AttemptID:  r.AttemptID,
		Key:        r.Key,
		Correct:    r.Correct,
		Total:      r.Total,
		Percentage: r.Percentage,
		FinishedAt: r.FinishedAt.UnixMilli(),
	})
}

func decodeResult(data []byte) (Result, error) {
	var rec resultRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return Result{}, fmt.Errorf("decode result: %w", err)
	}
	return Result{
		AttemptID:  rec.AttemptID,
		Key:        rec.Key,
		Correct:    rec.Correct,
		Total:      rec.Total,
		Percentage: rec.Percentage,
		FinishedAt: time.UnixMilli(rec.FinishedAt).UTC(),
	}, nil
}
