package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/abhisek/quizbot/internal/quiz"
)

const sessionsTable = "quiz_sessions"

var sessionColumns = []string{
	"session_key",
	"attempt_id",
	"current_question_id",
	"finished",
	"answers",
	"started_at",
	"updated_at",
}

// sessionRepo implements SessionRepo on SQLite.
type sessionRepo struct {
	drv *entsql.Driver
}

func (r *sessionRepo) Load(ctx context.Context, key string) (*quiz.Session, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(sessionColumns...).
		From(entsql.Table(sessionsTable)).
		Where(entsql.EQ("session_key", key)).
		Limit(1).
		Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query session: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("query session: %w", err)
		}
		return nil, nil
	}

	var (
		sess      quiz.Session
		current   sql.NullInt64
		answers   string
		startedAt sql.NullInt64
		updatedAt int64
	)
	if err := rows.Scan(&sess.Key, &sess.ID, &current, &sess.Finished, &answers, &startedAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("scan session: %w", err)
	}

	if current.Valid {
		id := int(current.Int64)
		sess.CurrentQuestionID = &id
	}
	if err := json.Unmarshal([]byte(answers), &sess.Answers); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	if sess.Answers == nil {
		sess.Answers = make(map[int]string)
	}
	if startedAt.Valid {
		sess.StartedAt = time.UnixMilli(startedAt.Int64).UTC()
	}
	sess.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return &sess, nil
}

func (r *sessionRepo) Save(ctx context.Context, sess *quiz.Session) error {
	answers, err := json.Marshal(sess.Answers)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}

	var current sql.NullInt64
	if sess.CurrentQuestionID != nil {
		current = sql.NullInt64{Int64: int64(*sess.CurrentQuestionID), Valid: true}
	}
	var startedAt sql.NullInt64
	if !sess.StartedAt.IsZero() {
		startedAt = sql.NullInt64{Int64: sess.StartedAt.UnixMilli(), Valid: true}
	}
	updatedAt := sess.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(sess.Key, sess.ID, current, sess.Finished, string(answers), startedAt, updatedAt.UnixMilli()).
		OnConflict(
			entsql.ConflictColumns("session_key"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (r *sessionRepo) Delete(ctx context.Context, key string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(sessionsTable).
		Where(entsql.EQ("session_key", key)).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
