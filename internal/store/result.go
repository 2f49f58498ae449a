package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

const resultsTable = "quiz_results"

// resultRepo implements ResultRepo on SQLite.
type resultRepo struct {
	drv *entsql.Driver
}

func (r *resultRepo) AppendResult(ctx context.Context, res Result) error {
	finishedAt := res.FinishedAt
	if finishedAt.IsZero() {
		finishedAt = time.Now()
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert(resultsTable).
		Columns("attempt_id", "session_key", "correct", "total", "percentage", "finished_at").
		Values(res.AttemptID, res.Key, res.Correct, res.Total, res.Percentage, finishedAt.UnixMilli()).
		OnConflict(
			entsql.ConflictColumns("attempt_id"),
			entsql.DoNothing(),
		).
		Query()

	if err := r.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save result: %w", err)
	}
	return nil
}

func (r *resultRepo) RecentResults(ctx context.Context, limit int) ([]Result, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select("attempt_id", "session_key", "correct", "total", "percentage", "finished_at").
		From(entsql.Table(resultsTable)).
		OrderBy(entsql.Desc("finished_at"), entsql.Desc("id"))
	if limit > 0 {
		sel = sel.Limit(limit)
	}
	query, args := sel.Query()

	rows := &entsql.Rows{}
	if err := r.drv.Query(ctx, query, args, rows); err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var (
			res        Result
			finishedAt int64
		)
		if err := rows.Scan(&res.AttemptID, &res.Key, &res.Correct, &res.Total, &res.Percentage, &finishedAt); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		res.FinishedAt = time.UnixMilli(finishedAt).UTC()
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	return results, nil
}
