package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizbot/internal/quiz"
)

// Shared behaviour checks run against every SessionRepo and ResultRepo.

func inProgressSession(key string) *quiz.Session {
	sess := quiz.NewSession(key)
	current := 2
	sess.CurrentQuestionID = &current
	sess.Answers[0] = "def"
	sess.Answers[1] = "len"
	sess.StartedAt = time.UnixMilli(1_700_000_000_000).UTC()
	sess.UpdatedAt = time.UnixMilli(1_700_000_060_000).UTC()
	return sess
}

func assertSameSession(t *testing.T, want, got *quiz.Session) {
	t.Helper()
	assert.Equal(t, want.Key, got.Key)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.CurrentQuestionID, got.CurrentQuestionID)
	assert.Equal(t, want.Finished, got.Finished)
	assert.Equal(t, want.Answers, got.Answers)
	assert.True(t, want.StartedAt.Equal(got.StartedAt), "StartedAt = %v, want %v", got.StartedAt, want.StartedAt)
	assert.True(t, want.UpdatedAt.Equal(got.UpdatedAt), "UpdatedAt = %v, want %v", got.UpdatedAt, want.UpdatedAt)
}

func testSessionRepo(t *testing.T, repo SessionRepo) {
	ctx := context.Background()

	t.Run("load missing", func(t *testing.T) {
		got, err := repo.Load(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("save and load", func(t *testing.T) {
		sess := inProgressSession("alice")
		require.NoError(t, repo.Save(ctx, sess))

		got, err := repo.Load(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, got)
		assertSameSession(t, sess, got)
	})

	t.Run("save replaces", func(t *testing.T) {
		sess := inProgressSession("bob")
		require.NoError(t, repo.Save(ctx, sess))

		sess.CurrentQuestionID = nil
		sess.Finished = true
		sess.Answers[2] = "9"
		sess.UpdatedAt = sess.UpdatedAt.Add(time.Minute)
		require.NoError(t, repo.Save(ctx, sess))

		got, err := repo.Load(ctx, "bob")
		require.NoError(t, err)
		require.NotNil(t, got)
		assertSameSession(t, sess, got)
		assert.Equal(t, quiz.StateFinished, got.State())
	})

	t.Run("not started session", func(t *testing.T) {
		sess := quiz.NewSession("carol")
		sess.UpdatedAt = time.UnixMilli(1_700_000_000_000).UTC()
		require.NoError(t, repo.Save(ctx, sess))

		got, err := repo.Load(ctx, "carol")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, quiz.StateNotStarted, got.State())
		assert.True(t, got.StartedAt.IsZero())
		assert.Empty(t, got.Answers)
	})

	t.Run("keys are independent", func(t *testing.T) {
		a := inProgressSession("dave")
		b := inProgressSession("erin")
		b.Answers[0] = "class"
		require.NoError(t, repo.Save(ctx, a))
		require.NoError(t, repo.Save(ctx, b))

		got, err := repo.Load(ctx, "dave")
		require.NoError(t, err)
		assert.Equal(t, "def", got.Answers[0])
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, inProgressSession("frank")))
		require.NoError(t, repo.Delete(ctx, "frank"))

		got, err := repo.Load(ctx, "frank")
		require.NoError(t, err)
		assert.Nil(t, got)

		// Deleting again is fine.
		require.NoError(t, repo.Delete(ctx, "frank"))
	})
}

func testResultRepo(t *testing.T, repo ResultRepo) {
	ctx := context.Background()
	base := time.UnixMilli(1_700_000_000_000).UTC()

	got, err := repo.RecentResults(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	results := []Result{
		{AttemptID: "a1", Key: "alice", Correct: 7, Total: 7, Percentage: 100, FinishedAt: base},
		{AttemptID: "b1", Key: "bob", Correct: 3, Total: 7, Percentage: 300.0 / 7, FinishedAt: base.Add(time.Minute)},
		{AttemptID: "a2", Key: "alice", Correct: 5, Total: 7, Percentage: 500.0 / 7, FinishedAt: base.Add(2 * time.Minute)},
	}
	for _, r := range results {
		require.NoError(t, repo.AppendResult(ctx, r))
	}

	// A repeated attempt is ignored.
	dup := results[0]
	dup.Correct = 0
	require.NoError(t, repo.AppendResult(ctx, dup))

	got, err = repo.RecentResults(ctx, 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "a2", got[0].AttemptID)
	assert.Equal(t, "b1", got[1].AttemptID)
	assert.Equal(t, "a1", got[2].AttemptID)
	assert.Equal(t, 7, got[2].Correct)
	assert.InDelta(t, 500.0/7, got[0].Percentage, 1e-9)
	assert.True(t, got[0].FinishedAt.Equal(results[2].FinishedAt))

	got, err = repo.RecentResults(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a2", got[0].AttemptID)
	assert.Equal(t, "b1", got[1].AttemptID)
}
