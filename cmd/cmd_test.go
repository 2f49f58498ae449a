package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizbot/internal/store"
)

// execute runs the root command with args and returns its output. Flags are
// reset first because cobra keeps their values between runs.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, env := range []string{"QUIZBOT_STORE", "QUIZBOT_DB", "QUIZBOT_CATALOG", "QUIZBOT_ON_FINISH"} {
		t.Setenv(env, "")
	}
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quiz.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const twoQuestions = `
- id: 0
  question: "2+2?"
  correct_answer: "4"
- id: 1
  question: "Capital of France?"
  correct_answer: "Paris"
`

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "quizbot (devel)\n", out)
}

func TestCatalogCheck(t *testing.T) {
	path := writeCatalog(t, twoQuestions)

	out, err := execute(t, "catalog", "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ok, 2 questions")
}

func TestCatalogCheckRejectsInvalid(t *testing.T) {
	path := writeCatalog(t, "- id: 0\n  question: \"\"\n  correct_answer: x\n")

	_, err := execute(t, "catalog", "check", path)
	require.Error(t, err)
}

func TestCatalogShow(t *testing.T) {
	path := writeCatalog(t, twoQuestions)

	out, err := execute(t, "catalog", "show", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Capital of France?")
	assert.Contains(t, out, "Paris")
	assert.Contains(t, out, "2 questions")
}

func TestCatalogShowDefault(t *testing.T) {
	out, err := execute(t, "catalog", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "7 questions")
}

func TestCatalogShowLongMultibyteQuestion(t *testing.T) {
	long := strings.Repeat("Какой ", 15) + "ответ?"
	path := writeCatalog(t, "- id: 0\n  question: \""+long+"\"\n  correct_answer: \"да\"\n")

	out, err := execute(t, "catalog", "show", "--catalog", path)
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(out), "output is not valid UTF-8")
	assert.Contains(t, out, shorten(long, 60))
	assert.NotContains(t, out, long)
}

func TestShorten(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"abcdefghijkl", 10, "abcdefg..."},
		{"ééééééééééé", 10, "ééééééé..."},
	}
	for _, tt := range tests {
		if got := shorten(tt.in, tt.n); got != tt.want {
			t.Errorf("shorten(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestStatsAndReset(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "quizbot.db")

	out, err := execute(t, "stats", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "No finished quizzes yet.")

	// Seed a finished attempt and a session directly.
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, st.ResultRepo().AppendResult(ctx, store.Result{
		AttemptID: "a1", Key: "telegram:42", Correct: 5, Total: 7, Percentage: 500.0 / 7,
	}))
	require.NoError(t, st.SessionRepo().Save(ctx, newSession("telegram:42")))
	require.NoError(t, st.Close())

	out, err = execute(t, "stats", "--db", dbPath)
	require.NoError(t, err)
	assert.Contains(t, out, "telegram:42")
	assert.Contains(t, out, "71.4%")
	assert.Contains(t, out, "1 results, 1 passed")

	out, err = execute(t, "reset", "--db", dbPath, "--user", "telegram:42")
	require.NoError(t, err)
	assert.Contains(t, out, `Session "telegram:42" reset.`)

	st, err = store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()
	sess, err := st.SessionRepo().Load(ctx, "telegram:42")
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestStatsRejectsNegativeLimit(t *testing.T) {
	_, err := execute(t, "stats", "--store", "memory", "--limit", "-1")
	require.Error(t, err)
}

func TestInvalidStore(t *testing.T) {
	_, err := execute(t, "stats", "--store", "postgres")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store")
}

func TestInvalidPolicy(t *testing.T) {
	_, err := execute(t, "stats", "--store", "memory", "--on-finish", "ignore")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown finished policy")
}

func TestTelegramRequiresToken(t *testing.T) {
	t.Setenv("QUIZBOT_TELEGRAM_TOKEN", "")
	_, err := execute(t, "telegram", "--store", "memory")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "QUIZBOT_TELEGRAM_TOKEN")
}
