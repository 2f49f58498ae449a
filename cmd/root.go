package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizbot",
	Short: "Conversational quiz bot",
	Long:  "quizbot walks a quiz-taker through a fixed list of questions one message at a time and scores the answers.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd, false, defaultUser)
	},
	SilenceUsage: true,
}

// Execute runs the root command. SIGINT and SIGTERM cancel its context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides QUIZBOT_DB env var)")
	flags.String("store", "", "Session store: sqlite, memory or redis (overrides QUIZBOT_STORE)")
	flags.String("catalog", "", "JSON or YAML question file (overrides QUIZBOT_CATALOG)")
	flags.String("on-finish", "", "What a finished quiz-taker's next message does: reject or restart (overrides QUIZBOT_ON_FINISH)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(telegramCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}
