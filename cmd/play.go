package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizbot/internal/app"
	"github.com/abhisek/quizbot/internal/console"
)

// defaultUser is the session key of the local quiz-taker.
const defaultUser = "local"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Take the quiz in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		plain, _ := cmd.Flags().GetBool("plain")
		user, _ := cmd.Flags().GetString("user")
		return runPlay(cmd, plain, user)
	},
}

func init() {
	playCmd.Flags().Bool("plain", false, "Use a plain line-by-line conversation instead of the full-screen UI")
	playCmd.Flags().String("user", defaultUser, "Session key of the quiz-taker")
}

// runPlay builds dependencies and runs the quiz for user in the terminal.
func runPlay(cmd *cobra.Command, plain bool, user string) error {
	d, err := buildDeps(cmd)
	if err != nil {
		return err
	}
	defer d.Close()

	ctx := cmd.Context()
	if plain {
		return console.Run(ctx, os.Stdin, os.Stdout, d.dispatcher, user)
	}
	return app.Run(ctx, app.Options{
		Dispatcher: d.dispatcher,
		Results:    d.results,
		Key:        user,
	})
}
