package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the stored quiz session of a quiz-taker",
	RunE: func(cmd *cobra.Command, args []string) error {
		user, _ := cmd.Flags().GetString("user")

		d, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		if err := d.dispatcher.Reset(cmd.Context(), user); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Session %q reset.\n", user)
		return nil
	},
}

func init() {
	resetCmd.Flags().String("user", defaultUser, "Session key to reset (e.g. telegram:42)")
}
