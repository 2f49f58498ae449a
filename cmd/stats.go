package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizbot/internal/quiz"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "List recently completed quizzes",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		if limit < 0 {
			return fmt.Errorf("--limit must not be negative")
		}

		d, err := buildDeps(cmd)
		if err != nil {
			return err
		}
		defer d.Close()

		results, err := d.results.RecentResults(cmd.Context(), limit)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(results) == 0 {
			fmt.Fprintln(out, "No finished quizzes yet.")
			return nil
		}

		fmt.Fprintf(out, "%-17s  %-24s  %7s  %6s  %s\n", "Finished", "Player", "Correct", "Score", "Attempt")
		fmt.Fprintln(out, strings.Repeat("─", 100))

		passed := 0
		for _, r := range results {
			if r.Percentage >= quiz.PassThreshold {
				passed++
			}
			fmt.Fprintf(out, "%-17s  %-24s  %7s  %6s  %s\n",
				r.FinishedAt.Local().Format("2006-01-02 15:04"),
				r.Key,
				fmt.Sprintf("%d/%d", r.Correct, r.Total),
				quiz.FormatPercentage(r.Percentage)+"%",
				r.AttemptID)
		}

		fmt.Fprintf(out, "\n%d results, %d passed\n", len(results), passed)
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 10, "Maximum number of results to show (0 = all)")
}
