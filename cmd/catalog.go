package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizbot/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect question catalogs",
}

var catalogCheckCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Validate a JSON or YAML question file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok, %d questions\n", args[0], cat.Len())
		return nil
	},
}

var catalogShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the configured catalog with its answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cat, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%4s  %-60s  %s\n", "ID", "Question", "Answer")
		fmt.Fprintln(out, strings.Repeat("─", 90))
		for _, q := range cat.All() {
			fmt.Fprintf(out, "%4d  %-60s  %s\n", q.ID, shorten(q.Text, 60), q.CorrectAnswer)
		}
		fmt.Fprintf(out, "\n%d questions\n", cat.Len())
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogCheckCmd)
	catalogCmd.AddCommand(catalogShowCmd)
}

// shorten cuts s to at most n runes, marking the cut with "...".
func shorten(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
