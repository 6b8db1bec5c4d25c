package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/corey/sutra/internal/domain/score"
)

var flagTopN int

var matchesCmd = &cobra.Command{
	Use:   "matches <span>...",
	Short: "Show ranked candidate entries for a span with score breakdowns",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		span := strings.Join(args, " ")
		cands := a.Matches(span, flagTopN, score.Hints{})
		printCandidates(cmd.OutOrStdout(), span, cands, a)
		return nil
	},
}

func init() {
	matchesCmd.Flags().IntVarP(&flagTopN, "top", "n", 5, "number of candidates to show")
}
