package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corey/sutra/internal/domain/score"
)

var statsCmd = &cobra.Command{
	Use:   "stats [text]...",
	Short: "Show lexicon statistics, or compression metrics for a text",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		lex := a.Lexicon()
		fmt.Fprintf(out, "entries:  %d\n", lex.Len())
		fmt.Fprintf(out, "concepts: %d\n", lex.ConceptCount())
		fmt.Fprintf(out, "charmap:  %d glyphs\n", len(lex.CharMap()))

		if len(args) > 0 {
			text := strings.Join(args, " ")
			res := a.Tokenize(text, score.Hints{})
			fmt.Fprintln(out)
			fmt.Fprintf(out, "input words:    %d\n", res.OriginalWords)
			fmt.Fprintf(out, "segments:       %d\n", len(res.Segments))
			fmt.Fprintf(out, "reduction:      %.1f%%\n", res.ReductionRatio*100)
			fmt.Fprintf(out, "avg confidence: %.1f%%\n", res.AvgConfidence*100)
			fmt.Fprintf(out, "iterations:     %d\n", res.Iterations)
		}
		return nil
	},
}
