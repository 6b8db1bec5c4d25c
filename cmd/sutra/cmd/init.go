package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/sutra/internal/app"
	"github.com/corey/sutra/internal/domain/match"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Compile the lexicon CSV into the snapshot cache",
	Long:  "Parses the lexicon once and stores the compiled snapshot keyed by the file's content hash, so later invocations skip CSV parsing.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagLexicon == "" {
			return fmt.Errorf("init requires --lexicon (the embedded lexicon needs no cache)")
		}
		db, err := cachePath()
		if err != nil {
			return err
		}
		fp, err := app.Compile(flagLexicon, db, match.DefaultConfig())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "compiled %s\n  cache: %s\n  fingerprint: %s\n", flagLexicon, db, fp[:12])
		return nil
	},
}
