package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/corey/sutra/internal/app"
	"github.com/corey/sutra/internal/domain/match"
)

var rootCmd = &cobra.Command{
	Use:   "sutra",
	Short: "sutra — semantic English→Sanskrit tokenizer",
	Long:  "Compresses English text into annotated Sanskrit tokens with a lossless character-level fallback, and decodes the result back.",
}

// Global flags shared by every subcommand.
var (
	flagLexicon string
	flagNoCache bool
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLexicon, "lexicon", "", "path to a lexicon CSV (default: embedded starter lexicon)")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "bypass the compiled-lexicon cache and re-parse the CSV")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.AddCommand(contextCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(replCmd)
}

// cachePath returns the bbolt cache location, creating its directory.
func cachePath() (string, error) {
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, "sutra")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "lexicon.db"), nil
}

// loadApp assembles the tokenizer per the global flags and logs any
// configuration warnings to stderr.
func loadApp() (*app.App, error) {
	cfg := match.DefaultConfig()

	var a *app.App
	var err error
	switch {
	case flagLexicon == "":
		a, err = app.LoadEmbedded(cfg)
	case flagNoCache:
		a, err = app.LoadCSV(flagLexicon, cfg)
	default:
		var db string
		db, err = cachePath()
		if err != nil {
			return nil, err
		}
		a, err = app.LoadCached(flagLexicon, db, cfg)
	}
	if err != nil {
		return nil, err
	}
	for _, w := range a.Warnings() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	return a, nil
}
