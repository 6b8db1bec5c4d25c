package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corey/sutra/internal/domain/score"
)

var (
	flagExpectTokens  []string
	flagExpectContext string
	flagVerbose       bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode <text>...",
	Short: "Tokenize English text into Sanskrit tokens",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}

		text := strings.Join(args, " ")
		res := a.Tokenize(text, score.Hints{
			ExpectedTokens:  flagExpectTokens,
			ExpectedContext: strings.ToLower(flagExpectContext),
		})

		fmt.Println(res.Output())
		if flagVerbose {
			printResult(cmd.OutOrStdout(), res)
		}
		return nil
	},
}

func init() {
	encodeCmd.Flags().StringArrayVar(&flagExpectTokens, "expect-token", nil, "entry id hint, repeatable")
	encodeCmd.Flags().StringVar(&flagExpectContext, "expect-context", "", "context category hint")
	encodeCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "show per-segment details and metrics")
}
