package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

var contextCmd = &cobra.Command{
	Use:   "context <text>...",
	Short: "Detect the context category of English text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		det := a.Context(strings.Join(args, " "))

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "primary: %s\n", det.Primary)

		names := make([]string, 0, len(det.Scores))
		for name := range det.Scores {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			if det.Scores[names[i]] != det.Scores[names[j]] {
				return det.Scores[names[i]] > det.Scores[names[j]]
			}
			return names[i] < names[j]
		})
		for _, name := range names {
			fmt.Fprintf(out, "  %-15s %.3f  (%s)\n", name, det.Scores[name],
				strings.Join(det.Keywords[name], ", "))
		}
		return nil
	},
}
