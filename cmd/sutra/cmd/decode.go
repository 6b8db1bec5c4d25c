package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <tokens>...",
	Short: "Decode a Sanskrit token stream back to English",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		fmt.Println(a.Decode(strings.Join(args, " ")))
		return nil
	},
}
