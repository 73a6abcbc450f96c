package internal

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered export actions",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, a := range registry.Actions() {
			fmt.Printf("%-10s %s\n", a.Trigger, a.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
