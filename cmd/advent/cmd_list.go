package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/igemnace/advent-of-code-2022/internal/puzzle"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the implemented days",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, day := range puzzle.All() {
			fmt.Fprintf(cmd.OutOrStdout(), "day %2d  %s\n", day.N, day.Title)
		}
		return nil
	},
}
