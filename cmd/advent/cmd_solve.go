package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/igemnace/advent-of-code-2022/internal/puzzle"
)

var (
	solvePart  int
	solveInput string
)

var solveCmd = &cobra.Command{
	Use:   "solve <day>",
	Short: "Solve one day and print its answers",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().IntVarP(&solvePart, "part", "p", 0, "part to solve (1 or 2; default both)")
	solveCmd.Flags().StringVarP(&solveInput, "input", "i", "", "input file (default per config)")
}

func runSolve(cmd *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("day must be a number: %w", err)
	}
	day, ok := puzzle.Get(n)
	if !ok {
		return fmt.Errorf("day %d is not implemented", n)
	}

	path := solveInput
	if path == "" {
		path = cfg.InputPath(n)
	}
	input, err := puzzle.NewLoader(logger).Load(path)
	if err != nil {
		return err
	}

	parts := []int{1, 2}
	if solvePart != 0 {
		parts = []int{solvePart}
	}
	for _, part := range parts {
		fn, err := day.Part(part)
		if err != nil {
			return err
		}
		logger.Debug("solving", zap.Int("day", n), zap.Int("part", part))
		answer, err := fn(input)
		if err != nil {
			return fmt.Errorf("day %d part %d: %w", n, part, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), answer)
	}
	return nil
}
