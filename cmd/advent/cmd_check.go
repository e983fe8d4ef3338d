package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/igemnace/advent-of-code-2022/internal/puzzle"
)

var checkCmd = &cobra.Command{
	Use:   "check [day...]",
	Short: "Run days with configured expected answers and report pass/fail",
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	var days []puzzle.Day
	if len(args) == 0 {
		days = puzzle.All()
	} else {
		for _, arg := range args {
			n, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("day must be a number: %w", err)
			}
			day, ok := puzzle.Get(n)
			if !ok {
				return fmt.Errorf("day %d is not implemented", n)
			}
			days = append(days, day)
		}
	}

	loader := puzzle.NewLoader(logger)
	table := newCheckTable()
	failures := 0
	checked := 0
	for _, day := range days {
		for part := 1; part <= 2; part++ {
			want, ok := cfg.Expected(day.N, part)
			if !ok {
				continue
			}
			checked++
			got, err := runPart(loader, day, part)
			switch {
			case err != nil:
				logger.Error("check failed", zap.Int("day", day.N), zap.Int("part", part), zap.Error(err))
				table.add(day, part, want, "error: "+err.Error(), false)
				failures++
			case got != want:
				table.add(day, part, want, got, false)
				failures++
			default:
				table.add(day, part, want, got, true)
			}
		}
	}

	if checked == 0 {
		return fmt.Errorf("no expected answers configured; nothing to check")
	}
	fmt.Fprint(cmd.OutOrStdout(), table.render(isatty.IsTerminal(os.Stdout.Fd())))
	if failures > 0 {
		return fmt.Errorf("%d of %d checks failed", failures, checked)
	}
	return nil
}

func runPart(loader *puzzle.Loader, day puzzle.Day, part int) (string, error) {
	input, err := loader.Load(cfg.InputPath(day.N))
	if err != nil {
		return "", err
	}
	fn, err := day.Part(part)
	if err != nil {
		return "", err
	}
	return fn(input)
}
