package days

import (
	"github.com/igemnace/advent-of-code-2022/internal/crates"
	"github.com/igemnace/advent-of-code-2022/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		N:     5,
		Title: "Supply Stacks",
		Part1: func(input string) (string, error) { return crateTops(input, crates.OneAtATime) },
		Part2: func(input string) (string, error) { return crateTops(input, crates.AllAtOnce) },
	})
}

func crateTops(input string, mode crates.Mode) (string, error) {
	yard, moves, err := crates.ParseInput(input)
	if err != nil {
		return "", err
	}
	if err := yard.ApplyAll(moves, mode); err != nil {
		return "", err
	}
	return yard.Tops(), nil
}
