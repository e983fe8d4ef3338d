package days

import (
	"github.com/igemnace/advent-of-code-2022/internal/puzzle"
	"github.com/igemnace/advent-of-code-2022/internal/rope"
)

func init() {
	puzzle.Register(puzzle.Day{
		N:     9,
		Title: "Rope Bridge",
		Part1: func(input string) (string, error) { return tailVisits(input, 2) },
		Part2: func(input string) (string, error) { return tailVisits(input, 10) },
	})
}

func tailVisits(input string, knots int) (string, error) {
	motions, err := rope.ParseMotions(input)
	if err != nil {
		return "", err
	}
	return itoa(rope.Run(knots, motions)), nil
}
