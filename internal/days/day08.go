package days

import (
	"github.com/igemnace/advent-of-code-2022/internal/forest"
	"github.com/igemnace/advent-of-code-2022/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		N:     8,
		Title: "Treetop Tree House",
		Part1: visibleTrees,
		Part2: bestScenicScore,
	})
}

func visibleTrees(input string) (string, error) {
	m, err := forest.Parse(input)
	if err != nil {
		return "", err
	}
	return itoa(m.CountVisible()), nil
}

func bestScenicScore(input string) (string, error) {
	m, err := forest.Parse(input)
	if err != nil {
		return "", err
	}
	return itoa(m.MaxScenicScore()), nil
}
