package days

import (
	"fmt"
	"sort"

	"github.com/igemnace/advent-of-code-2022/internal/puzzle"
	"github.com/igemnace/advent-of-code-2022/internal/scan"
)

func init() {
	puzzle.Register(puzzle.Day{
		N:     1,
		Title: "Calorie Counting",
		Part1: maxCalories,
		Part2: topThreeCalories,
	})
}

// calorieSums totals each blank-line-separated block of snack
// calories, one sum per elf.
func calorieSums(input string) ([]int, error) {
	blocks := scan.Blocks(input)
	sums := make([]int, 0, len(blocks))
	for i, block := range blocks {
		calories, err := scan.Ints(block)
		if err != nil {
			return nil, fmt.Errorf("elf %d: %w", i+1, err)
		}
		sum := 0
		for _, c := range calories {
			sum += c
		}
		sums = append(sums, sum)
	}
	if len(sums) == 0 {
		return nil, fmt.Errorf("no calorie blocks in input")
	}
	return sums, nil
}

func maxCalories(input string) (string, error) {
	sums, err := calorieSums(input)
	if err != nil {
		return "", err
	}
	best := sums[0]
	for _, s := range sums[1:] {
		if s > best {
			best = s
		}
	}
	return itoa(best), nil
}

func topThreeCalories(input string) (string, error) {
	sums, err := calorieSums(input)
	if err != nil {
		return "", err
	}
	if len(sums) < 3 {
		return "", fmt.Errorf("need at least 3 elves, have %d", len(sums))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sums)))
	return itoa(sums[0] + sums[1] + sums[2]), nil
}
