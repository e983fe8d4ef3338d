package days

import (
	"fmt"

	"github.com/igemnace/advent-of-code-2022/internal/puzzle"
	"github.com/igemnace/advent-of-code-2022/internal/scan"
)

func init() {
	puzzle.Register(puzzle.Day{
		N:     3,
		Title: "Rucksack Reorganization",
		Part1: compartmentPriorities,
		Part2: badgePriorities,
	})
}

// priority scores an item: a-z are 1 through 26, A-Z are 27 through 52.
func priority(item byte) (int, error) {
	switch {
	case item >= 'a' && item <= 'z':
		return int(item-'a') + 1, nil
	case item >= 'A' && item <= 'Z':
		return int(item-'A') + 27, nil
	}
	return 0, fmt.Errorf("item %q has no priority", item)
}

func itemSet(s string) map[byte]bool {
	set := make(map[byte]bool, len(s))
	for i := 0; i < len(s); i++ {
		set[s[i]] = true
	}
	return set
}

// compartmentPriorities sums, over every rucksack, the priority of the
// one item appearing in both halves.
func compartmentPriorities(input string) (string, error) {
	total := 0
	for i, line := range scan.Lines(input) {
		if len(line)%2 != 0 {
			return "", fmt.Errorf("rucksack %d: odd number of items", i+1)
		}
		first := itemSet(line[:len(line)/2])
		found := false
		for j := len(line) / 2; j < len(line); j++ {
			if first[line[j]] {
				p, err := priority(line[j])
				if err != nil {
					return "", fmt.Errorf("rucksack %d: %w", i+1, err)
				}
				total += p
				found = true
				break
			}
		}
		if !found {
			return "", fmt.Errorf("rucksack %d: no item in both compartments", i+1)
		}
	}
	return itoa(total), nil
}

// badgePriorities sums, over every group of three rucksacks, the
// priority of the one item all three carry.
func badgePriorities(input string) (string, error) {
	lines := scan.Lines(input)
	if len(lines)%3 != 0 {
		return "", fmt.Errorf("rucksack count %d is not a multiple of 3", len(lines))
	}
	total := 0
	for g := 0; g < len(lines); g += 3 {
		first := itemSet(lines[g])
		second := itemSet(lines[g+1])
		found := false
		for j := 0; j < len(lines[g+2]); j++ {
			item := lines[g+2][j]
			if first[item] && second[item] {
				p, err := priority(item)
				if err != nil {
					return "", fmt.Errorf("group %d: %w", g/3+1, err)
				}
				total += p
				found = true
				break
			}
		}
		if !found {
			return "", fmt.Errorf("group %d: no common badge item", g/3+1)
		}
	}
	return itoa(total), nil
}
