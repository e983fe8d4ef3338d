package days

import (
	"fmt"

	"github.com/igemnace/advent-of-code-2022/internal/fstree"
	"github.com/igemnace/advent-of-code-2022/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		N:     7,
		Title: "No Space Left On Device",
		Part1: totalOfSmallDirs,
		Part2: smallestFreeingDir,
	})
}

const (
	smallDirLimit = 100000
	diskCapacity  = 70000000
	updateNeeds   = 30000000
)

// totalOfSmallDirs sums the total sizes of every directory at or under
// the small-directory limit.
func totalOfSmallDirs(input string) (string, error) {
	tree, err := fstree.Replay(input)
	if err != nil {
		return "", err
	}
	_, dirs := tree.Sizes()
	sum := 0
	for _, size := range dirs {
		if size <= smallDirLimit {
			sum += size
		}
	}
	return itoa(sum), nil
}

// smallestFreeingDir finds the smallest directory whose deletion would
// leave enough free space for the update.
func smallestFreeingDir(input string) (string, error) {
	tree, err := fstree.Replay(input)
	if err != nil {
		return "", err
	}
	used, dirs := tree.Sizes()
	need := updateNeeds - (diskCapacity - used)
	best := -1
	for _, size := range dirs {
		if size >= need && (best == -1 || size < best) {
			best = size
		}
	}
	if best == -1 {
		return "", fmt.Errorf("no directory frees %d", need)
	}
	return itoa(best), nil
}
