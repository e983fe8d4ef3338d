package days

import (
	"fmt"

	"github.com/igemnace/advent-of-code-2022/internal/puzzle"
	"github.com/igemnace/advent-of-code-2022/internal/scan"
)

func init() {
	puzzle.Register(puzzle.Day{
		N:     6,
		Title: "Tuning Trouble",
		Part1: func(input string) (string, error) { return firstMarkerAnswer(input, 4) },
		Part2: func(input string) (string, error) { return firstMarkerAnswer(input, 14) },
	})
}

// firstMarker returns the index just past the first window of size
// pairwise-distinct characters in stream.
func firstMarker(stream string, size int) (int, error) {
	for end := size; end <= len(stream); end++ {
		if allDistinct(stream[end-size : end]) {
			return end, nil
		}
	}
	return 0, fmt.Errorf("no window of %d distinct characters", size)
}

func allDistinct(window string) bool {
	var seen [256]bool
	for i := 0; i < len(window); i++ {
		if seen[window[i]] {
			return false
		}
		seen[window[i]] = true
	}
	return true
}

func firstMarkerAnswer(input string, size int) (string, error) {
	lines := scan.Lines(input)
	if len(lines) == 0 {
		return "", fmt.Errorf("empty datastream")
	}
	marker, err := firstMarker(lines[0], size)
	if err != nil {
		return "", err
	}
	return itoa(marker), nil
}
