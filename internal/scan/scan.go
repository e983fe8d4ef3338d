// Package scan holds small helpers for slicing raw puzzle input into
// lines, blank-separated blocks, and numbers. Grammar-shaped input is
// parsed elsewhere; these helpers only carve up text positionally.
package scan

import (
	"fmt"
	"strconv"
	"strings"
)

// Lines splits s into lines. A single trailing newline does not produce
// an empty final line, and carriage returns are stripped so inputs saved
// on Windows parse identically.
func Lines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Blocks splits s into runs of consecutive non-blank lines. Consecutive
// blank lines collapse; leading and trailing blank lines are ignored.
func Blocks(s string) [][]string {
	var blocks [][]string
	var cur []string
	for _, line := range Lines(s) {
		if line == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}

// Ints parses every line as a base-10 integer.
func Ints(lines []string) ([]int, error) {
	out := make([]int, 0, len(lines))
	for i, line := range lines {
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, n)
	}
	return out, nil
}
