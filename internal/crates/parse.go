package crates

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/igemnace/advent-of-code-2022/internal/scan"
)

type moveLine struct {
	Count int `parser:"'move' @Int"`
	From  int `parser:"'from' @Int"`
	To    int `parser:"'to' @Int"`
}

type moveScript struct {
	Moves []moveLine `parser:"@@*"`
}

var moveParser = participle.MustBuild[moveScript]()

// ParseMoves parses lines of `move <n> from <i> to <j>`.
func ParseMoves(input string) ([]Move, error) {
	script, err := moveParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse moves: %w", err)
	}
	moves := make([]Move, 0, len(script.Moves))
	for _, line := range script.Moves {
		if line.Count < 1 {
			return nil, fmt.Errorf("parse moves: count %d must be positive", line.Count)
		}
		moves = append(moves, Move{Count: line.Count, From: line.From, To: line.To})
	}
	return moves, nil
}

// ParseInput splits a puzzle input into its crate diagram and move
// list: the diagram runs up to the first blank line and everything
// after it is instructions.
func ParseInput(input string) (*Yard, []Move, error) {
	diagram, rest, found := strings.Cut(strings.ReplaceAll(input, "\r\n", "\n"), "\n\n")
	if !found {
		return nil, nil, fmt.Errorf("parse crates: no blank line after diagram")
	}
	yard, err := ParseDiagram(diagram)
	if err != nil {
		return nil, nil, err
	}
	moves, err := ParseMoves(rest)
	if err != nil {
		return nil, nil, err
	}
	return yard, moves, nil
}

// ParseDiagram reads a fixed-width crate drawing. Each stack occupies a
// four-character column whose crate rows look like `[X]`; the final
// line numbers the stacks and fixes how many there are.
func ParseDiagram(diagram string) (*Yard, error) {
	lines := scan.Lines(diagram)
	if len(lines) < 1 {
		return nil, fmt.Errorf("parse diagram: empty diagram")
	}
	labels := lines[len(lines)-1]
	n := len(strings.Fields(labels))
	if n == 0 {
		return nil, fmt.Errorf("parse diagram: no stack labels")
	}

	yard := NewYard(n)
	// Crate rows read top-down, so build each stack bottom-up.
	for row := len(lines) - 2; row >= 0; row-- {
		line := lines[row]
		for i := 0; i < n; i++ {
			col := 4 * i
			if col >= len(line) || line[col] != '[' {
				continue
			}
			if col+2 >= len(line) || line[col+2] != ']' {
				return nil, fmt.Errorf("parse diagram: line %d: malformed crate at column %d", row+1, col+1)
			}
			yard.stacks[i].Push(line[col+1])
		}
	}
	return yard, nil
}
