package rope

import (
	"fmt"

	"github.com/alecthomas/participle/v2"

	"github.com/igemnace/advent-of-code-2022/internal/geom"
)

// Motion is one movement instruction: a direction and how many unit
// steps to take in it.
type Motion struct {
	Dir   geom.Direction
	Steps int
}

type motionLine struct {
	Dir   string `parser:"@('U' | 'D' | 'L' | 'R')"`
	Steps int    `parser:"@Int"`
}

type motionScript struct {
	Motions []motionLine `parser:"@@*"`
}

var motionParser = participle.MustBuild[motionScript]()

// ParseMotions parses lines of `<direction> <count>` where the direction
// is one of U, D, L, R and the count is a positive integer.
func ParseMotions(input string) ([]Motion, error) {
	script, err := motionParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse motions: %w", err)
	}
	motions := make([]Motion, 0, len(script.Motions))
	for _, line := range script.Motions {
		if line.Steps < 1 {
			return nil, fmt.Errorf("parse motions: step count %d must be positive", line.Steps)
		}
		motions = append(motions, Motion{Dir: direction(line.Dir), Steps: line.Steps})
	}
	return motions, nil
}

func direction(letter string) geom.Direction {
	switch letter {
	case "U":
		return geom.Up
	case "D":
		return geom.Down
	case "L":
		return geom.Left
	case "R":
		return geom.Right
	}
	// The grammar only admits the four letters above.
	panic("rope: unreachable direction " + letter)
}
