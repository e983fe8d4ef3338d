package days

import (
	"fmt"

	"github.com/alecthomas/participle/v2"

	"github.com/igemnace/advent-of-code-2022/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		N:     2,
		Title: "Rock Paper Scissors",
		Part1: scoreAsShapes,
		Part2: scoreAsOutcomes,
	})
}

type shape int

const (
	rock shape = iota
	paper
	scissors
)

type outcome int

const (
	loss outcome = iota
	draw
	win
)

func (s shape) score() int { return int(s) + 1 }

func (o outcome) score() int {
	switch o {
	case loss:
		return 0
	case draw:
		return 3
	default:
		return 6
	}
}

// beats returns the shape s defeats; losesTo returns the shape that
// defeats s. The relation is fixed and closed, so total switch
// functions rather than lookup tables.
func (s shape) beats() shape {
	switch s {
	case rock:
		return scissors
	case paper:
		return rock
	default:
		return paper
	}
}

func (s shape) losesTo() shape {
	switch s {
	case rock:
		return paper
	case paper:
		return scissors
	default:
		return rock
	}
}

// play returns the round outcome for mine against opp.
func play(opp, mine shape) outcome {
	switch {
	case mine == opp:
		return draw
	case mine.beats() == opp:
		return win
	default:
		return loss
	}
}

// responseFor returns the shape to throw against opp to force want.
func responseFor(opp shape, want outcome) shape {
	switch want {
	case draw:
		return opp
	case win:
		return opp.losesTo()
	default:
		return opp.beats()
	}
}

type roundLine struct {
	Opponent string `parser:"@('A' | 'B' | 'C')"`
	Response string `parser:"@('X' | 'Y' | 'Z')"`
}

type strategyGuide struct {
	Rounds []roundLine `parser:"@@*"`
}

var guideParser = participle.MustBuild[strategyGuide]()

func parseGuide(input string) ([]roundLine, error) {
	guide, err := guideParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse strategy guide: %w", err)
	}
	return guide.Rounds, nil
}

func opponentShape(letter string) shape {
	switch letter {
	case "A":
		return rock
	case "B":
		return paper
	default:
		return scissors
	}
}

// scoreAsShapes reads the second column as the shape to throw.
func scoreAsShapes(input string) (string, error) {
	rounds, err := parseGuide(input)
	if err != nil {
		return "", err
	}
	total := 0
	for _, r := range rounds {
		opp := opponentShape(r.Opponent)
		var mine shape
		switch r.Response {
		case "X":
			mine = rock
		case "Y":
			mine = paper
		default:
			mine = scissors
		}
		total += mine.score() + play(opp, mine).score()
	}
	return itoa(total), nil
}

// scoreAsOutcomes reads the second column as the outcome to force.
func scoreAsOutcomes(input string) (string, error) {
	rounds, err := parseGuide(input)
	if err != nil {
		return "", err
	}
	total := 0
	for _, r := range rounds {
		opp := opponentShape(r.Opponent)
		var want outcome
		switch r.Response {
		case "X":
			want = loss
		case "Y":
			want = draw
		default:
			want = win
		}
		mine := responseFor(opp, want)
		total += mine.score() + want.score()
	}
	return itoa(total), nil
}
