package days

import (
	"fmt"

	"github.com/alecthomas/participle/v2"

	"github.com/igemnace/advent-of-code-2022/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Day{
		N:     4,
		Title: "Camp Cleanup",
		Part1: fullyContainedPairs,
		Part2: overlappingPairs,
	})
}

type span struct {
	Lo int `parser:"@Int '-'"`
	Hi int `parser:"@Int"`
}

func (s span) contains(o span) bool { return s.Lo <= o.Lo && s.Hi >= o.Hi }
func (s span) overlaps(o span) bool { return s.Lo <= o.Hi && o.Lo <= s.Hi }

type sectionPair struct {
	First  span `parser:"@@ ','"`
	Second span `parser:"@@"`
}

type assignmentList struct {
	Pairs []sectionPair `parser:"@@*"`
}

var assignmentParser = participle.MustBuild[assignmentList]()

func parseAssignments(input string) ([]sectionPair, error) {
	list, err := assignmentParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse assignments: %w", err)
	}
	for i, p := range list.Pairs {
		if p.First.Lo > p.First.Hi || p.Second.Lo > p.Second.Hi {
			return nil, fmt.Errorf("parse assignments: pair %d: descending range", i+1)
		}
	}
	return list.Pairs, nil
}

func countPairs(input string, match func(a, b span) bool) (string, error) {
	pairs, err := parseAssignments(input)
	if err != nil {
		return "", err
	}
	count := 0
	for _, p := range pairs {
		if match(p.First, p.Second) {
			count++
		}
	}
	return itoa(count), nil
}

func fullyContainedPairs(input string) (string, error) {
	return countPairs(input, func(a, b span) bool {
		return a.contains(b) || b.contains(a)
	})
}

func overlappingPairs(input string) (string, error) {
	return countPairs(input, span.overlaps)
}
