// Package puzzle holds the day registry and the input loader shared by
// every solution. Days register themselves at init time; the runner
// looks them up by number.
package puzzle

import (
	"fmt"
	"sort"
)

// PartFunc computes one part's answer from the raw puzzle input.
type PartFunc func(input string) (string, error)

// Day is one registered puzzle: a number, a title, and a function per
// part.
type Day struct {
	N     int
	Title string
	Part1 PartFunc
	Part2 PartFunc
}

// Part returns the function for part 1 or 2.
func (d Day) Part(n int) (PartFunc, error) {
	switch n {
	case 1:
		return d.Part1, nil
	case 2:
		return d.Part2, nil
	}
	return nil, fmt.Errorf("day %d has no part %d", d.N, n)
}

var registry = make(map[int]Day)

// Register adds a day to the registry. Registering a day number twice,
// or a day missing a part, is a programming error and panics.
func Register(d Day) {
	if d.Part1 == nil || d.Part2 == nil {
		panic(fmt.Sprintf("puzzle: day %d registered without both parts", d.N))
	}
	if _, ok := registry[d.N]; ok {
		panic(fmt.Sprintf("puzzle: day %d registered twice", d.N))
	}
	registry[d.N] = d
}

func (d Day) String() string {
	return fmt.Sprintf("day %d: %s", d.N, d.Title)
}

// Get looks up a registered day by number.
func Get(n int) (Day, bool) {
	d, ok := registry[n]
	return d, ok
}

// All returns every registered day in ascending order.
func All() []Day {
	days := make([]Day, 0, len(registry))
	for _, d := range registry {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].N < days[j].N })
	return days
}
