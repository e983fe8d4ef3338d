// Package forest measures sightlines in a rectangular grid of
// single-digit tree heights: which trees can be seen from outside the
// grid, and how far each tree can see.
package forest

import (
	"fmt"

	"github.com/igemnace/advent-of-code-2022/internal/geom"
	"github.com/igemnace/advent-of-code-2022/internal/scan"
)

// HeightMap is a rectangular grid of tree heights 0 through 9, indexed
// by (row, column). It is immutable once parsed; visibility and scenic
// score are pure functions of a position and the map.
type HeightMap struct {
	rows [][]int
}

// Parse reads a height map from lines of equal-length digit strings.
func Parse(input string) (*HeightMap, error) {
	lines := scan.Lines(input)
	if len(lines) == 0 {
		return nil, fmt.Errorf("parse height map: empty input")
	}
	width := len(lines[0])
	rows := make([][]int, len(lines))
	for i, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("parse height map: line %d is %d cells wide, want %d", i+1, len(line), width)
		}
		row := make([]int, width)
		for j := 0; j < width; j++ {
			c := line[j]
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("parse height map: line %d: %q is not a digit", i+1, c)
			}
			row[j] = int(c - '0')
		}
		rows[i] = row
	}
	return &HeightMap{rows: rows}, nil
}

// Rows returns the number of rows.
func (m *HeightMap) Rows() int { return len(m.rows) }

// Cols returns the number of columns.
func (m *HeightMap) Cols() int { return len(m.rows[0]) }

// At returns the height at (row, col).
func (m *HeightMap) At(row, col int) int { return m.rows[row][col] }

func (m *HeightMap) in(p geom.Pt) bool {
	return p.Y >= 0 && p.Y < len(m.rows) && p.X >= 0 && p.X < len(m.rows[0])
}

// ForOutward calls f with each height outward from (row, col) in
// direction d, nearest neighbor first, stopping when f returns false or
// the grid edge is passed. Visibility and viewing distance are both
// defined over this one scan so their edge behavior cannot drift apart.
func (m *HeightMap) ForOutward(row, col int, d geom.Direction, f func(h int) bool) {
	for p := (geom.Pt{X: col, Y: row}).Add(d.Delta()); m.in(p); p = p.Add(d.Delta()) {
		if !f(m.rows[p.Y][p.X]) {
			return
		}
	}
}

// Visible reports whether the tree at (row, col) can be seen from
// outside the grid looking along its row or column. Edge trees are
// always visible; an interior tree is visible when every tree between
// it and at least one edge is strictly shorter.
func (m *HeightMap) Visible(row, col int) bool {
	h := m.At(row, col)
	for _, d := range geom.Directions {
		blocked := false
		m.ForOutward(row, col, d, func(other int) bool {
			if other >= h {
				blocked = true
				return false
			}
			return true
		})
		if !blocked {
			return true
		}
	}
	return false
}

// ViewingDistance counts the trees seen from (row, col) looking in
// direction d: every tree up to and including the first one at least as
// tall, or up to the grid edge. An edge tree sees 0 toward its edge.
func (m *HeightMap) ViewingDistance(row, col int, d geom.Direction) int {
	h := m.At(row, col)
	dist := 0
	m.ForOutward(row, col, d, func(other int) bool {
		dist++
		return other < h
	})
	return dist
}

// ScenicScore is the product of the four directional viewing distances
// from (row, col). Any zero direction zeroes the score.
func (m *HeightMap) ScenicScore(row, col int) int {
	score := 1
	for _, d := range geom.Directions {
		score *= m.ViewingDistance(row, col, d)
	}
	return score
}

// CountVisible counts the trees visible from outside the grid.
func (m *HeightMap) CountVisible() int {
	count := 0
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			if m.Visible(r, c) {
				count++
			}
		}
	}
	return count
}

// MaxScenicScore returns the best scenic score anywhere on the map.
func (m *HeightMap) MaxScenicScore() int {
	best := 0
	for r := 0; r < m.Rows(); r++ {
		for c := 0; c < m.Cols(); c++ {
			if s := m.ScenicScore(r, c); s > best {
				best = s
			}
		}
	}
	return best
}
