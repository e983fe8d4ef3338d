// Package geom provides primitives for puzzles played on an integer
// lattice: points, cardinal directions, and single-step movement.
package geom

import "golang.org/x/exp/constraints"

// Pt2 is a point on an unbounded integer lattice. The Y axis grows
// downward so that (row, column) grids and terminal output agree.
// Pt2 is comparable and usable as a map key.
type Pt2[T constraints.Signed] struct {
	X, Y T
}

// Pt is the point type used throughout the solutions.
type Pt = Pt2[int]

// Add returns the vector sum of p and q.
func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

// AbsDiff returns |x-y|.
func AbsDiff[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}
	return v
}

// Chebyshev returns the Chebyshev distance max(|Δx|, |Δy|) between a and b.
func (a Pt2[T]) Chebyshev(b Pt2[T]) T {
	dx := AbsDiff(a.X, b.X)
	dy := AbsDiff(a.Y, b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Toward returns a moved at most one unit along each axis in the
// direction of b. The axes move independently, so a gap that differs on
// both closes diagonally in a single call.
func (a Pt2[T]) Toward(b Pt2[T]) Pt2[T] {
	p := a
	if b.X < p.X {
		p.X--
	} else if b.X > p.X {
		p.X++
	}
	if b.Y < p.Y {
		p.Y--
	} else if b.Y > p.Y {
		p.Y++
	}
	return p
}

// Direction is one of the four cardinal directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists the cardinal directions in declaration order.
var Directions = [4]Direction{Up, Down, Left, Right}

// Delta returns the unit vector for d.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	case Right:
		return Pt{1, 0}
	}
	panic("geom: invalid direction")
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "U"
	case Down:
		return "D"
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return "?"
}
