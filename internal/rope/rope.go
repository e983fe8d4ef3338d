// Package rope simulates a rope of knots on an unbounded lattice.
// The head knot is dragged around by motion instructions and every
// follower knot closes up behind its leader one unit step at a time.
package rope

import "github.com/igemnace/advent-of-code-2022/internal/geom"

// Rope is a chain of knots. Knot 0 is the head, the last knot is the
// tail. After every unit step each knot is within Chebyshev distance 1
// of the knot ahead of it.
type Rope struct {
	knots   []geom.Pt
	visited map[geom.Pt]struct{}
}

// New returns a rope of n knots, all at the origin. The tail's visited
// set starts out containing the origin, so a rope that never moves has
// visited exactly one point. n must be at least 1.
func New(n int) *Rope {
	if n < 1 {
		panic("rope: a rope needs at least one knot")
	}
	r := &Rope{
		knots:   make([]geom.Pt, n),
		visited: make(map[geom.Pt]struct{}),
	}
	r.visited[geom.Pt{}] = struct{}{}
	return r
}

// Step moves the head one unit in direction d, lets each follower catch
// up in order, and records where the tail ended up.
//
// A follower already within Chebyshev distance 1 of its leader stays
// put; otherwise it moves exactly one step toward the leader, closing a
// two-axis gap diagonally in that single step.
func (r *Rope) Step(d geom.Direction) {
	r.knots[0] = r.knots[0].Add(d.Delta())
	for i := 1; i < len(r.knots); i++ {
		lead := r.knots[i-1]
		if r.knots[i].Chebyshev(lead) <= 1 {
			// This knot holds, so everything behind it holds too.
			break
		}
		r.knots[i] = r.knots[i].Toward(lead)
	}
	r.visited[r.knots[len(r.knots)-1]] = struct{}{}
}

// Apply runs every motion, one unit step at a time. Multi-step motions
// are never applied as a bulk vector move: follower interactions must
// resolve at every intermediate step.
func (r *Rope) Apply(motions []Motion) {
	for _, m := range motions {
		for s := 0; s < m.Steps; s++ {
			r.Step(m.Dir)
		}
	}
}

// Knots returns a copy of the knot positions, head first.
func (r *Rope) Knots() []geom.Pt {
	out := make([]geom.Pt, len(r.knots))
	copy(out, r.knots)
	return out
}

// Visited reports how many distinct points the tail has occupied.
func (r *Rope) Visited() int {
	return len(r.visited)
}

// VisitedPoints returns the distinct tail positions in no particular
// order.
func (r *Rope) VisitedPoints() []geom.Pt {
	out := make([]geom.Pt, 0, len(r.visited))
	for p := range r.visited {
		out = append(out, p)
	}
	return out
}

// Run simulates motions on a fresh rope of n knots and returns the
// number of distinct points the tail visited.
func Run(n int, motions []Motion) int {
	r := New(n)
	r.Apply(motions)
	return r.Visited()
}
