package rope

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igemnace/advent-of-code-2022/internal/geom"
)

const shortScript = `R 4
U 4
L 3
D 1
R 4
D 1
L 5
R 2
`

const longScript = `R 5
U 8
L 8
D 3
R 17
D 10
L 25
U 20
`

func ptLess(a, b geom.Pt) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

func TestParseMotions(t *testing.T) {
	motions, err := ParseMotions("R 4\nU 1\nL 12\nD 3\n")
	require.NoError(t, err)
	want := []Motion{
		{geom.Right, 4},
		{geom.Up, 1},
		{geom.Left, 12},
		{geom.Down, 3},
	}
	assert.Equal(t, want, motions)
}

func TestParseMotionsEmpty(t *testing.T) {
	motions, err := ParseMotions("")
	require.NoError(t, err)
	assert.Empty(t, motions)
}

func TestParseMotionsRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown direction", "X 3\n"},
		{"missing count", "U\n"},
		{"zero steps", "U 0\n"},
		{"negative steps", "U -2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMotions(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestShortRopeSample(t *testing.T) {
	motions, err := ParseMotions(shortScript)
	require.NoError(t, err)
	assert.Equal(t, 13, Run(2, motions))
}

func TestLongRopeSamples(t *testing.T) {
	motions, err := ParseMotions(shortScript)
	require.NoError(t, err)
	assert.Equal(t, 1, Run(10, motions), "short script barely moves a long rope's tail")

	motions, err = ParseMotions(longScript)
	require.NoError(t, err)
	assert.Equal(t, 36, Run(10, motions))
}

func TestNoMotionsVisitsOrigin(t *testing.T) {
	r := New(5)
	assert.Equal(t, 1, r.Visited())
	if diff := cmp.Diff([]geom.Pt{{}}, r.VisitedPoints()); diff != "" {
		t.Errorf("visited points mismatch (-want +got):\n%s", diff)
	}
}

func TestVisitedPointsShortWalk(t *testing.T) {
	motions, err := ParseMotions("R 2\nU 2\n")
	require.NoError(t, err)
	r := New(2)
	r.Apply(motions)

	want := []geom.Pt{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: -1}}
	if diff := cmp.Diff(want, r.VisitedPoints(), cmpopts.SortSlices(ptLess)); diff != "" {
		t.Errorf("visited points mismatch (-want +got):\n%s", diff)
	}
}

// A one-knot rope has no tail to drag: the visited set must be exactly
// the set of points the head passes through, origin included.
func TestHeadOnlyRopeVisitsEveryHeadPoint(t *testing.T) {
	motions, err := ParseMotions(shortScript)
	require.NoError(t, err)

	r := New(1)
	headPath := map[geom.Pt]struct{}{{}: {}}
	for _, m := range motions {
		for s := 0; s < m.Steps; s++ {
			r.Step(m.Dir)
			headPath[r.Knots()[0]] = struct{}{}
		}
	}

	assert.Equal(t, len(headPath), r.Visited())

	wantPts := make([]geom.Pt, 0, len(headPath))
	for p := range headPath {
		wantPts = append(wantPts, p)
	}
	if diff := cmp.Diff(wantPts, r.VisitedPoints(), cmpopts.SortSlices(ptLess)); diff != "" {
		t.Errorf("visited points mismatch (-want +got):\n%s", diff)
	}
}

// After every unit step, every adjacent knot pair must be within
// Chebyshev distance 1.
func TestAdjacentKnotsStayWithinOneStep(t *testing.T) {
	motions, err := ParseMotions(longScript)
	require.NoError(t, err)

	r := New(10)
	for _, m := range motions {
		for s := 0; s < m.Steps; s++ {
			r.Step(m.Dir)
			knots := r.Knots()
			for i := 1; i < len(knots); i++ {
				d := knots[i-1].Chebyshev(knots[i])
				require.LessOrEqual(t, d, 1, "knots %d and %d drifted apart after %v", i-1, i, m)
			}
		}
	}
}

func TestRunIsIdempotent(t *testing.T) {
	motions, err := ParseMotions(longScript)
	require.NoError(t, err)
	first := Run(10, motions)
	second := Run(10, motions)
	assert.Equal(t, first, second)
}
