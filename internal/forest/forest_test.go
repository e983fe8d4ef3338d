package forest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/igemnace/advent-of-code-2022/internal/geom"
)

const sampleMap = `30373
25512
65332
33549
35390
`

func mustParse(t *testing.T, input string) *HeightMap {
	t.Helper()
	m, err := Parse(input)
	require.NoError(t, err)
	return m
}

func TestParse(t *testing.T) {
	m := mustParse(t, sampleMap)
	assert.Equal(t, 5, m.Rows())
	assert.Equal(t, 5, m.Cols())
	assert.Equal(t, 3, m.At(0, 0))
	assert.Equal(t, 9, m.At(3, 4))
	assert.Equal(t, 0, m.At(4, 4))
}

func TestParseRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"ragged rows", "123\n45\n"},
		{"non-digit", "12a\n456\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestEdgeTreesAlwaysVisible(t *testing.T) {
	m := mustParse(t, sampleMap)
	for r := 0; r < m.Rows(); r++ {
		assert.True(t, m.Visible(r, 0), "row %d, left edge", r)
		assert.True(t, m.Visible(r, m.Cols()-1), "row %d, right edge", r)
	}
	for c := 0; c < m.Cols(); c++ {
		assert.True(t, m.Visible(0, c), "top edge, col %d", c)
		assert.True(t, m.Visible(m.Rows()-1, c), "bottom edge, col %d", c)
	}
}

func TestInteriorVisibility(t *testing.T) {
	m := mustParse(t, sampleMap)
	tests := []struct {
		row, col int
		visible  bool
	}{
		{1, 1, true},  // 5, seen from the left and top
		{1, 2, true},  // 5, seen from the top and right
		{1, 3, false}, // 1, walled in on every side
		{2, 1, true},  // 5, seen only from the right
		{2, 2, false}, // 3
		{2, 3, true},  // 3, seen from the right
		{3, 1, false}, // 3
		{3, 2, true},  // 5
		{3, 3, false}, // 4
	}
	for _, tt := range tests {
		assert.Equal(t, tt.visible, m.Visible(tt.row, tt.col), "cell (%d,%d)", tt.row, tt.col)
	}
}

func TestCountVisibleSample(t *testing.T) {
	m := mustParse(t, sampleMap)
	assert.Equal(t, 21, m.CountVisible())
}

func TestViewingDistance(t *testing.T) {
	m := mustParse(t, sampleMap)

	// The 5 at row 1, col 2 of the sample.
	assert.Equal(t, 1, m.ViewingDistance(1, 2, geom.Up))
	assert.Equal(t, 1, m.ViewingDistance(1, 2, geom.Left))
	assert.Equal(t, 2, m.ViewingDistance(1, 2, geom.Right))
	assert.Equal(t, 2, m.ViewingDistance(1, 2, geom.Down))
	assert.Equal(t, 4, m.ScenicScore(1, 2))

	// The 5 at row 3, col 2.
	assert.Equal(t, 2, m.ViewingDistance(3, 2, geom.Up))
	assert.Equal(t, 2, m.ViewingDistance(3, 2, geom.Left))
	assert.Equal(t, 1, m.ViewingDistance(3, 2, geom.Down))
	assert.Equal(t, 2, m.ViewingDistance(3, 2, geom.Right))
	assert.Equal(t, 8, m.ScenicScore(3, 2))
}

func TestEdgeViewingDistanceIsZeroTowardEdge(t *testing.T) {
	m := mustParse(t, sampleMap)
	assert.Equal(t, 0, m.ViewingDistance(0, 2, geom.Up))
	assert.Equal(t, 0, m.ViewingDistance(4, 2, geom.Down))
	assert.Equal(t, 0, m.ViewingDistance(2, 0, geom.Left))
	assert.Equal(t, 0, m.ViewingDistance(2, 4, geom.Right))
	assert.Equal(t, 0, m.ScenicScore(0, 2), "edge trees always score zero")
}

func TestMaxScenicScoreSample(t *testing.T) {
	m := mustParse(t, sampleMap)
	assert.Equal(t, 8, m.MaxScenicScore())
}

func TestSingleCellMap(t *testing.T) {
	m := mustParse(t, "7\n")
	assert.Equal(t, 1, m.CountVisible())
	assert.Equal(t, 0, m.MaxScenicScore())
}
