package loop_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/loop"
)

var enclosureCases = []struct {
	name     string
	text     string
	enclosed int
}{
	{"Square", squareLoop, 1},
	{"Winding", windingLoop, 1},
	{"Box", boxLoop, 8},
	{"Pinched", pinchedLoop, 4},
	{"Larger", largerLoop, 8},
	{"Junk", junkLoop, 10},
	// The start is a vertical crossing; without inference the pocket is missed.
	{"StartCrossing", "F-7\nS.|\nL-J", 1},
}

// TestCountEnclosed checks the enclosed count on every reference loop.
func TestCountEnclosed(t *testing.T) {
	for _, tc := range enclosureCases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustParse(t, tc.text)
			lp, err := loop.Trace(g, mustStart(t, g))
			require.NoError(t, err)
			n, err := loop.CountEnclosed(g, lp)
			require.NoError(t, err)
			assert.Equal(t, tc.enclosed, n)
		})
	}
}

// TestCountEnclosed_Rotation turns each grid through three quarter turns;
// the parity sweep must not depend on orientation.
func TestCountEnclosed_Rotation(t *testing.T) {
	for _, tc := range enclosureCases {
		g := mustParse(t, tc.text)
		for turn := 1; turn <= 3; turn++ {
			g = rotate(g)
			t.Run(fmt.Sprintf("%s/%d", tc.name, turn*90), func(t *testing.T) {
				lp, err := loop.Trace(g, mustStart(t, g))
				require.NoError(t, err)
				n, err := loop.CountEnclosed(g, lp)
				require.NoError(t, err)
				assert.Equal(t, tc.enclosed, n)
			})
		}
	}
}

// TestEnclosedCells_StraysAreTransparent counts a pipe glyph inside the loop
// that is not part of it.
func TestEnclosedCells_StraysAreTransparent(t *testing.T) {
	g := mustParse(t, "F---7\n|L|F|\n|.-.|\nL---J\n..S..")
	// The start marker sits off the loop; trace from a corner instead.
	lp, err := loop.Trace(g, grid.Coord{Row: 0, Col: 0})
	require.NoError(t, err)
	require.Equal(t, 14, lp.Len())

	cells, err := loop.EnclosedCells(g, lp)
	require.NoError(t, err)
	assert.Len(t, cells, 6)
	assert.Contains(t, cells, grid.Coord{Row: 1, Col: 1}, "stray L is inside")
	assert.Contains(t, cells, grid.Coord{Row: 2, Col: 2}, "stray - is inside")
	assert.Equal(t, grid.Coord{Row: 1, Col: 1}, cells[0], "row-major order")
}

// TestEnclosedCells_Square returns the single centre cell.
func TestEnclosedCells_Square(t *testing.T) {
	g := mustParse(t, squareLoop)
	lp, err := loop.Trace(g, mustStart(t, g))
	require.NoError(t, err)
	cells, err := loop.EnclosedCells(g, lp)
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{{Row: 2, Col: 2}}, cells)
}

// TestCountEnclosed_Errors covers nil inputs and an unresolvable start.
func TestCountEnclosed_Errors(t *testing.T) {
	_, err := loop.CountEnclosed(nil, nil)
	assert.ErrorIs(t, err, loop.ErrGridNil)

	g := mustParse(t, ".|.\n-S-\n...")
	lp, err := loop.Trace(g, mustStart(t, g))
	require.NoError(t, err)
	_, err = loop.CountEnclosed(g, lp)
	assert.ErrorIs(t, err, loop.ErrAmbiguousStartShape)
}

// TestRender draws the loop with box glyphs and marks the inside.
func TestRender(t *testing.T) {
	g := mustParse(t, squareLoop)
	lp, err := loop.Trace(g, mustStart(t, g))
	require.NoError(t, err)
	cells, err := loop.EnclosedCells(g, lp)
	require.NoError(t, err)

	want := "     \n" +
		" S═╗ \n" +
		" ║I║ \n" +
		" ╚═╝ \n" +
		"     \n"
	assert.Equal(t, want, loop.Render(g, lp, cells))
}
