package loop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/loop"
)

// TestWalk_Square follows the 3×3 loop south first, as the inferred shape dictates.
func TestWalk_Square(t *testing.T) {
	g := mustParse(t, squareLoop)
	cycle, err := loop.Walk(g, grid.Coord{Row: 1, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, []grid.Coord{
		{Row: 1, Col: 1}, {Row: 2, Col: 1}, {Row: 3, Col: 1}, {Row: 3, Col: 2},
		{Row: 3, Col: 3}, {Row: 2, Col: 3}, {Row: 1, Col: 3}, {Row: 1, Col: 2},
	}, cycle)

	// Consecutive cells are one step apart, including the closing step.
	for i := range cycle {
		next := cycle[(i+1)%len(cycle)]
		assert.Equal(t, 1, cycle[i].Manhattan(next), "%v -> %v", cycle[i], next)
	}
}

// TestWalk_Errors covers unresolved starts and loops that break off.
func TestWalk_Errors(t *testing.T) {
	_, err := loop.Walk(mustParse(t, ".|.\n-S-\n..."), grid.Coord{Row: 1, Col: 1})
	assert.ErrorIs(t, err, loop.ErrAmbiguousStartShape)

	// Both start steps validate but the far ends never meet.
	_, err = loop.Walk(mustParse(t, "F-S-7\n|...|\n|...L\nL-..."), grid.Coord{Row: 0, Col: 2})
	assert.ErrorIs(t, err, loop.ErrOpenLoop)
}
