package loop_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/loop"
	"github.com/katalvlaran/pipeloop/pipe"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// squareLoop: a 3×3 loop with one enclosed cell.
const squareLoop = `.....
.S-7.
.|.|.
.L-J.
.....`

// windingLoop: start on the left edge, loop of length 16.
const windingLoop = `..F7.
.FJ|.
SJ.L7
|F--J
LJ...`

// boxLoop: a 9×9 grid whose 4×6 loop encloses a 2×4 block.
const boxLoop = `.........
.S----7..
.|....|..
.|....|..
.L----J..
.........
.........
.........
.........`

// pinchedLoop: two pockets joined by a squeeze; encloses 4 cells.
const pinchedLoop = `...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........`

// largerLoop: scattered ground inside and out; encloses 8 cells.
const largerLoop = `.F----7F7F7F7F-7....
.|F--7||||||||FJ....
.||.FJ||||||||L7....
FJL7L7LJLJ||LJ.L-7..
L--J.L7...LJS7F-7L7.
....F-J..F7FJ|L7L7L7
....L7.F7||L7|.L7L7|
.....|FJLJ|FJ|F7|.LJ
....FJL-7.||.||||...
....L---J.LJ.LJLJ...`

// junkLoop: every cell holds a pipe; strays inside count as enclosed (10).
const junkLoop = `FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L`

// mustParse parses text or fails the test.
func mustParse(t testing.TB, text string) *loop.Grid {
	t.Helper()
	g, err := loop.Parse(text)
	require.NoError(t, err)
	return g
}

// mustStart locates the start cell or fails the test.
func mustStart(t testing.TB, g *loop.Grid) grid.Coord {
	t.Helper()
	start, err := loop.FindStart(g)
	require.NoError(t, err)
	return start
}

// rotate turns a connector grid 90° clockwise, turning every connector with it.
func rotate(g *loop.Grid) *loop.Grid {
	return grid.Rotate(g, pipe.Connector.Clockwise)
}
