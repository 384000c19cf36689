package loop

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/pipe"
)

// FindStart returns the coordinate of the single start cell in g.
// Returns ErrNoStart or ErrMultipleStarts when there is not exactly one.
func FindStart(g *Grid) (grid.Coord, error) {
	if g == nil {
		return grid.Coord{}, ErrGridNil
	}
	start, ok := g.Find(pipe.Connector.IsStart)
	if !ok {
		return grid.Coord{}, ErrNoStart
	}
	if n := g.Count(pipe.Connector.IsStart); n > 1 {
		return grid.Coord{}, fmt.Errorf("%w: found %d", ErrMultipleStarts, n)
	}
	return start, nil
}

// StartDirections returns the directions that validate from start,
// in North, South, East, West order.
func StartDirections(g *Grid, start grid.Coord) []pipe.Direction {
	dirs := make([]pipe.Direction, 0, 2)
	for _, d := range pipe.Directions {
		if CanStep(g, start, d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// InferStartShape recovers the passage hidden under start from its two
// validated steps. Exactly two directions must validate; any other count
// fails with ErrAmbiguousStartShape. The result depends only on g and start,
// so repeated calls agree.
func InferStartShape(g *Grid, start grid.Coord) (pipe.Connector, error) {
	if g == nil {
		return pipe.Ground, ErrGridNil
	}
	dirs := StartDirections(g, start)
	if len(dirs) != 2 {
		return pipe.Ground, fmt.Errorf("%w: %d directions validate at %v, want 2", ErrAmbiguousStartShape, len(dirs), start)
	}
	return pipe.FromDirections(dirs[0], dirs[1])
}
