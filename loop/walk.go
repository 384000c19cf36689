package loop

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/pipe"
)

// Walk follows the loop once around from start and returns its cells in
// walking order, beginning with start. It leaves start along the first of
// the inferred start directions and, at every later cell, takes the
// connection it did not arrive through. Every move is checked with CanStep.
//
// Walk is an independent cross-check of Trace: on a closed loop both see
// the same cells. It fails with ErrAmbiguousStartShape when start cannot be
// resolved and ErrOpenLoop when the path breaks off or never returns.
func Walk(g *Grid, start grid.Coord) ([]grid.Coord, error) {
	shape, err := InferStartShape(g, start)
	if err != nil {
		return nil, err
	}
	dirs, _ := shape.Connections()

	limit := g.Height * g.Width
	path := []grid.Coord{start}
	cur, heading := start, dirs[0]
	for steps := 0; steps < limit; steps++ {
		if !CanStep(g, cur, heading) {
			return nil, fmt.Errorf("%w: cannot step %v from %v", ErrOpenLoop, heading, cur)
		}
		cur = cur.Add(heading.Offset())
		if cur == start {
			return path, nil
		}
		path = append(path, cur)

		conn, _ := g.Get(cur)
		heading, err = exit(conn, heading.Opposite())
		if err != nil {
			return nil, fmt.Errorf("%w at %v: %w", ErrOpenLoop, cur, err)
		}
	}
	return nil, fmt.Errorf("%w: no return to %v within %d steps", ErrOpenLoop, start, limit)
}

// exit returns the connection of conn other than entry.
func exit(conn pipe.Connector, entry pipe.Direction) (pipe.Direction, error) {
	dirs, ok := conn.Connections()
	switch {
	case !ok:
		return 0, fmt.Errorf("%v has no connections", conn)
	case dirs[0] == entry:
		return dirs[1], nil
	case dirs[1] == entry:
		return dirs[0], nil
	default:
		return 0, fmt.Errorf("%v does not connect %v", conn, entry)
	}
}
