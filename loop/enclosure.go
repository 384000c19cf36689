package loop

import (
	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/pipe"
)

// EnclosedCells returns, in row-major order, every cell that is not on the
// loop but lies inside it.
//
// Each row is swept left to right with a parity flag. A loop cell whose
// effective connector joins North flips the flag; Horizontal and the
// south-facing elbows never do, so an elbow pair like L-7 flips once and
// F-7 flips zero times. Start cells count as the shape InferStartShape
// recovers for them. Cells off the loop are transparent, whatever their
// rune, and are inside whenever the flag is set.
//
// Fails with ErrAmbiguousStartShape when a start cell on the loop cannot
// be resolved.
func EnclosedCells(g *Grid, lp *DistanceMap) ([]grid.Coord, error) {
	if g == nil || lp == nil {
		return nil, ErrGridNil
	}
	var out []grid.Coord
	for r := 0; r < g.Height; r++ {
		inside := false
		for c := 0; c < g.Width; c++ {
			at := grid.Coord{Row: r, Col: c}
			if !lp.Contains(at) {
				if inside {
					out = append(out, at)
				}
				continue
			}
			eff, err := effective(g, at)
			if err != nil {
				return nil, err
			}
			if eff.Connects(pipe.North) {
				inside = !inside
			}
		}
	}
	return out, nil
}

// CountEnclosed returns how many non-loop cells lie inside the loop.
func CountEnclosed(g *Grid, lp *DistanceMap) (int, error) {
	cells, err := EnclosedCells(g, lp)
	if err != nil {
		return 0, err
	}
	return len(cells), nil
}

// effective returns the connector at c, resolving a start cell to its
// inferred shape.
func effective(g *Grid, c grid.Coord) (pipe.Connector, error) {
	conn, _ := g.Get(c)
	if !conn.IsStart() {
		return conn, nil
	}
	return InferStartShape(g, c)
}
