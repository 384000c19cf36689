package loop

import (
	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/pipe"
)

// CanStep reports whether moving from `from` toward d is a loop edge.
//
// Both ends must agree: the source must connect d and the destination must
// connect d.Opposite(). A start cell satisfies its own side of the check in
// every direction because its shape is not known yet. Coordinates outside
// the grid never step and never receive.
func CanStep(g *Grid, from grid.Coord, d pipe.Direction) bool {
	src, ok := g.Get(from)
	if !ok {
		return false
	}
	if !src.IsStart() && !src.Connects(d) {
		return false
	}
	dst, ok := g.Get(from.Add(d.Offset()))
	if !ok {
		return false
	}
	return dst.IsStart() || dst.Connects(d.Opposite())
}

// Neighbors returns every cell reachable from `from` in one valid step,
// probing North, South, East, West in that order.
func Neighbors(g *Grid, from grid.Coord) []grid.Coord {
	out := make([]grid.Coord, 0, 2)
	for _, d := range pipe.Directions {
		if CanStep(g, from, d) {
			out = append(out, from.Add(d.Offset()))
		}
	}
	return out
}
