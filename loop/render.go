package loop

import (
	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/pipe"
)

// Render draws the loop with box-drawing glyphs. Enclosed cells are shown as
// 'I' and every other cell as a space; stray pipes off the loop vanish.
func Render(g *Grid, lp *DistanceMap, enclosed []grid.Coord) string {
	inside := make(map[grid.Coord]struct{}, len(enclosed))
	for _, c := range enclosed {
		inside[c] = struct{}{}
	}
	return g.Render(func(c grid.Coord, v pipe.Connector) rune {
		if lp.Contains(c) {
			return v.Glyph()
		}
		if _, ok := inside[c]; ok {
			return 'I'
		}
		return ' '
	})
}
