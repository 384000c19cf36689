package grid_test

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/grid"
)

// ExampleGrid_Get shows that stepping off the board is ordinary control flow.
func ExampleGrid_Get() {
	g, err := grid.Parse("ab\ncd", func(r rune) (rune, error) { return r, nil })
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	origin := grid.Coord{Row: 0, Col: 0}
	north := origin.Add(grid.Coord{Row: -1, Col: 0})

	v, ok := g.Get(origin)
	fmt.Printf("%c %v\n", v, ok)
	_, ok = g.Get(north)
	fmt.Println(north, ok)
	// Output:
	// a true
	// (-1,0) false
}
