// Package grid defines core types and sentinel errors
// for the grid subpackage of github.com/katalvlaran/pipeloop.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrCellMapper indicates the rune mapper rejected an input character.
	ErrCellMapper = errors.New("grid: cannot map cell")
)

// Coord addresses a cell by row (top to bottom) and column (left to right).
// Negative values are valid intermediate results of offset arithmetic;
// they simply never resolve to a cell.
type Coord struct {
	Row, Col int
}

// Add returns the component-wise sum of c and o.
func (c Coord) Add(o Coord) Coord {
	return Coord{Row: c.Row + o.Row, Col: c.Col + o.Col}
}

// Manhattan returns the L1 distance between c and o.
func (c Coord) Manhattan(o Coord) int {
	return abs(o.Row-c.Row) + abs(o.Col-c.Col)
}

// Less orders coordinates row-major.
func (c Coord) Less(o Coord) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Grid is an immutable rectangular table of cells.
// Height and Width define dimensions; cells[row][col] holds the value.
type Grid[T any] struct {
	Height, Width int
	cells         [][]T
}
