// Package grid provides an immutable, bounds-checked rectangular container
// of cells addressed by integer (row, column) coordinates.
//
// What:
//
//   - Coord is a value-type (Row, Col) pair with vector addition and an L1
//     (Manhattan) distance.
//   - Grid[T] wraps a rectangular [][]T, generic over the cell payload.
//   - Get is total: any coordinate outside the grid (including negative ones)
//     yields "absent" instead of panicking.
//   - Parse builds a Grid from text, one row per line and one cell per rune,
//     through a caller-supplied rune mapper.
//
// Why:
//
//   - Puzzle and map inputs: pipes, mazes, tiles, galaxies.
//   - Graph searches that step off the edge of the board as normal control flow.
//
// Complexity:
//
//   - New, Parse, Rotate: O(W×H) time and memory.
//   - Get, InBounds:      O(1).
//   - Find, Each:         O(W×H).
//
// Concurrency:
//
//	A Grid exposes no mutators and deep-copies its input, so any number of
//	goroutines may read the same Grid without synchronization.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrCellMapper: the rune mapper rejected a character (wraps the cause).
package grid
