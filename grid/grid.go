// Package grid provides a generic, read-only rectangular container with
// total (non-panicking) coordinate lookup.
package grid

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func New[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]T, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]T, w)
		copy(cells[r], rows[r])
	}

	return &Grid[T]{Height: h, Width: w, cells: cells}, nil
}

// Parse builds a Grid from text: one row per line, one cell per rune.
// A single trailing newline is ignored and "\r\n" line endings are accepted.
// Each rune goes through mapper; its error is wrapped in ErrCellMapper
// together with the offending coordinate.
func Parse[T any](text string, mapper func(r rune) (T, error)) (*Grid[T], error) {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	rows := make([][]T, 0, len(lines))
	for r, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		row := make([]T, 0, len(line))
		col := 0
		for _, ch := range line {
			v, err := mapper(ch)
			if err != nil {
				return nil, fmt.Errorf("%w at %v: %w", ErrCellMapper, Coord{Row: r, Col: col}, err)
			}
			row = append(row, v)
			col++
		}
		rows = append(rows, row)
	}

	return New(rows)
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Height && c.Col >= 0 && c.Col < g.Width
}

// Get returns the cell at c and true, or the zero value and false when c
// falls outside the grid. It never panics.
// Complexity: O(1).
func (g *Grid[T]) Get(c Coord) (T, bool) {
	if !g.InBounds(c) {
		var zero T
		return zero, false
	}
	return g.cells[c.Row][c.Col], true
}

// Each calls fn for every cell in row-major order until fn returns false.
func (g *Grid[T]) Each(fn func(c Coord, v T) bool) {
	for r := 0; r < g.Height; r++ {
		for col := 0; col < g.Width; col++ {
			if !fn(Coord{Row: r, Col: col}, g.cells[r][col]) {
				return
			}
		}
	}
}

// Find returns the first coordinate, in row-major order, whose cell
// satisfies pred.
func (g *Grid[T]) Find(pred func(v T) bool) (Coord, bool) {
	var (
		found Coord
		ok    bool
	)
	g.Each(func(c Coord, v T) bool {
		if pred(v) {
			found, ok = c, true
			return false
		}
		return true
	})
	return found, ok
}

// Count returns how many cells satisfy pred.
func (g *Grid[T]) Count(pred func(v T) bool) int {
	n := 0
	g.Each(func(_ Coord, v T) bool {
		if pred(v) {
			n++
		}
		return true
	})
	return n
}

// Rotate returns a new grid turned 90° clockwise, mapping every cell through
// fn on the way (use an identity fn for plain payloads).
// The cell at (r, c) moves to (c, Height-1-r).
func Rotate[T any](g *Grid[T], fn func(T) T) *Grid[T] {
	cells := make([][]T, g.Width)
	for r := range cells {
		cells[r] = make([]T, g.Height)
	}
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			cells[c][g.Height-1-r] = fn(g.cells[r][c])
		}
	}
	return &Grid[T]{Height: g.Width, Width: g.Height, cells: cells}
}

// Render draws the grid as text, one line per row, using glyph for each cell.
func (g *Grid[T]) Render(glyph func(c Coord, v T) rune) string {
	var sb strings.Builder
	sb.Grow(g.Height * (g.Width + 1))
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			sb.WriteRune(glyph(Coord{Row: r, Col: c}, g.cells[r][c]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
