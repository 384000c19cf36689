// Package loop provides tunable options, result types and error definitions
// for tracing the pipe loop of a connector grid.
package loop

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/pipeloop/grid"
	"github.com/katalvlaran/pipeloop/pipe"
)

// Sentinel errors for loop analysis.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("loop: grid is nil")

	// ErrStartOutOfBounds is returned when the start coordinate is not a grid cell.
	ErrStartOutOfBounds = errors.New("loop: start coordinate out of bounds")

	// ErrNoStart is returned when the grid holds no start marker.
	ErrNoStart = errors.New("loop: no start cell in grid")

	// ErrMultipleStarts is returned when the grid holds more than one start marker.
	ErrMultipleStarts = errors.New("loop: more than one start cell in grid")

	// ErrAmbiguousStartShape is returned when the start cell does not validate
	// exactly two directions. It is the same value as pipe.ErrAmbiguousStartShape.
	ErrAmbiguousStartShape = pipe.ErrAmbiguousStartShape

	// ErrOpenLoop is returned by Walk when the path from the start does not close.
	ErrOpenLoop = errors.New("loop: path from start does not close")
)

// Grid is a bounded grid of pipe connectors.
type Grid = grid.Grid[pipe.Connector]

// Parse builds a connector Grid from text using the default alphabet.
// Unknown runes fail with pipe.ErrInvalidCellSymbol.
func Parse(text string) (*Grid, error) {
	return ParseWith(text, pipe.DefaultAlphabet())
}

// ParseWith builds a connector Grid from text using alphabet a.
func ParseWith(text string, a pipe.Alphabet) (*Grid, error) {
	return grid.Parse(text, a.Parse)
}

// Option configures loop tracing via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a trace.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Logger receives debug events about the trace.
	Logger *zap.Logger

	// OnVisit is called when a cell is recorded with its distance.
	// If it returns an error, tracing aborts and propagates that error.
	OnVisit func(c grid.Coord, depth int) error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - a no-op logger
//   - a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Logger:  zap.NewNop(),
		OnVisit: func(grid.Coord, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes trace events to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnVisit registers a callback to run when a cell is recorded;
// returning an error from it stops the trace. Analyze runs two traces at
// once, so a hook passed there must be safe for concurrent use.
func WithOnVisit(fn func(c grid.Coord, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// DistanceMap holds the outcome of a trace: the step count from the start
// to every cell on the loop. Its key set is the loop.
type DistanceMap struct {
	// Order lists cells in the sequence they were recorded.
	Order []grid.Coord
	// Parent maps a cell to the neighbour it was first reached from.
	Parent map[grid.Coord]grid.Coord

	start grid.Coord
	dist  map[grid.Coord]int
}

// Start returns the coordinate the trace began from.
func (m *DistanceMap) Start() grid.Coord { return m.start }

// Distance returns the recorded step count of c.
func (m *DistanceMap) Distance(c grid.Coord) (int, bool) {
	d, ok := m.dist[c]
	return d, ok
}

// Contains reports whether c is on the loop.
func (m *DistanceMap) Contains(c grid.Coord) bool {
	_, ok := m.dist[c]
	return ok
}

// Len returns the number of cells on the loop.
func (m *DistanceMap) Len() int { return len(m.dist) }

// Max returns the largest recorded distance, which is half the loop length
// (rounded down) for a closed loop.
func (m *DistanceMap) Max() int {
	best := 0
	for _, d := range m.dist {
		if d > best {
			best = d
		}
	}
	return best
}

// Cells returns the loop cells in row-major order.
func (m *DistanceMap) Cells() []grid.Coord {
	out := make([]grid.Coord, 0, len(m.dist))
	for c := range m.dist {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// PathTo reconstructs the path from the start to dest.
// Returns an error if dest was not reached.
func (m *DistanceMap) PathTo(dest grid.Coord) ([]grid.Coord, error) {
	if !m.Contains(dest) {
		return nil, fmt.Errorf("loop: no path to %v", dest)
	}
	// build reversed path
	path := []grid.Coord{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := m.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// Report gathers the scalar results of one analysis.
type Report struct {
	Start      grid.Coord
	StartShape pipe.Connector
	LoopLength int
	Farthest   int
	Enclosed   int
}
