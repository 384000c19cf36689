// Package loop traces the pipe loop through the start cell of a connector
// grid and measures it: per-cell distance, start shape and enclosed area.
package loop

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/pipeloop/grid"
)

// frontierItem pairs a cell with the neighbour that enqueued it.
type frontierItem struct {
	at        grid.Coord
	parent    grid.Coord
	hasParent bool
}

// tracer encapsulates mutable BFS state.
type tracer struct {
	grid     *Grid
	opts     Options
	ctx      context.Context
	frontier []frontierItem
	res      *DistanceMap
}

// Trace runs a level-synchronous breadth-first search from start over the
// CanStep relation and returns the distance of every cell reached.
//
// Each round drains the whole frontier: a cell not yet recorded gets the
// round number as its distance, then every valid, unrecorded neighbour is
// queued for the next round. On a single closed loop the search walks both
// ways round from the start and meets in the middle. A start with fewer than
// two valid steps yields whatever partial map results; that is not an error.
//
// Returns ErrGridNil, ErrStartOutOfBounds, a context error, or a wrapped
// OnVisit error.
func Trace(g *Grid, start grid.Coord, opts ...Option) (*DistanceMap, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartOutOfBounds, start)
	}
	o := buildOptions(opts)

	t := &tracer{
		grid:     g,
		opts:     o,
		ctx:      o.Ctx,
		frontier: []frontierItem{{at: start}},
		res: &DistanceMap{
			Order:  make([]grid.Coord, 0, 2*(g.Height+g.Width)),
			Parent: make(map[grid.Coord]grid.Coord),
			start:  start,
			dist:   make(map[grid.Coord]int),
		},
	}
	if err := t.loop(); err != nil {
		return nil, err
	}
	o.Logger.Debug("loop traced",
		zap.Stringer("start", start),
		zap.Int("cells", t.res.Len()),
		zap.Int("farthest", t.res.Max()))

	return t.res, nil
}

// loop processes rounds until the frontier empties, an error, or cancellation.
func (t *tracer) loop() error {
	for depth := 0; len(t.frontier) > 0; depth++ {
		// cancellation check (once per round)
		select {
		case <-t.ctx.Done():
			return t.ctx.Err()
		default:
		}

		round := t.frontier
		t.frontier = nil
		for _, item := range round {
			if t.res.Contains(item.at) {
				continue
			}
			if err := t.record(item, depth); err != nil {
				return err
			}
			t.expand(item.at)
		}
	}
	return nil
}

// record stores the distance and parent of item and calls OnVisit.
func (t *tracer) record(item frontierItem, depth int) error {
	t.res.dist[item.at] = depth
	t.res.Order = append(t.res.Order, item.at)
	if item.hasParent {
		t.res.Parent[item.at] = item.parent
	}
	if err := t.opts.OnVisit(item.at, depth); err != nil {
		return fmt.Errorf("loop: OnVisit error at %v: %w", item.at, err)
	}
	return nil
}

// expand queues every unrecorded neighbour reachable from c.
func (t *tracer) expand(c grid.Coord) {
	for _, nbr := range Neighbors(t.grid, c) {
		if t.res.Contains(nbr) {
			continue
		}
		t.frontier = append(t.frontier, frontierItem{at: nbr, parent: c, hasParent: true})
	}
}
