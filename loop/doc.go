// Package loop finds and measures the single closed pipe loop that runs
// through the start cell of a connector grid.
//
// What
//
//   - CanStep: the edge relation. A step from A toward d exists only if A
//     connects d and the neighbour B connects d.Opposite(). Pointing at a
//     neighbour is not enough; B must point back. The start cell passes its
//     own side of the check in every direction until its shape is known.
//   - Trace: level-synchronous breadth-first search from the start over
//     CanStep, returning a DistanceMap whose key set is the loop.
//   - InferStartShape: recovers the passage under the start marker from the
//     two directions that validate.
//   - EnclosedCells / CountEnclosed: row-by-row parity sweep that flips on
//     every loop cell joining North and counts non-loop cells while inside.
//   - Walk: a single pass round the loop, an independent check of Trace.
//   - Analyze: both measures for a whole grid, computed concurrently.
//
// The adjacency relation is never materialized; CanStep is evaluated lazily
// as the search reaches each cell.
//
// Complexity (W×H grid, L = loop length)
//
//   - Trace:          O(L) time, O(L) memory.
//   - EnclosedCells:  O(W×H) time.
//   - Walk:           O(L) time.
//
// Concurrency
//
//	Grids are read-only, so any number of analyses may share one. Every
//	Trace builds a fresh DistanceMap owned by its caller.
//
// Usage
//
//	g, err := loop.Parse(text)
//	if err != nil {
//		// pipe.ErrInvalidCellSymbol, grid.ErrEmptyGrid, grid.ErrNonRectangular
//	}
//	rep, err := loop.Analyze(g, loop.WithLogger(logger))
//	if err != nil {
//		// ErrNoStart, ErrMultipleStarts, ErrAmbiguousStartShape, ctx errors
//	}
//	fmt.Println(rep.Farthest, rep.Enclosed)
//
// Errors
//
//   - ErrGridNil             if the grid pointer is nil.
//   - ErrStartOutOfBounds    if Trace starts outside the grid.
//   - ErrNoStart             if the grid has no start marker.
//   - ErrMultipleStarts      if the grid has more than one.
//   - ErrAmbiguousStartShape if the start does not validate exactly two steps.
//   - ErrOpenLoop            if Walk cannot close the loop.
//   - Wrapped OnVisit errors and context errors.
package loop
