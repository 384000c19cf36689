package loop

import (
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pipeloop/grid"
)

// Analyze locates the start cell of g and computes both loop measures:
// the farthest distance along the loop and the enclosed cell count.
//
// The two measures run concurrently against the shared, read-only grid.
// Each builds its own DistanceMap, so nothing is shared between them but g.
// The first failure cancels the other; WithContext bounds both.
func Analyze(g *Grid, opts ...Option) (Report, error) {
	start, err := FindStart(g)
	if err != nil {
		return Report{}, err
	}
	o := buildOptions(opts)
	eg, ctx := errgroup.WithContext(o.Ctx)
	traceOpts := append(append([]Option{}, opts...), WithContext(ctx))

	rep := Report{Start: start}
	eg.Go(func() error {
		lp, err := Trace(g, start, traceOpts...)
		if err != nil {
			return err
		}
		rep.Farthest = lp.Max()
		rep.LoopLength = lp.Len()
		return nil
	})
	eg.Go(func() error {
		lp, err := Trace(g, start, traceOpts...)
		if err != nil {
			return err
		}
		shape, err := InferStartShape(g, start)
		if err != nil {
			return err
		}
		n, err := CountEnclosed(g, lp)
		if err != nil {
			return err
		}
		rep.StartShape = shape
		rep.Enclosed = n
		return nil
	})
	if err := eg.Wait(); err != nil {
		o.Logger.Debug("loop analysis failed", zap.Error(err))
		return Report{}, err
	}
	o.Logger.Info("loop analysed",
		zap.Stringer("start", start),
		zap.Stringer("shape", rep.StartShape),
		zap.Int("length", rep.LoopLength),
		zap.Int("farthest", rep.Farthest),
		zap.Int("enclosed", rep.Enclosed))

	return rep, nil
}

// Farthest returns the largest step count from start along the loop.
func Farthest(g *Grid, start grid.Coord, opts ...Option) (int, error) {
	lp, err := Trace(g, start, opts...)
	if err != nil {
		return 0, err
	}
	return lp.Max(), nil
}

// Enclosed returns how many cells the loop through start encloses.
func Enclosed(g *Grid, start grid.Coord, opts ...Option) (int, error) {
	lp, err := Trace(g, start, opts...)
	if err != nil {
		return 0, err
	}
	return CountEnclosed(g, lp)
}
