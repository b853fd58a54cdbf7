// Package sim drives a cellular automaton through discrete timesteps and
// records every generation as an immutable snapshot.
//
// Each transition reads only the previous snapshot and writes a fresh
// buffer, so all cells update simultaneously. Rows of one timestep are
// independent and may be evaluated by several workers.
package sim

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/gottacatchenall/WorkshopGOL/pkg/core"
)

// Simulator applies a rule to whole grids.
type Simulator[S core.State] struct {
	rule core.Rule[S]
	src  core.Source
	opts options
}

// New binds a rule to a random source. Deterministic rules still need a
// source so that rules can be swapped without changing call sites.
//
// When src is a core.Splitter every (timestep, row) pair draws from its own
// derived stream, which makes results independent of the worker count.
// Other sources are consumed in row-major order by a single worker.
func New[S core.State](rule core.Rule[S], src core.Source, opts ...Option) (*Simulator[S], error) {
	if rule == nil {
		return nil, fmt.Errorf("new simulator: nil rule: %w", core.ErrInvalidConfiguration)
	}
	if src == nil {
		return nil, fmt.Errorf("new simulator: nil source: %w", core.ErrInvalidConfiguration)
	}
	return &Simulator[S]{rule: rule, src: src, opts: gatherOptions(opts)}, nil
}

// Workers returns the number of goroutines used per timestep.
func (s *Simulator[S]) Workers() int {
	if _, ok := s.src.(core.Splitter); !ok {
		return 1
	}
	return s.opts.workers
}

// Simulate returns numSteps snapshots. Snapshot 0 is a copy of initial, which
// is never modified; snapshot t+1 is computed from snapshot t.
func (s *Simulator[S]) Simulate(ctx context.Context, initial *core.Grid[S], numSteps int) (*Sequence[S], error) {
	if numSteps < 1 {
		return nil, fmt.Errorf("simulate %d steps: %w", numSteps, core.ErrDimensionMismatch)
	}
	if initial == nil {
		return nil, fmt.Errorf("simulate: nil initial grid: %w", core.ErrInvalidConfiguration)
	}

	ctx, span := s.opts.tracer.Start(ctx, "sim.Simulate", trace.WithAttributes(
		attribute.Int("grid.width", initial.Width()),
		attribute.Int("grid.height", initial.Height()),
		attribute.Int("sim.steps", numSteps),
		attribute.Int("sim.workers", s.Workers()),
	))
	defer span.End()

	frames := make([]*core.Grid[S], 1, numSteps)
	frames[0] = initial.Copy()
	for t := 1; t < numSteps; t++ {
		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "cancelled")
			return nil, fmt.Errorf("simulate step %d: %w", t, err)
		}
		next := frames[t-1].SimilarEmpty()
		if err := s.step(ctx, frames[t-1], next, t); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "step failed")
			return nil, fmt.Errorf("simulate step %d: %w", t, err)
		}
		frames = append(frames, next)
	}
	span.AddEvent("done", trace.WithAttributes(attribute.Int("sim.frames", len(frames))))
	return &Sequence[S]{frames: frames}, nil
}

// step computes next from cur. t is the index of the snapshot being produced.
func (s *Simulator[S]) step(ctx context.Context, cur, next *core.Grid[S], t int) error {
	splitter, _ := s.src.(core.Splitter)
	h := cur.Height()
	workers := min(s.Workers(), h)
	if workers <= 1 {
		s.evalRows(cur, next, 0, h, t, splitter)
		return nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	rowsPerWorker := (h + workers - 1) / workers
	for i := range workers {
		startRow := i * rowsPerWorker
		endRow := min(startRow+rowsPerWorker, h)
		if startRow >= h {
			break
		}
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s.evalRows(cur, next, startRow, endRow, t, splitter)
			return nil
		})
	}
	return eg.Wait()
}

func (s *Simulator[S]) evalRows(cur, next *core.Grid[S], y0, y1, t int, splitter core.Splitter) {
	w := cur.Width()
	in, out := cur.Cells(), next.Cells()
	for y := y0; y < y1; y++ {
		src := s.src
		if splitter != nil {
			src = splitter.Split(streamID(t, y))
		}
		row := y * w
		for x := 0; x < w; x++ {
			out[row+x] = s.rule.Next(in[row+x], core.ObserveUnchecked(cur, x, y), src)
		}
	}
}

func streamID(t, y int) uint64 {
	return uint64(t)<<32 | uint64(uint32(y))
}
