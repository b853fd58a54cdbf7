// Package sweep runs the forest fire scenario over a grid of probabilities
// and summarises how each run burned.
package sweep

import (
	"context"
	"fmt"
	"sync"

	"github.com/gottacatchenall/WorkshopGOL/internal/core"
	"github.com/gottacatchenall/WorkshopGOL/pkg/sims/forestfire"
)

// Point is one combination of fire probabilities.
type Point struct {
	Combustion float64
	Regrowth   float64
}

func (p Point) String() string {
	return fmt.Sprintf("combustion=%.5f regrowth=%.4f", p.Combustion, p.Regrowth)
}

// Result summarises one run.
type Result struct {
	Point Point
	// PeakBurning is the largest number of burning cells in any frame and
	// PeakStep the first frame reaching it.
	PeakBurning int
	PeakStep    int
	// MeanTrees is the average number of living trees per frame.
	MeanTrees  float64
	FinalTrees int
	// Extinct is the first frame with no burning cells after a fire was
	// seen, or -1.
	Extinct int
}

// Points returns the cartesian product of the given probabilities.
func Points(combustion, regrowth []float64) []Point {
	out := make([]Point, 0, len(combustion)*len(regrowth))
	for _, c := range combustion {
		for _, r := range regrowth {
			out = append(out, Point{Combustion: c, Regrowth: r})
		}
	}
	return out
}

// Analyze computes the Result of a recorded forest fire run.
func Analyze(p Point, rec *core.Recording) Result {
	res := Result{Point: p, Extinct: -1}
	seen := false
	total := 0
	for t := range rec.Len() {
		burning := rec.Count(t, uint8(forestfire.Burning))
		trees := rec.Count(t, uint8(forestfire.Alive))
		total += trees
		if burning > res.PeakBurning {
			res.PeakBurning = burning
			res.PeakStep = t
		}
		if burning > 0 {
			seen = true
		} else if seen && res.Extinct < 0 {
			res.Extinct = t
		}
		res.FinalTrees = trees
	}
	if rec.Len() > 0 {
		res.MeanTrees = float64(total) / float64(rec.Len())
	}
	return res
}

// Run simulates every point with base as the template configuration, using
// up to workers goroutines. Results are returned in the order of points.
func Run(ctx context.Context, base forestfire.Config, points []Point, steps int, seed int64, workers int) ([]Result, error) {
	if workers < 1 {
		workers = 1
	}
	type job struct {
		idx int
		p   Point
	}
	jobs := make(chan job)
	results := make([]Result, len(points))
	errs := make([]error, len(points))

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results[j.idx], errs[j.idx] = runPoint(ctx, base, j.p, steps, seed)
			}
		}()
	}

feed:
	for i, p := range points {
		select {
		case jobs <- job{idx: i, p: p}:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", points[i], err)
		}
	}
	return results, nil
}

func runPoint(ctx context.Context, base forestfire.Config, p Point, steps int, seed int64) (Result, error) {
	cfg := base
	cfg.Params = forestfire.Params{ProbCombustion: p.Combustion, ProbRegrowth: p.Regrowth}
	scenario, err := forestfire.NewScenario(cfg)
	if err != nil {
		return Result{}, err
	}
	rec, err := scenario.Run(ctx, steps, seed)
	if err != nil {
		return Result{}, err
	}
	return Analyze(p, rec), nil
}
