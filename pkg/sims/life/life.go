// Package life implements Conway's Game of Life on a bounded grid.
package life

import (
	"context"

	simcore "github.com/gottacatchenall/WorkshopGOL/internal/core"
	"github.com/gottacatchenall/WorkshopGOL/pkg/core"
	"github.com/gottacatchenall/WorkshopGOL/pkg/sim"
)

// Cell is the two-state Life alphabet.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// States is the size of the Life alphabet.
const States = 2

// Rule is the B3/S23 transition. Cells beyond the grid edge do not exist, so
// edge cells see 5 neighbours and corner cells 3.
type Rule struct{}

// Next returns the state of a cell in the following generation.
func (Rule) Next(cur Cell, obs core.Observation[Cell], _ core.Source) Cell {
	neighbors := obs.Count(Alive)
	if (cur == Alive && (neighbors == 2 || neighbors == 3)) || (cur != Alive && neighbors == 3) {
		return Alive
	}
	return Dead
}

// CountAlive returns the number of live in-bounds neighbours of (x, y).
func CountAlive(g *core.Grid[Cell], x, y int) (int, error) {
	return core.Count(g, x, y, Alive)
}

// Life is the registered scenario for the rule.
type Life struct {
	cfg simcore.GridConfig
}

// New returns a Life scenario with the provided configuration.
func New(cfg simcore.GridConfig) *Life {
	return &Life{cfg: cfg}
}

// Name returns the scenario identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() simcore.Size { return simcore.Size{W: l.cfg.Width, H: l.cfg.Height} }

// Parameters reports the scenario configuration.
func (l *Life) Parameters() simcore.ParameterSnapshot {
	return simcore.ParameterSnapshot{Groups: []simcore.ParameterGroup{l.cfg.Params()}}
}

// Run seeds the board and simulates steps generations.
func (l *Life) Run(ctx context.Context, steps int, seed int64) (*simcore.Recording, error) {
	rng := core.NewRNG(seed)
	g, err := simcore.BuildGrid(l.cfg, Alive, rng)
	if err != nil {
		return nil, err
	}
	s, err := sim.New[Cell](Rule{}, rng, sim.WithWorkers(l.cfg.Workers))
	if err != nil {
		return nil, err
	}
	seq, err := s.Simulate(ctx, g, steps)
	if err != nil {
		return nil, err
	}
	return simcore.Record(l.Name(), States, seed, l.Parameters(), seq), nil
}

// FromMap populates the scenario configuration from a string map.
func FromMap(cfg map[string]string) simcore.GridConfig {
	return simcore.GridFromMap(simcore.DefaultGridConfig(), cfg)
}

func init() {
	simcore.Register("life", func(cfg map[string]string) (simcore.Scenario, error) {
		return New(FromMap(cfg)), nil
	})
}
