package briansbrain

import (
	"context"

	simcore "github.com/gottacatchenall/WorkshopGOL/internal/core"
	"github.com/gottacatchenall/WorkshopGOL/pkg/core"
	"github.com/gottacatchenall/WorkshopGOL/pkg/sim"
)

// Cell is the Brian's Brain alphabet.
type Cell uint8

const (
	Off Cell = iota
	On
	Dying
)

// States is the size of the alphabet.
const States = 3

// Rule implements Brian's Brain: firing cells start dying, dying cells switch
// off, and an off cell fires when exactly two neighbours are firing.
type Rule struct{}

// Next returns the state of a cell in the following tick.
func (Rule) Next(cur Cell, obs core.Observation[Cell], _ core.Source) Cell {
	switch cur {
	case On:
		return Dying
	case Dying:
		return Off
	default:
		if obs.Count(On) == 2 {
			return On
		}
		return Off
	}
}

// Brain is the registered scenario for the rule.
type Brain struct {
	cfg simcore.GridConfig
}

// New creates a Brain scenario with the provided configuration.
func New(cfg simcore.GridConfig) *Brain {
	return &Brain{cfg: cfg}
}

// DefaultConfig returns the standard configuration: a sparse random field.
func DefaultConfig() simcore.GridConfig {
	c := simcore.DefaultGridConfig()
	c.Width = 256
	c.Height = 256
	c.Density = 0.125
	return c
}

// Name identifies the scenario.
func (b *Brain) Name() string { return "briansbrain" }

// Size returns the grid dimensions.
func (b *Brain) Size() simcore.Size { return simcore.Size{W: b.cfg.Width, H: b.cfg.Height} }

// Parameters reports the scenario configuration.
func (b *Brain) Parameters() simcore.ParameterSnapshot {
	return simcore.ParameterSnapshot{Groups: []simcore.ParameterGroup{b.cfg.Params()}}
}

// Run seeds firing cells at random and simulates steps ticks.
func (b *Brain) Run(ctx context.Context, steps int, seed int64) (*simcore.Recording, error) {
	rng := core.NewRNG(seed)
	g, err := simcore.BuildGrid(b.cfg, On, rng)
	if err != nil {
		return nil, err
	}
	s, err := sim.New[Cell](Rule{}, rng, sim.WithWorkers(b.cfg.Workers))
	if err != nil {
		return nil, err
	}
	seq, err := s.Simulate(ctx, g, steps)
	if err != nil {
		return nil, err
	}
	return simcore.Record(b.Name(), States, seed, b.Parameters(), seq), nil
}

func init() {
	simcore.Register("briansbrain", func(cfg map[string]string) (simcore.Scenario, error) {
		return New(simcore.GridFromMap(DefaultConfig(), cfg)), nil
	})
}
