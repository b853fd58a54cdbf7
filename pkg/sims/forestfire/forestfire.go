// Package forestfire implements a three-state stochastic fire-spread
// automaton: trees ignite from burning neighbours or spontaneously, burn for
// exactly one step, and regrow on empty ground.
package forestfire

import (
	"context"
	"fmt"
	"strconv"

	simcore "github.com/gottacatchenall/WorkshopGOL/internal/core"
	"github.com/gottacatchenall/WorkshopGOL/pkg/core"
	"github.com/gottacatchenall/WorkshopGOL/pkg/sim"
)

// Cell is the three-state fire alphabet.
type Cell uint8

const (
	Dead Cell = iota
	Alive
	Burning
)

// States is the size of the fire alphabet.
const States = 3

// Params holds the transition probabilities.
type Params struct {
	ProbCombustion float64 `yaml:"prob_combustion"`
	ProbRegrowth   float64 `yaml:"prob_regrowth"`
}

// Rule is a validated, comparable fire-spread rule.
type Rule struct {
	p Params
}

// New validates p and returns the rule.
func New(p Params) (Rule, error) {
	if err := core.CheckProbability("combustion probability", p.ProbCombustion); err != nil {
		return Rule{}, err
	}
	if err := core.CheckProbability("regrowth probability", p.ProbRegrowth); err != nil {
		return Rule{}, err
	}
	return Rule{p: p}, nil
}

// Params returns the rule's probabilities.
func (r Rule) Params() Params { return r.p }

// Next returns the state of a cell in the following step. A burning
// neighbour ignites a tree before any random roll is taken.
func (r Rule) Next(cur Cell, obs core.Observation[Cell], src core.Source) Cell {
	switch cur {
	case Alive:
		if obs.Any(Burning) {
			return Burning
		}
		if src.Bernoulli(r.p.ProbCombustion) {
			return Burning
		}
		return Alive
	case Burning:
		return Dead
	default:
		if src.Bernoulli(r.p.ProbRegrowth) {
			return Alive
		}
		return Dead
	}
}

// Config holds parameters for the fire scenario.
type Config struct {
	Grid   simcore.GridConfig
	Params Params
	// Ignite is the number of distinct trees set burning in the initial grid.
	// It is capped at the number of trees.
	Ignite int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	grid := simcore.DefaultGridConfig()
	grid.Width = 128
	grid.Height = 128
	grid.Density = 0.6
	return Config{
		Grid:   grid,
		Params: Params{ProbCombustion: 0.0001, ProbRegrowth: 0.01},
		Ignite: 4,
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Grid = simcore.GridFromMap(c.Grid, cfg)
	if cfg == nil {
		return c
	}
	if v, ok := cfg["prob_combustion"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.ProbCombustion = parsed
		}
	}
	if v, ok := cfg["prob_regrowth"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.ProbRegrowth = parsed
		}
	}
	if v, ok := cfg["ignite"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Ignite = parsed
		}
	}
	return c
}

// Fire is the registered scenario for the rule.
type Fire struct {
	cfg  Config
	rule Rule
}

// NewScenario validates cfg and returns the scenario.
func NewScenario(cfg Config) (*Fire, error) {
	rule, err := New(cfg.Params)
	if err != nil {
		return nil, fmt.Errorf("forestfire: %w", err)
	}
	if cfg.Ignite < 0 {
		return nil, fmt.Errorf("forestfire: ignite %d: %w", cfg.Ignite, core.ErrInvalidConfiguration)
	}
	return &Fire{cfg: cfg, rule: rule}, nil
}

// Name returns the scenario identifier.
func (f *Fire) Name() string { return "forestfire" }

// Size returns the grid dimensions.
func (f *Fire) Size() simcore.Size { return simcore.Size{W: f.cfg.Grid.Width, H: f.cfg.Grid.Height} }

// Parameters reports the scenario configuration.
func (f *Fire) Parameters() simcore.ParameterSnapshot {
	return simcore.ParameterSnapshot{Groups: []simcore.ParameterGroup{
		f.cfg.Grid.Params(),
		{
			Name: "Fire",
			Params: []simcore.Parameter{
				simcore.FloatParam("prob_combustion", "Combustion probability", f.cfg.Params.ProbCombustion),
				simcore.FloatParam("prob_regrowth", "Regrowth probability", f.cfg.Params.ProbRegrowth),
				simcore.IntParam("ignite", "Initial fires", f.cfg.Ignite),
			},
		},
	}}
}

// Initial builds the starting forest: trees at the configured density, any
// configured pattern planted as trees, then up to Ignite distinct trees
// chosen uniformly and set burning.
func (f *Fire) Initial(rng *core.RNG) (*core.Grid[Cell], error) {
	g, err := simcore.BuildGrid(f.cfg.Grid, Alive, rng)
	if err != nil {
		return nil, err
	}
	cells := g.Cells()
	trees := make([]int, 0, len(cells))
	for i, c := range cells {
		if c == Alive {
			trees = append(trees, i)
		}
	}
	n := min(f.cfg.Ignite, len(trees))
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(trees)-i)
		trees[i], trees[j] = trees[j], trees[i]
		cells[trees[i]] = Burning
	}
	return g, nil
}

// Run seeds the forest and simulates steps generations.
func (f *Fire) Run(ctx context.Context, steps int, seed int64) (*simcore.Recording, error) {
	rng := core.NewRNG(seed)
	g, err := f.Initial(rng)
	if err != nil {
		return nil, err
	}
	s, err := sim.New[Cell](f.rule, rng, sim.WithWorkers(f.cfg.Grid.Workers))
	if err != nil {
		return nil, err
	}
	seq, err := s.Simulate(ctx, g, steps)
	if err != nil {
		return nil, err
	}
	return simcore.Record(f.Name(), States, seed, f.Parameters(), seq), nil
}

func init() {
	simcore.Register("forestfire", func(cfg map[string]string) (simcore.Scenario, error) {
		return NewScenario(FromMap(cfg))
	})
}
