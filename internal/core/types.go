package core

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScenario is returned by New for unregistered names.
var ErrUnknownScenario = errors.New("core: unknown scenario")

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Scenario pairs a rule with a way of seeding its initial grid.
type Scenario interface {
	Name() string
	Size() Size
	Parameters() ParameterSnapshot
	Run(ctx context.Context, steps int, seed int64) (*Recording, error)
}

// Factory constructs a Scenario from flag-style key/value pairs.
type Factory func(cfg map[string]string) (Scenario, error)

var scenarios = map[string]Factory{}

// Register adds a scenario factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	scenarios[name] = f
}

// Names lists the registered scenarios in sorted order.
func Names() []string {
	names := make([]string, 0, len(scenarios))
	for name := range scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New builds the named scenario.
func New(name string, cfg map[string]string) (Scenario, error) {
	f, ok := scenarios[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownScenario, name, Names())
	}
	return f(cfg)
}
