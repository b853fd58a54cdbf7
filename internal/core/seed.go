package core

import (
	"fmt"
	"strconv"
	"strings"

	ca "github.com/gottacatchenall/WorkshopGOL/pkg/core"
	"github.com/gottacatchenall/WorkshopGOL/pkg/patterns"
)

// GridConfig holds the knobs shared by every scenario for building the
// initial grid.
type GridConfig struct {
	Width   int
	Height  int
	Density float64
	Pattern string
	Shape   []string
	X, Y    int
	Workers int
}

// DefaultGridConfig returns the standard configuration.
func DefaultGridConfig() GridConfig {
	return GridConfig{Width: 64, Height: 64, Density: 0.3, X: -1, Y: -1, Workers: 1}
}

// GridFromMap populates a GridConfig from a string map (flag-style key/value
// pairs). Unparsable values keep their defaults. A pattern or shape switches
// density to zero unless density is given explicitly.
func GridFromMap(c GridConfig, cfg map[string]string) GridConfig {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok && v != "" {
		c.Pattern = v
		c.Density = 0
	}
	if v, ok := cfg["shape"]; ok && v != "" {
		c.Shape = strings.Split(v, "/")
		c.Density = 0
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Density = parsed
		}
	}
	if v, ok := cfg["x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.X = parsed
		}
	}
	if v, ok := cfg["y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Y = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	return c
}

// ResolvePattern resolves the configured shape or named pattern. ok is false when
// neither is set.
func (c GridConfig) ResolvePattern() (p patterns.Pattern, ok bool, err error) {
	if len(c.Shape) > 0 {
		p, err := patterns.FromStrings("shape", c.Shape)
		return p, err == nil, err
	}
	if c.Pattern == "" {
		return patterns.Pattern{}, false, nil
	}
	p, ok = patterns.Lookup(c.Pattern)
	if !ok {
		return patterns.Pattern{}, false, fmt.Errorf("unknown pattern %q (have %v): %w", c.Pattern, patterns.Names(), ca.ErrInvalidConfiguration)
	}
	return p, true, nil
}

// Params describes the grid configuration.
func (c GridConfig) Params() ParameterGroup {
	pattern := c.Pattern
	if len(c.Shape) > 0 {
		pattern = strings.Join(c.Shape, "/")
	}
	return ParameterGroup{
		Name: "World",
		Params: []Parameter{
			IntParam("w", "Width", c.Width),
			IntParam("h", "Height", c.Height),
			FloatParam("density", "Density", c.Density),
			StringParam("pattern", "Pattern", pattern),
			IntParam("workers", "Workers", c.Workers),
		},
	}
}

// BuildGrid creates the initial grid: cells are alive with probability
// Density, then the pattern (if any) is placed at (X, Y), or centred when
// either coordinate is negative.
func BuildGrid[S ca.State](c GridConfig, alive S, src ca.Source) (*ca.Grid[S], error) {
	g, err := ca.NewRandomGrid(c.Width, c.Height, c.Density, alive, src)
	if err != nil {
		return nil, err
	}
	p, ok, err := c.ResolvePattern()
	if err != nil {
		return nil, err
	}
	if !ok {
		return g, nil
	}
	origin := ca.Point{X: c.X, Y: c.Y}
	if c.X < 0 || c.Y < 0 {
		origin = patterns.Centered(p, c.Width, c.Height)
	}
	var dead S
	if err := patterns.Place(g, p, origin, alive, dead); err != nil {
		return nil, err
	}
	return g, nil
}
