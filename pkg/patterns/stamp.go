package patterns

import (
	"fmt"

	"github.com/gottacatchenall/WorkshopGOL/pkg/core"
)

// Fits reports whether p stamped at origin lies entirely inside g.
func Fits[S core.State](g *core.Grid[S], p Pattern, origin core.Point) bool {
	return g.Contains(origin.X, origin.Y) && g.Contains(origin.X+p.w-1, origin.Y+p.h-1)
}

// Stamp writes p into g with its top-left corner at origin, overwriting the
// region [origin, origin+size-1] with alive and dead.
//
// Stamp performs no bounds checking. The region must lie inside g; see Fits.
func Stamp[S core.State](g *core.Grid[S], p Pattern, origin core.Point, alive, dead S) {
	assertFits(g, p, origin)
	cells := g.Cells()
	for y, row := range p.shape {
		for x, on := range row {
			s := dead
			if on {
				s = alive
			}
			cells[g.Index(origin.X+x, origin.Y+y)] = s
		}
	}
}

// Place is the checked form of Stamp. It leaves g untouched and returns
// core.ErrDimensionMismatch when the region does not fit.
func Place[S core.State](g *core.Grid[S], p Pattern, origin core.Point, alive, dead S) error {
	if !Fits(g, p, origin) {
		return fmt.Errorf("place %s (%dx%d) at (%d,%d) on %dx%d grid: %w",
			p.name, p.w, p.h, origin.X, origin.Y, g.Width(), g.Height(), core.ErrDimensionMismatch)
	}
	Stamp(g, p, origin, alive, dead)
	return nil
}

// Centered returns the origin that centres p inside a w x h grid.
func Centered(p Pattern, w, h int) core.Point {
	return core.Point{X: (w - p.w) / 2, Y: (h - p.h) / 2}
}
