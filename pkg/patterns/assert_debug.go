//go:build cadebug

package patterns

import (
	"fmt"

	"github.com/gottacatchenall/WorkshopGOL/pkg/core"
)

func assertFits[S core.State](g *core.Grid[S], p Pattern, origin core.Point) {
	if !Fits(g, p, origin) {
		panic(fmt.Sprintf("patterns: stamp %s (%dx%d) at (%d,%d) overflows %dx%d grid",
			p.name, p.w, p.h, origin.X, origin.Y, g.Width(), g.Height()))
	}
}
