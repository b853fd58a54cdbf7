//go:build !cadebug

package patterns

import "github.com/gottacatchenall/WorkshopGOL/pkg/core"

func assertFits[S core.State](*core.Grid[S], Pattern, core.Point) {}
