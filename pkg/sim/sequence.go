package sim

import (
	"fmt"
	"iter"

	"github.com/gottacatchenall/WorkshopGOL/pkg/core"
)

// Sequence is the ordered, read-only output of Simulate.
type Sequence[S core.State] struct {
	frames []*core.Grid[S]
}

// Len returns the number of snapshots.
func (q *Sequence[S]) Len() int { return len(q.frames) }

// At returns snapshot t.
func (q *Sequence[S]) At(t int) (Frame[S], error) {
	if t < 0 || t >= len(q.frames) {
		return Frame[S]{}, fmt.Errorf("snapshot %d of %d: %w", t, len(q.frames), core.ErrOutOfBounds)
	}
	return Frame[S]{g: q.frames[t]}, nil
}

// Last returns the final snapshot.
func (q *Sequence[S]) Last() Frame[S] {
	return Frame[S]{g: q.frames[len(q.frames)-1]}
}

// All iterates over the snapshots in timestep order.
func (q *Sequence[S]) All() iter.Seq2[int, Frame[S]] {
	return func(yield func(int, Frame[S]) bool) {
		for t, g := range q.frames {
			if !yield(t, Frame[S]{g: g}) {
				return
			}
		}
	}
}

// Frame is a read-only view of one snapshot.
type Frame[S core.State] struct {
	g *core.Grid[S]
}

// Width returns the number of columns.
func (f Frame[S]) Width() int { return f.g.Width() }

// Height returns the number of rows.
func (f Frame[S]) Height() int { return f.g.Height() }

// Get returns the state at (x, y).
func (f Frame[S]) Get(x, y int) (S, error) { return f.g.Get(x, y) }

// Contains reports whether (x, y) lies inside the snapshot.
func (f Frame[S]) Contains(x, y int) bool { return f.g.Contains(x, y) }

// Count returns the number of cells in state s.
func (f Frame[S]) Count(s S) int { return f.g.Count(s) }

// Cells returns a copy of the snapshot's row-major cells.
func (f Frame[S]) Cells() []S {
	return append([]S(nil), f.g.Cells()...)
}

// Grid returns a mutable deep copy of the snapshot.
func (f Frame[S]) Grid() *core.Grid[S] { return f.g.Copy() }

// Equal reports whether the snapshot matches g.
func (f Frame[S]) Equal(g *core.Grid[S]) bool { return f.g.Equal(g) }
