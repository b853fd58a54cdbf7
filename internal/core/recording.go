package core

import (
	ca "github.com/gottacatchenall/WorkshopGOL/pkg/core"
	"github.com/gottacatchenall/WorkshopGOL/pkg/sim"
)

// Recording is a scenario run flattened to byte frames, the form consumed by
// renderers and storage.
type Recording struct {
	Name   string
	Size   Size
	States int
	Seed   int64
	Params ParameterSnapshot
	Frames [][]uint8
}

// Record copies every snapshot of seq into a Recording. states is the size
// of the cell alphabet.
func Record[S ca.State](name string, states int, seed int64, params ParameterSnapshot, seq *sim.Sequence[S]) *Recording {
	last := seq.Last()
	rec := &Recording{
		Name:   name,
		Size:   Size{W: last.Width(), H: last.Height()},
		States: states,
		Seed:   seed,
		Params: params,
		Frames: make([][]uint8, 0, seq.Len()),
	}
	for _, f := range seq.All() {
		cells := f.Cells()
		buf := make([]uint8, len(cells))
		for i, c := range cells {
			buf[i] = uint8(c)
		}
		rec.Frames = append(rec.Frames, buf)
	}
	return rec
}

// Len returns the number of frames.
func (r *Recording) Len() int { return len(r.Frames) }

// Cells returns frame t.
func (r *Recording) Cells(t int) []uint8 { return r.Frames[t] }

// Count returns how many cells of frame t hold state.
func (r *Recording) Count(t int, state uint8) int {
	n := 0
	for _, c := range r.Frames[t] {
		if c == state {
			n++
		}
	}
	return n
}

// Histogram returns, for frame t, the number of cells in each state.
func (r *Recording) Histogram(t int) []int {
	hist := make([]int, max(r.States, 1))
	for _, c := range r.Frames[t] {
		if int(c) >= len(hist) {
			continue
		}
		hist[c]++
	}
	return hist
}
