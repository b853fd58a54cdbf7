package core

// Offsets lists the radius-1 Moore neighbourhood in row-major order,
// excluding the centre cell.
var Offsets = [8]Point{
	{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
	{X: -1, Y: 0}, {X: 1, Y: 0},
	{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
}

// Observation holds the states of the in-bounds neighbours of one cell, in
// the order of Offsets. Edge cells observe 5 neighbours and corner cells 3;
// there is no wraparound.
type Observation[S State] struct {
	states [8]S
	n      int
}

// Len returns the number of in-bounds neighbours.
func (o Observation[S]) Len() int { return o.n }

// At returns the i-th observed neighbour state.
func (o Observation[S]) At(i int) S { return o.states[:o.n][i] }

// States returns a copy of the observed neighbour states.
func (o Observation[S]) States() []S {
	return append([]S(nil), o.states[:o.n]...)
}

// Count returns how many observed neighbours are in state s.
func (o Observation[S]) Count(s S) int {
	n := 0
	for _, v := range o.states[:o.n] {
		if v == s {
			n++
		}
	}
	return n
}

// Any reports whether at least one observed neighbour is in state s.
func (o Observation[S]) Any(s S) bool {
	for _, v := range o.states[:o.n] {
		if v == s {
			return true
		}
	}
	return false
}

// Neighbors returns the absolute coordinates of the in-bounds neighbours of
// (x, y).
func Neighbors[S State](g *Grid[S], x, y int) ([]Point, error) {
	if !g.Contains(x, y) {
		return nil, g.outOfBounds("neighbors", x, y)
	}
	pts := make([]Point, 0, len(Offsets))
	for _, d := range Offsets {
		nx, ny := x+d.X, y+d.Y
		if g.Contains(nx, ny) {
			pts = append(pts, Point{X: nx, Y: ny})
		}
	}
	return pts, nil
}

// Observe collects the neighbour states of (x, y).
func Observe[S State](g *Grid[S], x, y int) (Observation[S], error) {
	if !g.Contains(x, y) {
		return Observation[S]{}, g.outOfBounds("observe", x, y)
	}
	return observe(g, x, y), nil
}

// ObserveUnchecked is Observe without the centre bounds check. Callers must
// guarantee g.Contains(x, y).
func ObserveUnchecked[S State](g *Grid[S], x, y int) Observation[S] {
	return observe(g, x, y)
}

// Count returns the number of neighbours of (x, y) in state s. Passing the
// alphabet's alive state gives the classic live-neighbour count.
func Count[S State](g *Grid[S], x, y int, s S) (int, error) {
	obs, err := Observe(g, x, y)
	if err != nil {
		return 0, err
	}
	return obs.Count(s), nil
}

func observe[S State](g *Grid[S], x, y int) Observation[S] {
	var o Observation[S]
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= g.h {
			continue
		}
		row := ny * g.w
		for dx := -1; dx <= 1; dx++ {
			nx := x + dx
			if nx < 0 || nx >= g.w {
				continue
			}
			if dx == 0 && dy == 0 {
				continue
			}
			o.states[o.n] = g.data[row+nx]
			o.n++
		}
	}
	return o
}
