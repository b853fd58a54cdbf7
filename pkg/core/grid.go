package core

import (
	"fmt"
	"math"
)

// State is the constraint satisfied by every cell alphabet. The zero value of
// an alphabet is its dead state.
type State interface {
	~uint8
}

// Point addresses a single cell.
type Point struct {
	X, Y int
}

// Grid stores a dense 2D grid of cell states in row-major order. Width and
// height are fixed at construction.
type Grid[S State] struct {
	w, h int
	data []S
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid[S State](w, h int) (*Grid[S], error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("new grid %dx%d: %w", w, h, ErrInvalidConfiguration)
	}
	return &Grid[S]{w: w, h: h, data: make([]S, w*h)}, nil
}

// NewRandomGrid allocates a grid where every cell is independently set to
// alive with probability p. Cells are sampled in row-major order.
func NewRandomGrid[S State](w, h int, p float64, alive S, src Source) (*Grid[S], error) {
	if err := CheckProbability("alive probability", p); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("new random grid: nil source: %w", ErrInvalidConfiguration)
	}
	g, err := NewGrid[S](w, h)
	if err != nil {
		return nil, err
	}
	for i := range g.data {
		if src.Bernoulli(p) {
			g.data[i] = alive
		}
	}
	return g, nil
}

// FromRows builds a grid from row-major literal data. rows[y][x] becomes the
// cell at (x, y).
func FromRows[S State](rows [][]S) (*Grid[S], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("grid from rows: empty input: %w", ErrInvalidConfiguration)
	}
	g, err := NewGrid[S](len(rows[0]), len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != g.w {
			return nil, fmt.Errorf("grid from rows: row %d has %d cells, want %d: %w", y, len(row), g.w, ErrInvalidConfiguration)
		}
		copy(g.data[y*g.w:], row)
	}
	return g, nil
}

// CheckProbability reports ErrInvalidConfiguration when p is NaN or outside [0,1].
func CheckProbability(name string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%s %v not in [0,1]: %w", name, p, ErrInvalidConfiguration)
	}
	return nil
}

// Width returns the number of columns.
func (g *Grid[S]) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid[S]) Height() int { return g.h }

// Contains reports whether (x, y) lies inside the grid.
func (g *Grid[S]) Contains(x, y int) bool {
	return x >= 0 && x < g.w && y >= 0 && y < g.h
}

// Get returns the state at (x, y).
func (g *Grid[S]) Get(x, y int) (S, error) {
	if !g.Contains(x, y) {
		var zero S
		return zero, g.outOfBounds("get", x, y)
	}
	return g.data[y*g.w+x], nil
}

// Set overwrites the state at (x, y).
func (g *Grid[S]) Set(x, y int, s S) error {
	if !g.Contains(x, y) {
		return g.outOfBounds("set", x, y)
	}
	g.data[y*g.w+x] = s
	return nil
}

// Index returns the linear slice index for coordinates (x, y). It performs no
// bounds checking.
func (g *Grid[S]) Index(x, y int) int { return y*g.w + x }

// Cells exposes the backing row-major slice. Writes through it bypass the
// bounds checks of Set.
func (g *Grid[S]) Cells() []S { return g.data }

// SimilarEmpty returns a new all-dead grid with the same dimensions.
func (g *Grid[S]) SimilarEmpty() *Grid[S] {
	return &Grid[S]{w: g.w, h: g.h, data: make([]S, len(g.data))}
}

// Copy returns a deep copy of the grid.
func (g *Grid[S]) Copy() *Grid[S] {
	c := g.SimilarEmpty()
	copy(c.data, g.data)
	return c
}

// Fill sets every cell to s.
func (g *Grid[S]) Fill(s S) {
	for i := range g.data {
		g.data[i] = s
	}
}

// Count returns the number of cells in state s.
func (g *Grid[S]) Count(s S) int {
	n := 0
	for _, c := range g.data {
		if c == s {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same dimensions and contents.
func (g *Grid[S]) Equal(o *Grid[S]) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

func (g *Grid[S]) outOfBounds(op string, x, y int) error {
	return fmt.Errorf("%s (%d,%d) on %dx%d grid: %w", op, x, y, g.w, g.h, ErrOutOfBounds)
}
