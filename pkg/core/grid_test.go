package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gottacatchenall/WorkshopGOL/pkg/core"
)

type cell uint8

const (
	dead cell = iota
	alive
)

func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		w, h int
	}{
		{"ZeroWidth", 0, 3},
		{"ZeroHeight", 3, 0},
		{"Negative", -1, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.NewGrid[cell](tc.w, tc.h)
			require.ErrorIs(t, err, core.ErrInvalidConfiguration)
		})
	}
}

func TestNewGridStartsDead(t *testing.T) {
	g, err := core.NewGrid[cell](4, 3)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 12, g.Count(dead))
}

func TestGetSetOnePastTheEnd(t *testing.T) {
	sizes := [][2]int{{1, 1}, {1, 5}, {5, 1}, {7, 3}}
	for _, sz := range sizes {
		g, err := core.NewGrid[cell](sz[0], sz[1])
		require.NoError(t, err)

		_, err = g.Get(sz[0], 0)
		assert.ErrorIs(t, err, core.ErrOutOfBounds, "get x=width on %dx%d", sz[0], sz[1])
		_, err = g.Get(0, sz[1])
		assert.ErrorIs(t, err, core.ErrOutOfBounds, "get y=height on %dx%d", sz[0], sz[1])
		assert.ErrorIs(t, g.Set(sz[0], 0, alive), core.ErrOutOfBounds)
		assert.ErrorIs(t, g.Set(0, sz[1], alive), core.ErrOutOfBounds)
		assert.ErrorIs(t, g.Set(-1, 0, alive), core.ErrOutOfBounds)
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	g, err := core.NewGrid[cell](3, 2)
	require.NoError(t, err)
	require.NoError(t, g.Set(2, 1, alive))

	got, err := g.Get(2, 1)
	require.NoError(t, err)
	assert.Equal(t, alive, got)
	assert.Equal(t, alive, g.Cells()[g.Index(2, 1)])
	assert.Equal(t, 1, g.Count(alive))
}

func TestContains(t *testing.T) {
	g, err := core.NewGrid[cell](3, 2)
	require.NoError(t, err)
	for _, p := range []core.Point{{0, 0}, {2, 1}, {1, 1}} {
		assert.True(t, g.Contains(p.X, p.Y), "%v", p)
	}
	for _, p := range []core.Point{{-1, 0}, {3, 0}, {1, 2}, {2, -1}} {
		assert.False(t, g.Contains(p.X, p.Y), "%v", p)
	}
}

func TestCopyAndSimilarEmptyDoNotAlias(t *testing.T) {
	g, err := core.FromRows([][]cell{
		{alive, dead},
		{dead, alive},
	})
	require.NoError(t, err)

	c := g.Copy()
	require.True(t, g.Equal(c))
	require.NoError(t, c.Set(1, 0, alive))
	assert.False(t, g.Equal(c), "copy must not alias the source")

	e := g.SimilarEmpty()
	assert.Equal(t, g.Width(), e.Width())
	assert.Equal(t, g.Height(), e.Height())
	assert.Equal(t, 4, e.Count(dead))
	e.Fill(alive)
	assert.Equal(t, 2, g.Count(alive))
}

func TestFromRows_Errors(t *testing.T) {
	_, err := core.FromRows([][]cell{})
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
	_, err = core.FromRows([][]cell{{}})
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
	_, err = core.FromRows([][]cell{{alive, dead}, {alive}})
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
}

func TestNewRandomGrid(t *testing.T) {
	_, err := core.NewRandomGrid(4, 4, 1.5, alive, core.NewRNG(1))
	require.ErrorIs(t, err, core.ErrInvalidConfiguration)
	_, err = core.NewRandomGrid(4, 4, -0.1, alive, core.NewRNG(1))
	require.ErrorIs(t, err, core.ErrInvalidConfiguration)

	full, err := core.NewRandomGrid(5, 4, 1, alive, core.NewRNG(1))
	require.NoError(t, err)
	assert.Equal(t, 20, full.Count(alive))

	empty, err := core.NewRandomGrid(5, 4, 0, alive, core.NewRNG(1))
	require.NoError(t, err)
	assert.Equal(t, 20, empty.Count(dead))

	a, err := core.NewRandomGrid(32, 32, 0.5, alive, core.NewRNG(7))
	require.NoError(t, err)
	b, err := core.NewRandomGrid(32, 32, 0.5, alive, core.NewRNG(7))
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "same seed must give the same grid")
	n := a.Count(alive)
	assert.Greater(t, n, 0)
	assert.Less(t, n, 32*32)
}

func TestDimensionMismatchIsInvalidConfiguration(t *testing.T) {
	assert.True(t, errors.Is(core.ErrDimensionMismatch, core.ErrInvalidConfiguration))
	assert.False(t, errors.Is(core.ErrOutOfBounds, core.ErrInvalidConfiguration))
}
