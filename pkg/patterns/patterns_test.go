package patterns_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gottacatchenall/WorkshopGOL/pkg/core"
	"github.com/gottacatchenall/WorkshopGOL/pkg/patterns"
)

type cell uint8

const (
	dead cell = iota
	alive
)

func TestCanonicalShapes(t *testing.T) {
	glider, ok := patterns.Get(patterns.Glider)
	require.True(t, ok)
	assert.Equal(t, [][]bool{
		{false, false, true},
		{true, false, true},
		{false, true, true},
	}, glider.Shape())

	blinker, ok := patterns.Get(patterns.Blinker)
	require.True(t, ok)
	assert.Equal(t, [][]bool{
		{false, true, false},
		{false, true, false},
		{false, true, false},
	}, blinker.Shape())

	pulsar, ok := patterns.Get(patterns.Pulsar)
	require.True(t, ok)
	w, h := pulsar.Size()
	assert.Equal(t, 15, w)
	assert.Equal(t, 15, h)
	assert.Equal(t, 48, pulsar.Alive())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			assert.Equal(t, pulsar.At(x, y), pulsar.At(w-1-x, y), "mirror x at (%d,%d)", x, y)
			assert.Equal(t, pulsar.At(x, y), pulsar.At(x, h-1-y), "mirror y at (%d,%d)", x, y)
			assert.Equal(t, pulsar.At(x, y), pulsar.At(y, x), "transpose at (%d,%d)", x, y)
		}
	}
}

func TestShapeIsACopy(t *testing.T) {
	glider, _ := patterns.Get(patterns.Glider)
	s := glider.Shape()
	s[0][0] = true
	assert.False(t, glider.At(0, 0))
}

func TestLookup(t *testing.T) {
	p, ok := patterns.Lookup(" Pulsar ")
	require.True(t, ok)
	assert.Equal(t, patterns.Pulsar, p.Kind())
	assert.Equal(t, "pulsar", p.Kind().String())

	_, ok = patterns.Lookup("spaceship-9000")
	assert.False(t, ok)

	assert.Contains(t, patterns.Names(), "glider")
	assert.Contains(t, patterns.Names(), "blinker")
	assert.NotContains(t, patterns.Names(), "custom")
}

func TestFromStrings(t *testing.T) {
	p, err := patterns.FromStrings("tee", []string{"OOO", ".O."})
	require.NoError(t, err)
	assert.Equal(t, patterns.Custom, p.Kind())
	assert.Equal(t, "tee", p.Name())
	assert.Equal(t, 4, p.Alive())

	_, err = patterns.FromStrings("ragged", []string{"OO", "O"})
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
	_, err = patterns.FromStrings("empty", nil)
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
	_, err = patterns.FromStrings("junk", []string{"OxO"})
	assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
}

func TestStampOverwritesRegion(t *testing.T) {
	g, err := core.NewGrid[cell](6, 5)
	require.NoError(t, err)
	g.Fill(alive)

	glider, _ := patterns.Get(patterns.Glider)
	patterns.Stamp(g, glider, core.Point{X: 2, Y: 1}, alive, dead)

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			got, err := g.Get(2+x, 1+y)
			require.NoError(t, err)
			want := dead
			if glider.At(x, y) {
				want = alive
			}
			assert.Equal(t, want, got, "cell (%d,%d)", 2+x, 1+y)
		}
	}
	// Outside the region nothing changed.
	assert.Equal(t, 6*5-9+glider.Alive(), g.Count(alive))
}

func TestPlaceChecksBounds(t *testing.T) {
	g, err := core.NewGrid[cell](5, 5)
	require.NoError(t, err)
	blinker, _ := patterns.Get(patterns.Blinker)

	require.NoError(t, patterns.Place(g, blinker, core.Point{X: 2, Y: 2}, alive, dead))
	assert.Equal(t, 3, g.Count(alive))

	before := g.Copy()
	for _, origin := range []core.Point{{X: 3, Y: 0}, {X: 0, Y: 3}, {X: -1, Y: 0}} {
		err := patterns.Place(g, blinker, origin, alive, dead)
		assert.ErrorIs(t, err, core.ErrDimensionMismatch, "origin %v", origin)
		assert.ErrorIs(t, err, core.ErrInvalidConfiguration)
	}
	assert.True(t, before.Equal(g), "failed placement must not write")

	assert.True(t, patterns.Fits(g, blinker, core.Point{X: 2, Y: 2}))
	assert.False(t, patterns.Fits(g, blinker, core.Point{X: 3, Y: 3}))
}

func TestCentered(t *testing.T) {
	pulsar, _ := patterns.Get(patterns.Pulsar)
	assert.Equal(t, core.Point{X: 2, Y: 7}, patterns.Centered(pulsar, 20, 30))
}
