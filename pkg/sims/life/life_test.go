package life

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gottacatchenall/WorkshopGOL/pkg/core"
	"github.com/gottacatchenall/WorkshopGOL/pkg/patterns"
	"github.com/gottacatchenall/WorkshopGOL/pkg/sim"
)

func run(t *testing.T, g *core.Grid[Cell], steps int) *sim.Sequence[Cell] {
	t.Helper()
	s, err := sim.New[Cell](Rule{}, core.NewRNG(1))
	require.NoError(t, err)
	seq, err := s.Simulate(context.Background(), g, steps)
	require.NoError(t, err)
	require.Equal(t, steps, seq.Len())
	return seq
}

func TestBlinkerOscillation(t *testing.T) {
	g, err := core.NewGrid[Cell](5, 5)
	require.NoError(t, err)
	blinker, _ := patterns.Get(patterns.Blinker)
	patterns.Stamp(g, blinker, core.Point{X: 1, Y: 1}, Alive, Dead)

	seq := run(t, g, 3)
	w := g.Width()

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	frame, err := seq.At(1)
	require.NoError(t, err)
	cells := frame.Cells()
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			alive := cells[y*w+x] == Alive
			_, shouldBeAlive := expects[[2]int{x, y}]
			if shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	frame, err = seq.At(2)
	require.NoError(t, err)
	if !frame.Equal(g) {
		t.Fatal("blinker did not return to its original phase after two steps")
	}
}

func TestGliderTranslatesDiagonally(t *testing.T) {
	g, err := core.NewGrid[Cell](12, 12)
	require.NoError(t, err)
	glider, _ := patterns.Get(patterns.Glider)
	patterns.Stamp(g, glider, core.Point{X: 2, Y: 2}, Alive, Dead)

	seq := run(t, g, 9)

	for _, tc := range []struct {
		t      int
		origin core.Point
	}{
		{4, core.Point{X: 3, Y: 3}},
		{8, core.Point{X: 4, Y: 4}},
	} {
		want, err := core.NewGrid[Cell](12, 12)
		require.NoError(t, err)
		patterns.Stamp(want, glider, tc.origin, Alive, Dead)

		frame, err := seq.At(tc.t)
		require.NoError(t, err)
		assert.True(t, frame.Equal(want), "glider at step %d should sit at %v", tc.t, tc.origin)
		assert.Equal(t, 5, frame.Count(Alive))
	}
}

func TestRuleBoundaryCounts(t *testing.T) {
	cases := []struct {
		cur       Cell
		neighbors int
		want      Cell
	}{
		{Alive, 0, Dead},
		{Alive, 1, Dead},
		{Alive, 2, Alive},
		{Alive, 3, Alive},
		{Alive, 4, Dead},
		{Alive, 8, Dead},
		{Dead, 2, Dead},
		{Dead, 3, Alive},
		{Dead, 4, Dead},
	}
	for _, tc := range cases {
		obs := observation(t, tc.neighbors)
		got := Rule{}.Next(tc.cur, obs, nil)
		assert.Equal(t, tc.want, got, "cur=%d neighbors=%d", tc.cur, tc.neighbors)
	}
}

// observation builds a 3x3 grid with n alive neighbours around the centre.
func observation(t *testing.T, n int) core.Observation[Cell] {
	t.Helper()
	g, err := core.NewGrid[Cell](3, 3)
	require.NoError(t, err)
	for i, d := range core.Offsets {
		if i >= n {
			break
		}
		require.NoError(t, g.Set(1+d.X, 1+d.Y, Alive))
	}
	obs, err := core.Observe(g, 1, 1)
	require.NoError(t, err)
	return obs
}

func TestEdgeBlinkerIsClipped(t *testing.T) {
	// A horizontal blinker on the top edge has no row above it, so only the
	// row below gains a cell. With wraparound row 4 would gain one too.
	g, err := core.FromRows([][]Cell{
		{Alive, Alive, Alive, Dead, Dead},
		{Dead, Dead, Dead, Dead, Dead},
		{Dead, Dead, Dead, Dead, Dead},
		{Dead, Dead, Dead, Dead, Dead},
		{Dead, Dead, Dead, Dead, Dead},
	})
	require.NoError(t, err)

	seq := run(t, g, 2)
	frame, err := seq.At(1)
	require.NoError(t, err)
	want, err := core.FromRows([][]Cell{
		{Dead, Alive, Dead, Dead, Dead},
		{Dead, Alive, Dead, Dead, Dead},
		{Dead, Dead, Dead, Dead, Dead},
		{Dead, Dead, Dead, Dead, Dead},
		{Dead, Dead, Dead, Dead, Dead},
	})
	require.NoError(t, err)
	assert.True(t, frame.Equal(want))
}

func TestCountAlive(t *testing.T) {
	g, err := core.NewGrid[Cell](3, 3)
	require.NoError(t, err)
	g.Fill(Alive)

	for _, tc := range []struct{ x, y, want int }{{0, 0, 3}, {1, 0, 5}, {1, 1, 8}, {2, 2, 3}} {
		n, err := CountAlive(g, tc.x, tc.y)
		require.NoError(t, err)
		assert.Equal(t, tc.want, n, "(%d,%d)", tc.x, tc.y)
	}
	_, err = CountAlive(g, 3, 0)
	require.ErrorIs(t, err, core.ErrOutOfBounds)
}

func TestScenarioRun(t *testing.T) {
	l := New(FromMap(map[string]string{"w": "16", "h": "10", "pattern": "blinker", "workers": "3"}))
	rec, err := l.Run(context.Background(), 5, 42)
	require.NoError(t, err)
	assert.Equal(t, 5, rec.Len())
	assert.Equal(t, 16, rec.Size.W)
	assert.Equal(t, 10, rec.Size.H)
	for i := 0; i < rec.Len(); i++ {
		assert.Equal(t, 3, rec.Count(i, uint8(Alive)), "frame %d", i)
	}
	v, ok := rec.Params.Lookup("pattern")
	require.True(t, ok)
	assert.Equal(t, "blinker", v)
}
