package app

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gottacatchenall/WorkshopGOL/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRecording() *core.Recording {
	return &core.Recording{
		Name:   "life",
		Size:   core.Size{W: 3, H: 1},
		States: 2,
		Seed:   5,
		Params: core.ParameterSnapshot{Groups: []core.ParameterGroup{{
			Name:   "Grid",
			Params: []core.Parameter{core.IntParam("w", "Width", 3)},
		}}},
		Frames: [][]uint8{{0, 1, 0}, {1, 1, 1}},
	}
}

func TestPlayerWritesEveryFrame(t *testing.T) {
	var buf bytes.Buffer
	p := NewPlayer(&buf, 1000, false)
	p.sleep = func(time.Duration) {}

	require.NoError(t, p.Play(context.Background(), testRecording()))

	out := buf.String()
	assert.Contains(t, out, "life t=0/1 [2 1]\n.#.\n")
	assert.Contains(t, out, "life t=1/1 [0 3]\n###\n")
	assert.NotContains(t, out, clearScreen)
}

func TestPlayerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var buf bytes.Buffer
	err := NewPlayer(&buf, 10, true).Play(ctx, testRecording())
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, testRecording()))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "life 3x1, 2 frames, seed 5", lines[0])
	assert.Equal(t, "[Grid]", lines[1])
	assert.Contains(t, lines[2], "Width")
	assert.Equal(t, "states t=0 [2 1], t=1 [0 3]", lines[3])
}
