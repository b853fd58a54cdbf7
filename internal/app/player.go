package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gottacatchenall/WorkshopGOL/internal/core"
	"github.com/gottacatchenall/WorkshopGOL/internal/render"
)

const clearScreen = "\x1b[H\x1b[2J"

// Player writes a recording to a terminal one frame per tick.
type Player struct {
	out    io.Writer
	timer  *core.FixedStep
	glyphs string
	clear  bool
	sleep  func(time.Duration)
}

// NewPlayer returns a Player targeting tps frames per second. When clear is
// set every frame starts by clearing the screen.
func NewPlayer(out io.Writer, tps int, clear bool) *Player {
	return &Player{
		out:    out,
		timer:  core.NewFixedStep(tps),
		glyphs: render.DefaultGlyphs,
		clear:  clear,
		sleep:  time.Sleep,
	}
}

// Play writes every frame of rec, pacing output with the player's timer.
func (p *Player) Play(ctx context.Context, rec *core.Recording) error {
	for t := 0; t < rec.Len(); {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !p.timer.ShouldStep() {
			p.sleep(p.timer.Step() / 4)
			continue
		}
		if p.clear {
			if _, err := io.WriteString(p.out, clearScreen); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(p.out, "%s t=%d/%d %v\n", rec.Name, t, rec.Len()-1, rec.Histogram(t)); err != nil {
			return err
		}
		if err := render.WriteASCII(p.out, rec.Cells(t), rec.Size.W, p.glyphs); err != nil {
			return err
		}
		t++
	}
	return nil
}

// WriteSummary prints the parameters of rec and the state histogram of its
// first and last frames.
func WriteSummary(out io.Writer, rec *core.Recording) error {
	if _, err := fmt.Fprintf(out, "%s %dx%d, %d frames, seed %d\n", rec.Name, rec.Size.W, rec.Size.H, rec.Len(), rec.Seed); err != nil {
		return err
	}
	for _, g := range rec.Params.Groups {
		if _, err := fmt.Fprintf(out, "[%s]\n", g.Name); err != nil {
			return err
		}
		for _, p := range g.Params {
			if _, err := fmt.Fprintf(out, "  %-24s %s\n", p.Label, p.Value); err != nil {
				return err
			}
		}
	}
	last := rec.Len() - 1
	_, err := fmt.Fprintf(out, "states t=0 %v, t=%d %v\n", rec.Histogram(0), last, rec.Histogram(last))
	return err
}
