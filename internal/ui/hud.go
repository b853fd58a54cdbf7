//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/gottacatchenall/WorkshopGOL/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 10
	lineHeight   = 16
)

// HUD renders the playback panel to the right of the simulation view.
type HUD struct {
	rec        *core.Recording
	width      int
	panel      *ebiten.Image
	lastHeight int
	title      string
}

// NewHUD constructs a HUD for the provided recording and panel width.
func NewHUD(rec *core.Recording, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{rec: rec, width: width, title: buildTitle(rec)}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Draw paints the HUD panel anchored at offsetX for frame t.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, scale, t int, paused bool) {
	if h == nil || h.width <= 0 || h.rec == nil {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.rec.Size.H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawLines(h.lines(t, paused))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) lines(t int, paused bool) []string {
	state := "playing"
	if paused {
		state = "paused"
	}
	lines := []string{
		h.title,
		fmt.Sprintf("frame %d/%d (%s)", t, h.rec.Len()-1, state),
		fmt.Sprintf("seed %d", h.rec.Seed),
		"",
	}
	for s, n := range h.rec.Histogram(t) {
		lines = append(lines, fmt.Sprintf("state %d: %d", s, n))
	}
	for _, g := range h.rec.Params.Groups {
		lines = append(lines, "", g.Name)
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf("  %s: %s", p.Label, p.Value))
		}
	}
	return lines
}

func (h *HUD) drawLines(lines []string) {
	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	for i, line := range lines {
		fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i == 0 {
			fg = color.RGBA{R: 200, G: 200, B: 210, A: 255}
		}
		text.Draw(h.panel, line, face, panelPadding, y, fg)
		y += lineHeight
	}
}

func buildTitle(rec *core.Recording) string {
	if rec == nil || rec.Name == "" {
		return "Playback"
	}
	return fmt.Sprintf("%s (%dx%d)", rec.Name, rec.Size.W, rec.Size.H)
}
