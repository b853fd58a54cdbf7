//go:build ebiten

package app

import (
	"image/color"

	"github.com/gottacatchenall/WorkshopGOL/internal/core"
	"github.com/gottacatchenall/WorkshopGOL/internal/render"
	"github.com/gottacatchenall/WorkshopGOL/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 240

// Game adapts a recorded run to the ebiten.Game interface.
type Game struct {
	rec     *core.Recording
	painter *render.GridPainter
	hud     *ui.HUD
	palette []color.RGBA

	scale    int
	frame    int
	paused   bool
	tickOnce bool
}

// New constructs a Game that plays rec back.
func New(rec *core.Recording, scale int) *Game {
	return &Game{
		rec:     rec,
		painter: render.NewGridPainter(rec.Size.W, rec.Size.H),
		hud:     ui.NewHUD(rec, hudWidth),
		palette: render.PaletteFor(rec.Name, rec.States),
		scale:   scale,
	}
}

// Reset rewinds playback to the first frame.
func (g *Game) Reset() {
	g.frame = 0
	g.tickOnce = false
}

// Update handles per-frame logic and advances playback.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) && g.frame > 0 {
		g.frame--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.tickOnce = true
	}

	if (!g.paused || g.tickOnce) && g.frame < g.rec.Len()-1 {
		g.frame++
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.rec.Cells(g.frame), g.palette, g.scale)
	g.hud.Draw(screen, g.rec.Size.W*g.scale, g.scale, g.frame, g.paused)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.rec.Size.W*g.scale + g.hud.Width(), g.rec.Size.H * g.scale
}
