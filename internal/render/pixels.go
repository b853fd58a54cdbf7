package render

import (
	"fmt"
	"image/color"
	"io"
)

// BinaryPalette colours two-state alphabets: dead black, alive white.
var BinaryPalette = []color.RGBA{
	{R: 0, G: 0, B: 0, A: 255},
	{R: 255, G: 255, B: 255, A: 255},
}

// FirePalette colours the fire alphabet: bare ground, tree, flame.
var FirePalette = []color.RGBA{
	{R: 70, G: 52, B: 32, A: 255},
	{R: 40, G: 100, B: 55, A: 255},
	{R: 255, G: 130, B: 40, A: 255},
}

// BrainPalette colours Brian's Brain: off, firing, dying.
var BrainPalette = []color.RGBA{
	{R: 0, G: 0, B: 0, A: 255},
	{R: 255, G: 255, B: 255, A: 255},
	{R: 60, G: 90, B: 200, A: 255},
}

// PaletteFor picks a palette by scenario name, falling back to one sized for
// the alphabet.
func PaletteFor(name string, states int) []color.RGBA {
	switch name {
	case "forestfire":
		return FirePalette
	case "briansbrain":
		return BrainPalette
	}
	if states <= len(BinaryPalette) {
		return BinaryPalette
	}
	return Grayscale(states)
}

// Grayscale returns n evenly spaced grey levels from black to white.
func Grayscale(n int) []color.RGBA {
	if n < 2 {
		n = 2
	}
	p := make([]color.RGBA, n)
	for i := range p {
		v := uint8(i * 255 / (n - 1))
		p[i] = color.RGBA{R: v, G: v, B: v, A: 255}
	}
	return p
}

// FillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Values past
// the end of the palette use its last colour.
func FillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		for i := range cells {
			base := i * 4
			buf[base+0] = 0
			buf[base+1] = 0
			buf[base+2] = 0
			buf[base+3] = 0
		}
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

// DefaultGlyphs maps states to characters for terminal output.
const DefaultGlyphs = ".#*+"

// WriteASCII writes one frame as w-wide text rows using glyphs[state].
func WriteASCII(out io.Writer, cells []uint8, w int, glyphs string) error {
	if w <= 0 || len(cells)%w != 0 {
		return fmt.Errorf("render: %d cells do not form rows of %d", len(cells), w)
	}
	if glyphs == "" {
		glyphs = DefaultGlyphs
	}
	last := len(glyphs) - 1
	row := make([]byte, w+1)
	row[w] = '\n'
	for y := 0; y < len(cells)/w; y++ {
		for x := 0; x < w; x++ {
			idx := int(cells[y*w+x])
			if idx > last {
				idx = last
			}
			row[x] = glyphs[idx]
		}
		if _, err := out.Write(row); err != nil {
			return err
		}
	}
	return nil
}
