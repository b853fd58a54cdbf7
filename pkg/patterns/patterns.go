// Package patterns holds named constant shapes and the stamping operation
// that writes them into a grid.
//
// Two safety tiers coexist on purpose. Place checks that the stamped region
// fits inside the grid. Stamp does not: an origin that pushes the region past
// the grid edge is a caller bug, and the write may land in the wrong row or
// panic. Build with -tags cadebug to turn that precondition into a panic with
// a descriptive message.
package patterns

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gottacatchenall/WorkshopGOL/pkg/core"
)

// Kind enumerates the known patterns.
type Kind uint8

const (
	Custom Kind = iota
	Glider
	Blinker
	Pulsar
	Block
	Beehive
	Toad
	Beacon
	LWSS
)

var kindNames = map[Kind]string{
	Custom:  "custom",
	Glider:  "glider",
	Blinker: "blinker",
	Pulsar:  "pulsar",
	Block:   "block",
	Beehive: "beehive",
	Toad:    "toad",
	Beacon:  "beacon",
	LWSS:    "lwss",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Pattern is an immutable rectangular shape. shape[y][x] is true for alive
// cells.
type Pattern struct {
	kind  Kind
	name  string
	w, h  int
	shape [][]bool
}

// Kind returns the pattern's variant tag.
func (p Pattern) Kind() Kind { return p.kind }

// Name returns the pattern's name.
func (p Pattern) Name() string { return p.name }

// Size returns the pattern's width and height.
func (p Pattern) Size() (int, int) { return p.w, p.h }

// At reports whether the cell at (x, y) of the pattern is alive.
func (p Pattern) At(x, y int) bool { return p.shape[y][x] }

// Shape returns a copy of the pattern's cells in row-major order.
func (p Pattern) Shape() [][]bool {
	out := make([][]bool, len(p.shape))
	for y, row := range p.shape {
		out[y] = append([]bool(nil), row...)
	}
	return out
}

// Alive returns the number of alive cells in the pattern.
func (p Pattern) Alive() int {
	n := 0
	for _, row := range p.shape {
		for _, on := range row {
			if on {
				n++
			}
		}
	}
	return n
}

// FromStrings parses plaintext rows into a Custom pattern. 'O', '*', '#' and
// '1' are alive; '.', '0', '_' and ' ' are dead. Rows must all have the same
// length.
func FromStrings(name string, rows []string) (Pattern, error) {
	p, err := parse(Custom, name, rows)
	if err != nil {
		return Pattern{}, fmt.Errorf("pattern %q: %w", name, err)
	}
	return p, nil
}

func parse(kind Kind, name string, rows []string) (Pattern, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Pattern{}, fmt.Errorf("empty shape: %w", core.ErrInvalidConfiguration)
	}
	w := len(rows[0])
	shape := make([][]bool, len(rows))
	for y, row := range rows {
		if len(row) != w {
			return Pattern{}, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), w, core.ErrInvalidConfiguration)
		}
		shape[y] = make([]bool, w)
		for x, c := range row {
			switch c {
			case 'O', 'o', '*', '#', '1':
				shape[y][x] = true
			case '.', '0', '_', ' ':
			default:
				return Pattern{}, fmt.Errorf("row %d: unexpected %q: %w", y, c, core.ErrInvalidConfiguration)
			}
		}
	}
	return Pattern{kind: kind, name: name, w: w, h: len(rows), shape: shape}, nil
}

func mustParse(kind Kind, rows ...string) Pattern {
	p, err := parse(kind, kind.String(), rows)
	if err != nil {
		panic(err)
	}
	return p
}

var library = map[Kind]Pattern{
	Glider: mustParse(Glider,
		"..O",
		"O.O",
		".OO",
	),
	Blinker: mustParse(Blinker,
		".O.",
		".O.",
		".O.",
	),
	Pulsar: mustParse(Pulsar,
		"...............",
		"...OOO...OOO...",
		"...............",
		".O....O.O....O.",
		".O....O.O....O.",
		".O....O.O....O.",
		"...OOO...OOO...",
		"...............",
		"...OOO...OOO...",
		".O....O.O....O.",
		".O....O.O....O.",
		".O....O.O....O.",
		"...............",
		"...OOO...OOO...",
		"...............",
	),
	Block: mustParse(Block,
		"OO",
		"OO",
	),
	Beehive: mustParse(Beehive,
		".OO.",
		"O..O",
		".OO.",
	),
	Toad: mustParse(Toad,
		".OOO",
		"OOO.",
	),
	Beacon: mustParse(Beacon,
		"OO..",
		"OO..",
		"..OO",
		"..OO",
	),
	LWSS: mustParse(LWSS,
		".O..O",
		"O....",
		"O...O",
		"OOOO.",
	),
}

// Get returns the built-in pattern of the given kind.
func Get(k Kind) (Pattern, bool) {
	p, ok := library[k]
	return p, ok
}

// Lookup finds a built-in pattern by case-insensitive name.
func Lookup(name string) (Pattern, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, p := range library {
		if kindNames[k] == name {
			return p, true
		}
	}
	return Pattern{}, false
}

// Names lists the built-in pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(library))
	for k := range library {
		names = append(names, kindNames[k])
	}
	sort.Strings(names)
	return names
}
