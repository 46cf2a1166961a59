package life

import (
	"sort"

	"github.com/pkg/errors"
)

// Pattern is a named set of live cells relative to its top-left corner.
type Pattern struct {
	Name  string
	Cells []Point
}

// Bounds returns the width and height of the pattern's footprint.
func (p Pattern) Bounds() (w, h int) {
	for _, c := range p.Cells {
		w = max(w, c.X+1)
		h = max(h, c.Y+1)
	}
	return w, h
}

// Glider travels one cell down and right every four generations:
//
//	. . #
//	# . #
//	. # #
var Glider = Pattern{Name: "glider", Cells: []Point{
	{2, 0},
	{0, 1}, {2, 1},
	{1, 2}, {2, 2},
}}

var Blinker = Pattern{Name: "blinker", Cells: []Point{{0, 0}, {1, 0}, {2, 0}}}

var Block = Pattern{Name: "block", Cells: []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}}

var patterns = map[string]Pattern{
	"glider":  Glider,
	"blinker": Blinker,
	"block":   Block,
	"toad": {Name: "toad", Cells: []Point{
		{1, 0}, {2, 0}, {3, 0},
		{0, 1}, {1, 1}, {2, 1},
	}},
	"beacon": {Name: "beacon", Cells: []Point{
		{0, 0}, {1, 0}, {0, 1},
		{3, 2}, {2, 3}, {3, 3},
	}},
	"lwss": {Name: "lwss", Cells: []Point{
		{1, 0}, {4, 0},
		{0, 1},
		{0, 2}, {4, 2},
		{0, 3}, {1, 3}, {2, 3}, {3, 3},
	}},
	"r-pentomino": {Name: "r-pentomino", Cells: []Point{
		{1, 0}, {2, 0},
		{0, 1}, {1, 1},
		{1, 2},
	}},
}

// Lookup returns the registered pattern with the given name.
func Lookup(name string) (Pattern, error) {
	p, ok := patterns[name]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "%q", name)
	}
	return p, nil
}

// PatternNames returns the registered pattern names in sorted order.
func PatternNames() []string {
	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
