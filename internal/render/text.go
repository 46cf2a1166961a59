// Package render turns a life grid into a fixed-width text block.
package render

import (
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/san-kum/lifesim/internal/life"
)

const (
	AliveGlyph = "■ "
	DeadGlyph  = "· "
)

// neighborColors maps a cached neighbor count to the color of a live cell.
// Counts without an entry (0 and 6..8) use fallbackColor.
var neighborColors = map[int]aurora.Color{
	1: aurora.BlueFg,
	2: aurora.MagentaFg,
	3: aurora.GreenFg,
	4: aurora.YellowFg,
	5: aurora.RedFg,
}

const fallbackColor = aurora.WhiteFg

type Text struct {
	au aurora.Aurora
}

// NewText returns a renderer. With colored set, live cells are tinted by
// their neighbor count from the last tick.
func NewText(colored bool) *Text {
	return &Text{au: aurora.NewAurora(colored)}
}

// Render draws one line per row. It only reads the grid.
func (t *Text) Render(g *life.Grid) string {
	var sb strings.Builder
	size := g.Size()
	sb.Grow(size * (size*len(AliveGlyph) + 1))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			sb.WriteString(t.Glyph(g.Alive(x, y), g.Neighbors(x, y)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Glyph renders a single cell.
func (t *Text) Glyph(alive bool, neighbors int) string {
	if !alive {
		return DeadGlyph
	}
	return t.au.Colorize(AliveGlyph, ColorFor(neighbors)|aurora.BoldFm).String()
}

func ColorFor(neighbors int) aurora.Color {
	if c, ok := neighborColors[neighbors]; ok {
		return c
	}
	return fallbackColor
}
