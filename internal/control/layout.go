package control

import "math"

// Layout places a size×size grid on a screen. Cells are CellW×CellH units
// with the top-left cell at OriginX, OriginY.
type Layout struct {
	OriginX, OriginY float64
	CellW, CellH     float64
	Size             int
}

// FitSquare sizes square cells so the whole grid fits the smaller window
// dimension minus inset on every side.
func FitSquare(winW, winH, inset float64, size int) Layout {
	side := math.Min(winW, winH) - 2*inset
	if side < 0 || size < 1 {
		side = 0
	}
	cell := 0.0
	if size > 0 {
		cell = side / float64(size)
	}
	return Layout{OriginX: inset, OriginY: inset, CellW: cell, CellH: cell, Size: size}
}

func (l Layout) Width() float64  { return l.CellW * float64(l.Size) }
func (l Layout) Height() float64 { return l.CellH * float64(l.Size) }

// CellAt maps a screen position to grid coordinates.
func (l Layout) CellAt(px, py float64) (x, y int, ok bool) {
	if l.CellW <= 0 || l.CellH <= 0 {
		return 0, 0, false
	}
	rx, ry := px-l.OriginX, py-l.OriginY
	if rx < 0 || ry < 0 || rx >= l.Width() || ry >= l.Height() {
		return 0, 0, false
	}
	x = min(int(rx/l.CellW), l.Size-1)
	y = min(int(ry/l.CellH), l.Size-1)
	return x, y, true
}

// CellOrigin returns the screen position of the top-left corner of cell x, y.
func (l Layout) CellOrigin(x, y int) (float64, float64) {
	return l.OriginX + float64(x)*l.CellW, l.OriginY + float64(y)*l.CellH
}
