package life

import (
	"sort"

	"github.com/pkg/errors"
)

type Cell uint8

const (
	Dead Cell = iota
	Alive
)

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Point is a cell coordinate, x is the column and y the row.
type Point struct {
	X, Y int
}

// Source is the random source used for seeding. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Grid is a square board of cells. The current generation lives in cells;
// next is scratch space for the generation being computed.
type Grid struct {
	size       int
	cells      []Cell
	next       []Cell
	neighbors  []uint8
	generation int
}

// New returns an all-dead grid of size×size cells.
func New(size int) (*Grid, error) {
	if size < 1 {
		return nil, errors.Wrapf(ErrInvalidSize, "size %d", size)
	}
	n := size * size
	return &Grid{
		size:      size,
		cells:     make([]Cell, n),
		next:      make([]Cell, n),
		neighbors: make([]uint8, n),
	}, nil
}

func (g *Grid) Size() int       { return g.size }
func (g *Grid) Generation() int { return g.generation }

func (g *Grid) inside(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

func (g *Grid) index(x, y int) int { return y*g.size + x }

// At returns the state of the cell at x, y. Positions outside the grid are Dead.
func (g *Grid) At(x, y int) Cell {
	if !g.inside(x, y) {
		return Dead
	}
	return g.cells[g.index(x, y)]
}

func (g *Grid) Alive(x, y int) bool { return g.At(x, y) == Alive }

// Set writes a cell state directly, bypassing the update rule.
// It reports false when x, y is outside the grid.
func (g *Grid) Set(x, y int, c Cell) bool {
	if !g.inside(x, y) {
		return false
	}
	g.cells[g.index(x, y)] = c
	return true
}

// Toggle flips the cell at x, y. Out-of-range coordinates are ignored.
func (g *Grid) Toggle(x, y int) bool {
	if !g.inside(x, y) {
		return false
	}
	i := g.index(x, y)
	if g.cells[i] == Alive {
		g.cells[i] = Dead
	} else {
		g.cells[i] = Alive
	}
	return true
}

// Clear kills every cell. The generation counter is kept.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Dead
		g.neighbors[i] = 0
	}
}

// Neighbors returns the live-neighbor count cached by the last Tick.
// It only feeds render coloring and is not refreshed by Set or Toggle.
func (g *Grid) Neighbors(x, y int) int {
	if !g.inside(x, y) {
		return 0
	}
	return int(g.neighbors[g.index(x, y)])
}

// CountNeighbors counts the live cells among the eight positions around x, y
// in the current generation, clipped at the grid edges.
func (g *Grid) CountNeighbors(x, y int) int {
	minX, maxX := max(0, x-1), min(g.size-1, x+1)
	minY, maxY := max(0, y-1), min(g.size-1, y+1)

	count := 0
	for ny := minY; ny <= maxY; ny++ {
		row := ny * g.size
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.cells[row+nx] == Alive {
				count++
			}
		}
	}
	return count
}

// Tick advances every cell by one generation. All counts are taken from the
// unmodified current buffer before the buffers are swapped.
func (g *Grid) Tick() {
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			i := g.index(x, y)
			n := g.CountNeighbors(x, y)
			g.next[i] = Next(g.cells[i], n)
			g.neighbors[i] = uint8(n)
		}
	}
	g.cells, g.next = g.next, g.cells
	g.generation++
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cells {
		if c == Alive {
			n++
		}
	}
	return n
}

// LiveCells lists live cells ordered by row, then column.
func (g *Grid) LiveCells() []Point {
	pts := make([]Point, 0)
	for i, c := range g.cells {
		if c == Alive {
			pts = append(pts, Point{X: i % g.size, Y: i / g.size})
		}
	}
	sort.Slice(pts, func(a, b int) bool {
		if pts[a].Y != pts[b].Y {
			return pts[a].Y < pts[b].Y
		}
		return pts[a].X < pts[b].X
	})
	return pts
}

// Place sets the cells of p alive with its top-left corner at x, y.
func (g *Grid) Place(p Pattern, x, y int) error {
	w, h := p.Bounds()
	if x < 0 || y < 0 || x+w > g.size || y+h > g.size {
		return errors.Wrapf(ErrOutOfBounds, "%s (%dx%d) at %d,%d on %d grid", p.Name, w, h, x, y, g.size)
	}
	for _, c := range p.Cells {
		g.cells[g.index(x+c.X, y+c.Y)] = Alive
	}
	return nil
}

// PlaceRandom places p at an offset drawn from src such that the whole
// footprint stays inside the grid, and returns that offset.
func (g *Grid) PlaceRandom(p Pattern, src Source) (Point, error) {
	w, h := p.Bounds()
	if w > g.size || h > g.size {
		return Point{}, errors.Wrapf(ErrOutOfBounds, "%s (%dx%d) on %d grid", p.Name, w, h, g.size)
	}
	at := Point{X: src.Intn(g.size - w + 1), Y: src.Intn(g.size - h + 1)}
	if err := g.Place(p, at.X, at.Y); err != nil {
		return Point{}, err
	}
	return at, nil
}

// DropGlider seeds a glider at a random in-bounds offset. Grids too small
// for the 3×3 footprint are left untouched and ok is false.
func (g *Grid) DropGlider(src Source) (at Point, ok bool) {
	at, err := g.PlaceRandom(Glider, src)
	return at, err == nil
}
