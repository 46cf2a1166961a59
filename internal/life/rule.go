package life

// Next applies Conway's rule to a cell with n live neighbors.
// A live cell survives with two or three neighbors; a dead cell is born with exactly three.
func Next(c Cell, n int) Cell {
	switch {
	case n == 3:
		return Alive
	case n == 2 && c == Alive:
		return Alive
	default:
		return Dead
	}
}
