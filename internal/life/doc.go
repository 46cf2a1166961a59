// Package life implements Conway's Game of Life on a fixed-size square grid.
//
// The package defines the core cellular-automaton state machine:
//
//   - [Cell]: the state of a single cell (Dead or Alive)
//   - [Grid]: a size×size board with a synchronous, double-buffered [Grid.Tick]
//   - [Next]: the update rule applied to every cell
//   - [Pattern]: named seed shapes such as the glider and the blinker
//
// # Boundaries
//
// The grid does not wrap. Cells on an edge or corner simply have fewer
// neighbors; positions outside [0, size) are never counted.
//
// # Example
//
//	g, _ := life.New(50)
//	g.DropGlider(rand.New(rand.NewSource(1)))
//	for i := 0; i < 4; i++ {
//		g.Tick()
//	}
//
// # Thread Safety
//
// Grid instances are NOT thread-safe. A grid is owned by the loop that ticks
// it; input handlers must run on that same loop.
package life
