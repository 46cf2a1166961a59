package life

import (
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func newGrid(size int) *Grid {
	g, err := New(size)
	Expect(err).NotTo(HaveOccurred())
	return g
}

func randomGrid(rng *rand.Rand, size int, density float64) *Grid {
	g := newGrid(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if rng.Float64() < density {
				g.Set(x, y, Alive)
			}
		}
	}
	return g
}

func snapshot(g *Grid) []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

func shifted(pts []Point, dx, dy int) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = Point{X: p.X + dx, Y: p.Y + dy}
	}
	return out
}

var _ = Describe("Tick", func() {
	var rng *rand.Rand

	BeforeEach(func() {
		rng = rand.New(rand.NewSource(GinkgoRandomSeed()))
	})

	Context("on random grids", func() {
		It("applies the rule to every cell from the previous generation's counts", func() {
			for trial := 0; trial < 25; trial++ {
				g := randomGrid(rng, 12, 0.35)
				before := snapshot(g)
				counts := make([]int, len(before))
				for y := 0; y < g.Size(); y++ {
					for x := 0; x < g.Size(); x++ {
						counts[g.index(x, y)] = g.CountNeighbors(x, y)
					}
				}

				g.Tick()

				for i, n := range counts {
					switch {
					case n == 3:
						Expect(g.cells[i]).To(Equal(Alive), "cell %d had 3 neighbors", i)
					case before[i] == Alive && n < 2:
						Expect(g.cells[i]).To(Equal(Dead), "live cell %d had %d neighbors", i, n)
					case before[i] == Alive && n > 3:
						Expect(g.cells[i]).To(Equal(Dead), "live cell %d had %d neighbors", i, n)
					case before[i] == Alive && n == 2:
						Expect(g.cells[i]).To(Equal(Alive), "live cell %d had 2 neighbors", i)
					default:
						Expect(g.cells[i]).To(Equal(Dead), "dead cell %d had %d neighbors", i, n)
					}
				}
			}
		})

		It("advances the generation counter once per tick", func() {
			g := randomGrid(rng, 8, 0.5)
			for i := 0; i < 7; i++ {
				g.Tick()
			}
			Expect(g.Generation()).To(Equal(7))
		})
	})

	It("keeps an all-dead grid dead", func() {
		g := newGrid(16)
		for i := 0; i < 5; i++ {
			g.Tick()
			Expect(g.Population()).To(BeZero())
		}
	})

	It("leaves an enclosed block unchanged", func() {
		g := newGrid(6)
		Expect(g.Place(Block, 2, 2)).To(Succeed())
		want := g.LiveCells()
		for i := 0; i < 20; i++ {
			g.Tick()
			Expect(g.LiveCells()).To(Equal(want))
		}
	})

	It("returns a blinker to its start after exactly two ticks", func() {
		g := newGrid(5)
		Expect(g.Place(Blinker, 1, 2)).To(Succeed())
		start := g.LiveCells()

		g.Tick()
		Expect(g.LiveCells()).NotTo(Equal(start))
		Expect(g.LiveCells()).To(Equal([]Point{{2, 1}, {2, 2}, {2, 3}}))

		g.Tick()
		Expect(g.LiveCells()).To(Equal(start))
	})

	It("translates a glider by one cell diagonally every four ticks", func() {
		g := newGrid(20)
		Expect(g.Place(Glider, 1, 1)).To(Succeed())
		start := g.LiveCells()

		for period := 1; period <= 3; period++ {
			for i := 0; i < 4; i++ {
				g.Tick()
			}
			Expect(g.LiveCells()).To(Equal(shifted(start, period, period)))
		}
	})

	It("settles a glider into a block in the corner instead of wrapping", func() {
		g := newGrid(6)
		Expect(g.Place(Glider, 3, 3)).To(Succeed())
		for i := 0; i < 40; i++ {
			g.Tick()
		}
		Expect(g.LiveCells()).To(Equal([]Point{{4, 4}, {5, 4}, {4, 5}, {5, 5}}))
	})
})

var _ = Describe("Toggle", func() {
	It("flips only the targeted cell", func() {
		rng := rand.New(rand.NewSource(GinkgoRandomSeed()))
		g := randomGrid(rng, 10, 0.4)
		before := snapshot(g)

		g.Toggle(4, 7)
		after := snapshot(g)

		for i := range before {
			if i == g.index(4, 7) {
				Expect(after[i]).NotTo(Equal(before[i]))
			} else {
				Expect(after[i]).To(Equal(before[i]))
			}
		}
	})

	It("behaves like a direct edit on the next generation", func() {
		rng := rand.New(rand.NewSource(GinkgoRandomSeed()))
		g := randomGrid(rng, 10, 0.4)
		direct := newGrid(10)
		copy(direct.cells, g.cells)

		wasAlive := g.Alive(5, 5)
		g.Toggle(5, 5)
		if wasAlive {
			direct.Set(5, 5, Dead)
		} else {
			direct.Set(5, 5, Alive)
		}

		g.Tick()
		direct.Tick()
		Expect(snapshot(g)).To(Equal(snapshot(direct)))
	})
})

var _ = Describe("CountNeighbors", func() {
	DescribeTable("on a fully alive grid",
		func(size, x, y, expected int) {
			g := newGrid(size)
			for i := range g.cells {
				g.cells[i] = Alive
			}
			Expect(g.CountNeighbors(x, y)).To(Equal(expected))
		},
		Entry("single cell grid", 1, 0, 0, 0),
		Entry("corner", 5, 0, 0, 3),
		Entry("far corner", 5, 4, 4, 3),
		Entry("edge", 5, 2, 0, 5),
		Entry("interior", 5, 2, 2, 8),
	)
})
