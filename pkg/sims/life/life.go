package life

import (
	"log"

	"layout-life/internal/core"
	pcore "layout-life/pkg/core"
	"layout-life/pkg/grid"

	"github.com/aquilax/go-perlin"
)

// Life implements Conway's Game of Life with toroidal wrapping on top of a
// grid.Grid. The next generation is written into a shadow grid of the same
// layout and swapped in once the scan completes.
type Life struct {
	cfg        Config
	cur        *grid.Grid
	nxt        *grid.Grid
	generation uint64
	display    pcore.Bitmap
}

// New returns an all-dead n×n Life simulation backed by the given layout.
func New(layout grid.Layout, n int) (*Life, error) {
	c := DefaultConfig()
	c.Layout = layout
	c.Size = n
	return NewWithConfig(c)
}

// NewWithConfig returns an all-dead simulation built from cfg.
func NewWithConfig(cfg Config) (*Life, error) {
	cur, err := grid.New(cfg.Layout, cfg.Size)
	if err != nil {
		return nil, err
	}
	nxt, err := grid.New(cfg.Layout, cfg.Size)
	if err != nil {
		return nil, err
	}
	return &Life{cfg: cfg, cur: cur, nxt: nxt}, nil
}

// MustNew is like New but panics on error.
func MustNew(layout grid.Layout, n int) *Life {
	l, err := New(layout, n)
	if err != nil {
		panic(err)
	}
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life-" + l.cur.Layout().String() }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cur.Size(), H: l.cur.Size()} }

// Layout returns the storage layout backing the simulation.
func (l *Life) Layout() grid.Layout { return l.cur.Layout() }

// Generation returns the number of steps taken since construction or the
// last Reset.
func (l *Life) Generation() uint64 { return l.generation }

// Get reports whether (row, col) is alive.
func (l *Life) Get(row, col int) bool { return l.cur.Get(row, col) }

// Set stores v at (row, col).
func (l *Life) Set(row, col int, v bool) { l.cur.Set(row, col, v) }

// Snapshot returns an independent copy of the current generation.
func (l *Life) Snapshot() pcore.Bitmap { return l.cur.Snapshot() }

// Load overwrites the current generation from rows of 0/nonzero values.
func (l *Life) Load(rows [][]uint8) { l.cur.Load(rows) }

// RenderText draws the current generation as text.
func (l *Life) RenderText() string { return l.cur.RenderText() }

// Cells refreshes and exposes the display buffer. The returned slice is
// reused by the next call.
func (l *Life) Cells() []uint8 {
	l.cur.SnapshotInto(&l.display)
	return l.display.Pix
}

// Population counts the alive cells of the current generation.
func (l *Life) Population() int {
	n := l.cur.Size()
	alive := 0
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if l.cur.Get(row, col) {
				alive++
			}
		}
	}
	return alive
}

// Reset clears the board, rewinds the generation counter and fills a random
// soup. A zero seed uses the configured seed.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = l.cfg.Seed
	}
	rng := pcore.NewRNG(seed)
	n := l.cur.Size()
	l.generation = 0
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			l.cur.Set(row, col, rng.Chance(l.cfg.Density))
		}
	}
}

// SeedGlider places a glider with its bounding box at rows 1-3, cols 0-2:
//
//	.X.
//	..X
//	XXX
//
// The grid must be at least 4 cells wide.
func (l *Life) SeedGlider() {
	for _, rc := range [...][2]int{{1, 1}, {2, 2}, {3, 0}, {3, 1}, {3, 2}} {
		l.cur.Set(rc[0], rc[1], true)
	}
}

// SeedNoise overwrites the board with the cells whose Perlin noise value
// exceeds threshold. Higher thresholds give sparser boards.
func (l *Life) SeedNoise(seed int64, threshold float64) {
	const scale = 12.0
	p := perlin.NewPerlin(2, 2, 3, seed)
	n := l.cur.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			v := p.Noise2D(float64(col)/scale, float64(row)/scale)
			l.cur.Set(row, col, v > threshold)
		}
	}
}

func (l *Life) neighbors(row, col int) int {
	n := l.cur.Size()
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if l.cur.Get((row+dr+n)%n, (col+dc+n)%n) {
				count++
			}
		}
	}
	return count
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	n := l.cur.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			neighbors := l.neighbors(row, col)
			alive := l.cur.Get(row, col)
			l.nxt.Set(row, col, neighbors == 3 || (alive && neighbors == 2))
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
}

// Simulate runs k generations in sequence.
func (l *Life) Simulate(k int) {
	for i := 0; i < k; i++ {
		l.Step()
	}
}

func init() {
	for name, layout := range map[string]grid.Layout{
		"life":               grid.NestedRows,
		"life-flat":          grid.FlatBuffer,
		"life-hilbert":       grid.CurveOrdered,
		"life-hilbert-table": grid.CurveTable,
	} {
		core.Register(name, func(cfg map[string]string) core.Sim {
			c := FromMap(cfg)
			c.Layout = layout
			sim, err := NewWithConfig(c)
			if err != nil {
				log.Printf("life: %v; using n=%d", err, DefaultConfig().Size)
				c.Size = DefaultConfig().Size
				sim, err = NewWithConfig(c)
				if err != nil {
					panic(err)
				}
			}
			return sim
		})
	}
}
