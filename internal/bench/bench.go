// Package bench times repeated stepping of independent Life simulations, one
// per storage layout, and checks that every layout ends on the same board.
package bench

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"layout-life/pkg/core"
	"layout-life/pkg/grid"
	"layout-life/pkg/hilbert"
	"layout-life/pkg/sims/life"
)

// Seeding selects how each simulation is populated before timing.
type Seeding string

const (
	// SeedGlider places the single reference glider.
	SeedGlider Seeding = "glider"
	// SeedSoup fills a random soup of Config.Density.
	SeedSoup Seeding = "soup"
	// SeedNoise thresholds Perlin noise.
	SeedNoise Seeding = "noise"
)

// ErrDiverged is returned when layouts finish with different boards.
var ErrDiverged = errors.New("bench: layouts diverged")

// Config controls a measurement run.
type Config struct {
	Size    int
	Steps   int
	Runs    int
	Layouts []grid.Layout
	Seeding Seeding
	Seed    int64
	Density float64
	Workers int
}

// DefaultConfig mirrors the classic 512×512, 1000-step comparison.
func DefaultConfig() Config {
	return Config{
		Size:    512,
		Steps:   1000,
		Runs:    3,
		Layouts: grid.Layouts(),
		Seeding: SeedGlider,
		Seed:    42,
		Density: 0.25,
		Workers: 1,
	}
}

// Stepper is the surface the harness needs from a simulation.
type Stepper interface {
	Simulate(k int)
	Snapshot() core.Bitmap
}

// Result aggregates the timings for one layout.
type Result struct {
	Layout grid.Layout
	Times  []time.Duration
	Final  core.Bitmap
}

// Mean returns the average run time.
func (r Result) Mean() time.Duration {
	if len(r.Times) == 0 {
		return 0
	}
	var total time.Duration
	for _, d := range r.Times {
		total += d
	}
	return total / time.Duration(len(r.Times))
}

// Min returns the fastest run time.
func (r Result) Min() time.Duration {
	if len(r.Times) == 0 {
		return 0
	}
	best := r.Times[0]
	for _, d := range r.Times[1:] {
		if d < best {
			best = d
		}
	}
	return best
}

// NsPerCell returns the mean cost of one cell update in nanoseconds.
func (r Result) NsPerCell(size, steps int) float64 {
	cells := float64(size) * float64(size) * float64(steps)
	if cells == 0 {
		return 0
	}
	return float64(r.Mean().Nanoseconds()) / cells
}

func (c Config) build(layout grid.Layout) (*life.Life, error) {
	lc := life.DefaultConfig()
	lc.Size = c.Size
	lc.Layout = layout
	lc.Seed = c.Seed
	lc.Density = c.Density
	sim, err := life.NewWithConfig(lc)
	if err != nil {
		return nil, err
	}
	switch c.Seeding {
	case SeedSoup:
		sim.Reset(c.Seed)
	case SeedNoise:
		sim.SeedNoise(c.Seed, 0.1)
	case SeedGlider, "":
		sim.SeedGlider()
	default:
		return nil, fmt.Errorf("bench: unknown seeding %q", c.Seeding)
	}
	return sim, nil
}

// validate checks the seeding and every layout/size pair without
// allocating any grid.
func (c Config) validate() error {
	switch c.Seeding {
	case SeedGlider, SeedSoup, SeedNoise, "":
	default:
		return fmt.Errorf("bench: unknown seeding %q", c.Seeding)
	}
	if c.Size <= 0 {
		return fmt.Errorf("%w: %d", grid.ErrInvalidSize, c.Size)
	}
	for _, l := range c.Layouts {
		if int(l) >= len(grid.Layouts()) {
			return fmt.Errorf("%w: %s", grid.ErrUnknownLayout, l)
		}
		if l.Curved() && !hilbert.IsPowerOfTwo(c.Size) {
			return fmt.Errorf("%w: %s with n=%d", grid.ErrNotPowerOfTwo, l, c.Size)
		}
	}
	return nil
}

// Time runs k steps on s and reports the elapsed wall time.
func Time(s Stepper, k int) time.Duration {
	start := time.Now()
	s.Simulate(k)
	return time.Since(start)
}

type job struct {
	layout grid.Layout
	run    int
}

type sample struct {
	job
	elapsed time.Duration
	final   core.Bitmap
	err     error
}

// Run measures every configured layout. Each run uses a freshly built
// simulation so no state is shared between runs or layouts.
func Run(cfg Config) ([]Result, error) {
	if cfg.Runs < 1 {
		cfg.Runs = 1
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if len(cfg.Layouts) == 0 {
		return nil, fmt.Errorf("bench: no layouts selected")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	jobs := make(chan job)
	samples := make(chan sample)
	var wg sync.WaitGroup

	for i := 0; i < cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				s := sample{job: j}
				sim, err := cfg.build(j.layout)
				if err != nil {
					s.err = err
					samples <- s
					continue
				}
				s.elapsed = Time(sim, cfg.Steps)
				s.final = sim.Snapshot()
				samples <- s
			}
		}()
	}

	go func() {
		wg.Wait()
		close(samples)
	}()

	go func() {
		for run := 0; run < cfg.Runs; run++ {
			for _, l := range cfg.Layouts {
				jobs <- job{layout: l, run: run}
			}
		}
		close(jobs)
	}()

	byLayout := map[grid.Layout]*Result{}
	var firstErr error
	for s := range samples {
		if s.err != nil {
			if firstErr == nil {
				firstErr = s.err
			}
			continue
		}
		r, ok := byLayout[s.layout]
		if !ok {
			r = &Result{Layout: s.layout}
			byLayout[s.layout] = r
		}
		r.Times = append(r.Times, s.elapsed)
		r.Final = s.final
	}
	if firstErr != nil {
		return nil, firstErr
	}

	results := make([]Result, 0, len(byLayout))
	for _, r := range byLayout {
		results = append(results, *r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Layout < results[j].Layout })
	return results, nil
}

// Verify checks that every result finished on the same board.
func Verify(results []Result) error {
	if len(results) == 0 {
		return nil
	}
	for _, r := range results[1:] {
		if !r.Final.Equal(results[0].Final) {
			return fmt.Errorf("%w: %s differs from %s", ErrDiverged, r.Layout, results[0].Layout)
		}
	}
	return nil
}
