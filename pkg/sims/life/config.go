package life

import (
	"flag"
	"strconv"

	"layout-life/pkg/grid"
)

// Config holds parameters for a Life simulation.
type Config struct {
	Size    int
	Layout  grid.Layout
	Density float64
	Seed    int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Size: 512, Layout: grid.NestedRows, Density: 0.25, Seed: 42}
}

// FromMap populates a Config from a string map. Unparseable or out-of-range
// values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["layout"]; ok {
		if parsed, err := grid.ParseLayout(v); err == nil {
			c.Layout = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Size, "n", c.Size, "grid side length (power of two for hilbert layouts)")
	fs.Float64Var(&c.Density, "density", c.Density, "alive probability for random soups")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random soups")
	fs.Func("layout", "storage layout: nested, flat, hilbert or hilbert-table (default "+c.Layout.String()+")", func(s string) error {
		l, err := grid.ParseLayout(s)
		if err != nil {
			return err
		}
		c.Layout = l
		return nil
	})
}
