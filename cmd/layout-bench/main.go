package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"layout-life/internal/bench"
	"layout-life/pkg/grid"
)

func main() {
	cfg := bench.DefaultConfig()
	flag.IntVar(&cfg.Size, "n", cfg.Size, "grid side length")
	flag.IntVar(&cfg.Steps, "steps", cfg.Steps, "generations per timed run")
	flag.IntVar(&cfg.Runs, "runs", cfg.Runs, "timed runs per layout")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for soup and noise starts")
	flag.Float64Var(&cfg.Density, "density", cfg.Density, "alive probability for soup starts")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, fmt.Sprintf("parallel runs on independent grids (up to %d cores)", runtime.NumCPU()))
	seeding := flag.String("start", string(cfg.Seeding), "initial board: glider, soup or noise")
	layouts := flag.String("layouts", "all", "comma separated layouts to compare")
	chartPath := flag.String("chart", "", "write a PNG bar chart to this path")
	flag.Parse()

	cfg.Seeding = bench.Seeding(*seeding)
	var err error
	if cfg.Layouts, err = grid.ParseLayouts(*layouts); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Timing %d layouts: %dx%d grid, %d steps, %d runs, %d workers\n",
		len(cfg.Layouts), cfg.Size, cfg.Size, cfg.Steps, cfg.Runs, cfg.Workers)

	start := time.Now()
	results, err := bench.Run(cfg)
	if err != nil {
		log.Fatal(err)
	}
	if err := bench.WriteTable(os.Stdout, cfg, results); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("\nElapsed %s\n", time.Since(start).Round(time.Millisecond))

	if err := bench.Verify(results); err != nil {
		log.Fatal(err)
	}
	fmt.Println("All layouts finished on identical boards.")

	if *chartPath != "" {
		f, err := os.Create(*chartPath)
		if err != nil {
			log.Fatalf("create chart: %v", err)
		}
		if err := bench.WriteChart(f, cfg, results); err != nil {
			f.Close()
			log.Fatalf("render chart: %v", err)
		}
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Chart written to %s\n", *chartPath)
	}
}
