package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"layout-life/internal/render"
	"layout-life/pkg/sims/life"
)

func main() {
	cfg := life.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	frames := flag.Int("frames", 60, "number of frames to export")
	every := flag.Int("every", 1, "generations between frames")
	format := flag.String("format", "gif", "output format: gif or avi")
	scale := flag.Int("scale", 1, "pixels per cell")
	fps := flag.Int("fps", 25, "frames per second")
	start := flag.String("start", "glider", "initial board: glider, soup or noise")
	out := flag.String("out", "", "output path (default output.<format>)")
	flag.Parse()

	if *out == "" {
		*out = "output." + *format
	}
	if *every < 1 {
		*every = 1
	}
	if *fps < 1 {
		*fps = 1
	}

	sim, err := life.NewWithConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}
	switch *start {
	case "glider":
		sim.SeedGlider()
	case "soup":
		sim.Reset(cfg.Seed)
	case "noise":
		sim.SeedNoise(cfg.Seed, 0.1)
	default:
		log.Fatalf("unknown start %q", *start)
	}

	var fw render.FrameWriter
	var file *os.File
	switch *format {
	case "gif":
		file, err = os.Create(*out)
		if err != nil {
			log.Fatal(err)
		}
		fw = render.NewGIFWriter(file, *scale, max(1, 100 / *fps))
	case "avi":
		fw, err = render.NewAVIWriter(*out, cfg.Size, *scale, *fps)
		if err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatalf("unknown format %q", *format)
	}

	err = writeFrames(fw, sim, *frames, *every)
	if file != nil {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Wrote %d frames of %s (%dx%d) to %s, last generation %d\n",
		*frames, sim.Name(), cfg.Size, cfg.Size, *out, sim.Generation())
}

// writeFrames emits frames snapshots, stepping every generations between
// them, and always closes fw.
func writeFrames(fw render.FrameWriter, sim *life.Life, frames, every int) error {
	for i := 0; i < frames; i++ {
		if err := fw.WriteFrame(sim.Snapshot()); err != nil {
			fw.Close()
			return fmt.Errorf("frame %d: %w", i, err)
		}
		sim.Simulate(every)
	}
	return fw.Close()
}
