package app

import (
	"flag"
	"testing"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("ca", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-sim", "life-flat", "-n", "64", "-gps", "5", "-seed", "7"}); err != nil {
		t.Fatal(err)
	}
	if cfg.Sim != "life-flat" || cfg.Size != 64 || cfg.GPS != 5 || cfg.Seed != 7 {
		t.Fatalf("bound config = %+v", cfg)
	}
	opts := cfg.SimOptions()
	if opts["n"] != "64" || opts["seed"] != "7" {
		t.Fatalf("sim options = %v", opts)
	}
}
