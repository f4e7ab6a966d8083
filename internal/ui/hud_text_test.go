package ui

import (
	"slices"
	"testing"

	"layout-life/internal/core"
)

func TestHUDLines(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "World",
		Params: []core.Parameter{{Key: "layout", Label: "Layout", Value: "hilbert"}},
	}}}
	lines := hudLines("life-hilbert", snap, 59.6, true)
	if lines[0] != "life-hilbert" {
		t.Fatalf("title line %q", lines[0])
	}
	if lines[1] != "paused  60 tps" {
		t.Fatalf("status line %q", lines[1])
	}
	if !slices.Contains(lines, "[World]") || !slices.Contains(lines, " Layout: hilbert") {
		t.Fatalf("parameters missing from %q", lines)
	}
}
