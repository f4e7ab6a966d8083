package ui

import (
	"fmt"

	"layout-life/internal/core"
)

// PanelWidth is the width in pixels of the HUD panel beside the grid.
const PanelWidth = 200

// hudLines flattens a parameter snapshot into the text shown on the panel.
func hudLines(title string, snap core.ParameterSnapshot, tps float64, paused bool) []string {
	lines := []string{title}
	state := "running"
	if paused {
		state = "paused"
	}
	lines = append(lines, fmt.Sprintf("%s  %.0f tps", state, tps), "")
	for _, g := range snap.Groups {
		lines = append(lines, "["+g.Name+"]")
		for _, p := range g.Params {
			lines = append(lines, fmt.Sprintf(" %s: %s", p.Label, p.Value))
		}
		lines = append(lines, "")
	}
	lines = append(lines, "space pause  n step", "r reset  s reseed", "g glider  q quit")
	return lines
}
