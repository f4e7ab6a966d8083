package main

// windowTitle names the viewer window after the running sim.
func windowTitle(sim string) string { return "layout-life - " + sim }
