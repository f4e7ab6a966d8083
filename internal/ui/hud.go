//go:build ebiten

package ui

import (
	"image/color"

	"layout-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	lineHeight    = 16
	refreshFrames = 15
)

var (
	panelColor = color.RGBA{R: 24, G: 24, B: 28, A: 255}
	textColor  = color.RGBA{R: 220, G: 220, B: 220, A: 255}
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	frames     int
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	h.refresh()
	return h
}

func (h *HUD) refresh() {
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
}

// Update refreshes the displayed parameters every few frames.
func (h *HUD) Update() {
	h.frames++
	if h.frames%refreshFrames == 0 {
		h.refresh()
	}
}

// Draw paints the panel starting at column x.
func (h *HUD) Draw(screen *ebiten.Image, x int, paused bool) {
	if h.width == 0 {
		return
	}
	height := screen.Bounds().Dy()
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.panel.Fill(panelColor)
		h.lastHeight = height
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), 0)
	screen.DrawImage(h.panel, op)

	for i, line := range hudLines(h.sim.Name(), h.snapshot, ebiten.ActualTPS(), paused) {
		text.Draw(screen, line, basicfont.Face7x13, x+8, 18+i*lineHeight, textColor)
	}
}
