// Package grid stores an N×N lattice of boolean cells in one of several
// memory layouts. All layouts behave identically; only access locality
// differs.
package grid

import (
	"errors"
	"fmt"
	"strings"

	"layout-life/pkg/core"
	"layout-life/pkg/hilbert"
)

var (
	// ErrInvalidSize is returned for a non-positive side length.
	ErrInvalidSize = errors.New("grid: size must be positive")
	// ErrNotPowerOfTwo is returned when a curve layout is built with a side
	// that is not a power of two.
	ErrNotPowerOfTwo = errors.New("grid: curve layout needs a power-of-two size")
	// ErrUnknownLayout is returned for layouts outside the known set.
	ErrUnknownLayout = errors.New("grid: unknown layout")
)

const (
	aliveGlyph = "##"
	deadGlyph  = "  "
)

// Grid is a square lattice whose storage layout is fixed at construction.
// Every accessor switches on the layout tag.
type Grid struct {
	layout Layout
	n      int

	rows [][]bool      // NestedRows
	flat []bool        // FlatBuffer, CurveOrdered, CurveTable
	lut  hilbert.Table // CurveTable
}

// New allocates an all-dead n×n grid using the given layout.
func New(layout Layout, n int) (*Grid, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, n)
	}
	g := &Grid{layout: layout, n: n}
	switch layout {
	case NestedRows:
		g.rows = make([][]bool, n)
		for r := range g.rows {
			g.rows[r] = make([]bool, n)
		}
	case FlatBuffer:
		g.flat = make([]bool, n*n)
	case CurveOrdered, CurveTable:
		if !hilbert.IsPowerOfTwo(n) {
			return nil, fmt.Errorf("%w: %s with n=%d", ErrNotPowerOfTwo, layout, n)
		}
		g.flat = make([]bool, n*n)
		if layout == CurveTable {
			g.lut = hilbert.NewTable(n)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownLayout, layout)
	}
	return g, nil
}

// MustNew is like New but panics on error.
func MustNew(layout Layout, n int) *Grid {
	g, err := New(layout, n)
	if err != nil {
		panic(err)
	}
	return g
}

// Size returns the side length N.
func (g *Grid) Size() int { return g.n }

// Layout returns the storage layout chosen at construction.
func (g *Grid) Layout() Layout { return g.layout }

func (g *Grid) check(row, col int) {
	if uint(row) >= uint(g.n) || uint(col) >= uint(g.n) {
		panic(fmt.Sprintf("grid: cell (%d,%d) out of range [0,%d)", row, col, g.n))
	}
}

// offset maps (row, col) into the single buffer of the flat layouts. The
// curve layouts use x=col, y=row.
func (g *Grid) offset(row, col int) int {
	switch g.layout {
	case CurveOrdered:
		return hilbert.Index(g.n, col, row)
	case CurveTable:
		return g.lut.Index(col, row)
	default:
		return row*g.n + col
	}
}

// Get reports whether (row, col) is alive. It panics if either coordinate is
// outside [0, N).
func (g *Grid) Get(row, col int) bool {
	g.check(row, col)
	if g.layout == NestedRows {
		return g.rows[row][col]
	}
	return g.flat[g.offset(row, col)]
}

// Set stores v at (row, col). It panics if either coordinate is outside
// [0, N).
func (g *Grid) Set(row, col int, v bool) {
	g.check(row, col)
	if g.layout == NestedRows {
		g.rows[row][col] = v
		return
	}
	g.flat[g.offset(row, col)] = v
}

// Clear marks every cell dead.
func (g *Grid) Clear() {
	for _, row := range g.rows {
		clear(row)
	}
	clear(g.flat)
}

// Snapshot copies the grid into a fresh row-major bitmap.
func (g *Grid) Snapshot() core.Bitmap {
	b := core.NewBitmap(g.n)
	g.SnapshotInto(&b)
	return b
}

// SnapshotInto copies the grid into dst, reallocating dst.Pix only when its
// size does not match.
func (g *Grid) SnapshotInto(dst *core.Bitmap) {
	if dst.N != g.n || len(dst.Pix) != g.n*g.n {
		*dst = core.NewBitmap(g.n)
	}
	i := 0
	for r := 0; r < g.n; r++ {
		for c := 0; c < g.n; c++ {
			dst.Pix[i] = 0
			if g.Get(r, c) {
				dst.Pix[i] = 1
			}
			i++
		}
	}
}

// Load overwrites the whole grid from rows. Nonzero entries are alive.
// Missing rows or entries are dead and anything beyond N is ignored.
func (g *Grid) Load(rows [][]uint8) {
	for r := 0; r < g.n; r++ {
		var src []uint8
		if r < len(rows) {
			src = rows[r]
		}
		for c := 0; c < g.n; c++ {
			g.Set(r, c, c < len(src) && src[c] != 0)
		}
	}
}

// RenderText draws the grid as N lines separated by newlines. Each cell is
// two characters wide.
func (g *Grid) RenderText() string {
	var sb strings.Builder
	sb.Grow(g.n*g.n*len(aliveGlyph) + g.n - 1)
	for r := 0; r < g.n; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.n; c++ {
			if g.Get(r, c) {
				sb.WriteString(aliveGlyph)
			} else {
				sb.WriteString(deadGlyph)
			}
		}
	}
	return sb.String()
}
