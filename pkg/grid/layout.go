package grid

import (
	"fmt"
	"strings"
)

// Layout selects how a Grid arranges its cells in memory.
type Layout uint8

const (
	// NestedRows keeps one independent buffer per row.
	NestedRows Layout = iota
	// FlatBuffer keeps a single row-major buffer.
	FlatBuffer
	// CurveOrdered keeps a single buffer ordered along a Hilbert curve,
	// computing the curve position on every access.
	CurveOrdered
	// CurveTable is CurveOrdered with curve positions read from a
	// precomputed lookup table.
	CurveTable
)

var layoutNames = [...]string{
	NestedRows:   "nested",
	FlatBuffer:   "flat",
	CurveOrdered: "hilbert",
	CurveTable:   "hilbert-table",
}

// Layouts lists every supported layout in declaration order.
func Layouts() []Layout {
	return []Layout{NestedRows, FlatBuffer, CurveOrdered, CurveTable}
}

func (l Layout) String() string {
	if int(l) < len(layoutNames) {
		return layoutNames[l]
	}
	return fmt.Sprintf("Layout(%d)", uint8(l))
}

// Curved reports whether the layout requires a power-of-two side.
func (l Layout) Curved() bool {
	return l == CurveOrdered || l == CurveTable
}

// ParseLayout resolves a layout by its String name.
func ParseLayout(s string) (Layout, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range layoutNames {
		if n == name {
			return Layout(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLayout, s)
}

// ParseLayouts resolves a comma separated layout list. "all" selects every
// layout.
func ParseLayouts(s string) ([]Layout, error) {
	if strings.TrimSpace(s) == "all" {
		return Layouts(), nil
	}
	var out []Layout
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		l, err := ParseLayout(part)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty list", ErrUnknownLayout)
	}
	return out, nil
}
