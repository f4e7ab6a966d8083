package grid

import (
	"errors"
	"strings"
	"testing"

	"layout-life/pkg/core"
)

func forEachLayout(t *testing.T, n int, fn func(t *testing.T, g *Grid)) {
	t.Helper()
	for _, l := range Layouts() {
		t.Run(l.String(), func(t *testing.T) {
			fn(t, MustNew(l, n))
		})
	}
}

func TestNewGridIsDead(t *testing.T) {
	forEachLayout(t, 32, func(t *testing.T, g *Grid) {
		for r := 0; r < g.Size(); r++ {
			for c := 0; c < g.Size(); c++ {
				if g.Get(r, c) {
					t.Fatalf("fresh cell (%d,%d) alive", r, c)
				}
			}
		}
	})
}

func TestSetAffectsOnlyTarget(t *testing.T) {
	const n = 8
	forEachLayout(t, n, func(t *testing.T, g *Grid) {
		for r := 0; r < n; r++ {
			for c := 0; c < n; c++ {
				g.Set(r, c, true)
				if !g.Get(r, c) {
					t.Fatalf("set (%d,%d) true not observed", r, c)
				}
				if pop := g.Snapshot().Population(); pop != 1 {
					t.Fatalf("set (%d,%d): population %d, expected 1", r, c, pop)
				}
				g.Set(r, c, false)
				if g.Get(r, c) {
					t.Fatalf("set (%d,%d) false not observed", r, c)
				}
			}
		}
	})
}

func TestFillEveryCell(t *testing.T) {
	forEachLayout(t, 64, func(t *testing.T, g *Grid) {
		for r := 0; r < g.Size(); r++ {
			for c := 0; c < g.Size(); c++ {
				g.Set(r, c, true)
			}
		}
		if pop := g.Snapshot().Population(); pop != 64*64 {
			t.Fatalf("population %d after filling, expected %d", pop, 64*64)
		}
		g.Clear()
		if pop := g.Snapshot().Population(); pop != 0 {
			t.Fatalf("population %d after Clear", pop)
		}
	})
}

func TestOutOfRangePanics(t *testing.T) {
	coords := [][2]int{{-1, 0}, {0, -1}, {8, 0}, {0, 8}, {1, 9}}
	forEachLayout(t, 8, func(t *testing.T, g *Grid) {
		for _, rc := range coords {
			func() {
				defer func() {
					if recover() == nil {
						t.Fatalf("Get(%d,%d) did not panic", rc[0], rc[1])
					}
				}()
				g.Get(rc[0], rc[1])
			}()
			func() {
				defer func() {
					if recover() == nil {
						t.Fatalf("Set(%d,%d) did not panic", rc[0], rc[1])
					}
				}()
				g.Set(rc[0], rc[1], true)
			}()
		}
	})
}

func TestNewRejectsBadConfig(t *testing.T) {
	if _, err := New(FlatBuffer, 0); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("n=0: err=%v, expected ErrInvalidSize", err)
	}
	if _, err := New(CurveOrdered, 12); !errors.Is(err, ErrNotPowerOfTwo) {
		t.Fatalf("hilbert n=12: err=%v, expected ErrNotPowerOfTwo", err)
	}
	if _, err := New(CurveTable, 100); !errors.Is(err, ErrNotPowerOfTwo) {
		t.Fatalf("hilbert-table n=100: err=%v, expected ErrNotPowerOfTwo", err)
	}
	if _, err := New(Layout(42), 8); !errors.Is(err, ErrUnknownLayout) {
		t.Fatalf("layout 42: err=%v, expected ErrUnknownLayout", err)
	}
	for _, l := range []Layout{NestedRows, FlatBuffer} {
		if _, err := New(l, 12); err != nil {
			t.Fatalf("%s n=12: unexpected error %v", l, err)
		}
	}
}

func TestLayoutsAgreeOnSnapshot(t *testing.T) {
	const n = 16
	grids := make([]*Grid, 0, len(Layouts()))
	for _, l := range Layouts() {
		grids = append(grids, MustNew(l, n))
	}
	rng := core.NewRNG(5)
	for i := 0; i < 500; i++ {
		r := rng.Source().IntN(n)
		c := rng.Source().IntN(n)
		v := rng.Bool()
		for _, g := range grids {
			g.Set(r, c, v)
		}
	}
	want := grids[0].Snapshot()
	for _, g := range grids[1:] {
		if got := g.Snapshot(); !got.Equal(want) {
			t.Fatalf("%s snapshot differs from %s", g.Layout(), grids[0].Layout())
		}
	}

	rows := [][]uint8{{1, 0, 7}, {}, {0, 0, 0, 0, 1}}
	for _, g := range grids {
		g.Load(rows)
	}
	want = grids[0].Snapshot()
	for _, g := range grids[1:] {
		if got := g.Snapshot(); !got.Equal(want) {
			t.Fatalf("%s snapshot differs after Load", g.Layout())
		}
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	forEachLayout(t, 8, func(t *testing.T, g *Grid) {
		g.Set(3, 4, true)
		snap := g.Snapshot()
		g.Set(3, 4, false)
		g.Set(0, 0, true)
		if snap.At(3, 4) != 1 || snap.At(0, 0) != 0 {
			t.Fatal("snapshot changed after grid mutation")
		}
		snap.Pix[5] = 1
		if g.Get(0, 5) {
			t.Fatal("grid changed after snapshot mutation")
		}
	})
}

func TestLoadOverwritesAndPads(t *testing.T) {
	forEachLayout(t, 4, func(t *testing.T, g *Grid) {
		g.Set(3, 3, true)
		g.Set(0, 1, true)
		g.Load([][]uint8{
			{0, 0, 255},
			{1, 1, 1, 1, 1, 1},
			nil,
			{0, 9},
			{1, 1, 1, 1},
		})
		want := [][]uint8{
			{0, 0, 1, 0},
			{1, 1, 1, 1},
			{0, 0, 0, 0},
			{0, 1, 0, 0},
		}
		snap := g.Snapshot()
		for r := range want {
			for c := range want[r] {
				if snap.At(r, c) != want[r][c] {
					t.Fatalf("cell (%d,%d) = %d, expected %d", r, c, snap.At(r, c), want[r][c])
				}
			}
		}
		g.Load(nil)
		if snap := g.Snapshot(); snap.Population() != 0 {
			t.Fatalf("Load(nil) left %d cells alive", snap.Population())
		}
	})
}

func TestRenderText(t *testing.T) {
	forEachLayout(t, 8, func(t *testing.T, g *Grid) {
		g.Set(0, 0, true)
		g.Set(7, 7, true)
		g.Set(3, 5, true)
		out := g.RenderText()
		if got, want := len(out), 8*8*2+7; got != want {
			t.Fatalf("render length %d, expected %d", got, want)
		}
		lines := strings.Split(out, "\n")
		if len(lines) != 8 {
			t.Fatalf("render has %d lines, expected 8", len(lines))
		}
		if !strings.HasPrefix(lines[0], aliveGlyph+deadGlyph) {
			t.Fatalf("first line %q does not start with an alive cell", lines[0])
		}
		if !strings.HasSuffix(lines[7], deadGlyph+aliveGlyph) {
			t.Fatalf("last line %q does not end with an alive cell", lines[7])
		}
		if strings.HasSuffix(out, "\n") {
			t.Fatal("render must not end with a separator")
		}
	})
}

func TestRenderTextByteLength(t *testing.T) {
	for _, n := range []int{1, 4, 16} {
		for _, l := range Layouts() {
			g := MustNew(l, n)
			g.Set(0, 0, true)
			g.Set(n-1, n/2, true)
			if got, want := len(g.RenderText()), n*n*2+n-1; got != want {
				t.Fatalf("%s n=%d: render length %d, expected %d", l, n, got, want)
			}
		}
	}
}

func TestParseLayout(t *testing.T) {
	for _, l := range Layouts() {
		got, err := ParseLayout(l.String())
		if err != nil || got != l {
			t.Fatalf("ParseLayout(%q) = %v, %v", l.String(), got, err)
		}
	}
	if _, err := ParseLayout("zigzag"); !errors.Is(err, ErrUnknownLayout) {
		t.Fatalf("unknown name: err=%v", err)
	}
	ls, err := ParseLayouts("flat, hilbert")
	if err != nil || len(ls) != 2 || ls[0] != FlatBuffer || ls[1] != CurveOrdered {
		t.Fatalf("ParseLayouts = %v, %v", ls, err)
	}
	all, err := ParseLayouts("all")
	if err != nil || len(all) != len(Layouts()) {
		t.Fatalf("ParseLayouts(all) = %v, %v", all, err)
	}
	if _, err := ParseLayouts(" , "); err == nil {
		t.Fatal("empty list accepted")
	}
	if !CurveTable.Curved() || FlatBuffer.Curved() {
		t.Fatal("Curved misreports")
	}
}
