// Package hilbert maps points of an n×n lattice onto positions along a 2D
// Hilbert curve. n must be a power of two.
package hilbert

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Index returns the distance d in [0, n*n) of point (x, y) along the Hilbert
// curve covering an n×n lattice. x and y must lie in [0, n).
func Index(n, x, y int) int {
	d := 0
	for s := n >> 1; s > 0; s >>= 1 {
		rx, ry := 0, 0
		if x&s != 0 {
			rx = 1
		}
		if y&s != 0 {
			ry = 1
		}
		d += s * s * ((3 * rx) ^ ry)
		if ry == 0 {
			if rx == 1 {
				x = n - 1 - x
				y = n - 1 - y
			}
			x, y = y, x
		}
	}
	return d
}

// Point is the inverse of Index: it returns the lattice point at distance d.
func Point(n, d int) (x, y int) {
	t := d
	for s := 1; s < n; s <<= 1 {
		rx := 1 & (t >> 1)
		ry := 1 & (t ^ rx)
		if ry == 0 {
			if rx == 1 {
				x = s - 1 - x
				y = s - 1 - y
			}
			x, y = y, x
		}
		x += s * rx
		y += s * ry
		t >>= 2
	}
	return x, y
}

// Table is a precomputed row-major lookup of Index for a fixed n. It trades
// n*n*4 bytes for a single load per access.
type Table struct {
	n   int
	idx []int32
}

// NewTable builds the lookup for an n×n lattice.
func NewTable(n int) Table {
	idx := make([]int32, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			idx[y*n+x] = int32(Index(n, x, y))
		}
	}
	return Table{n: n, idx: idx}
}

// Size returns the lattice side the table was built for.
func (t Table) Size() int { return t.n }

// Index returns the curve distance of (x, y).
func (t Table) Index(x, y int) int { return int(t.idx[y*t.n+x]) }
