package core

// Bitmap is a dense N×N copy of cell values in row-major order. Alive cells
// are 1, dead cells 0. A Bitmap never aliases live grid storage.
type Bitmap struct {
	N   int
	Pix []uint8
}

// NewBitmap allocates an all-dead bitmap of side n.
func NewBitmap(n int) Bitmap {
	if n < 0 {
		n = 0
	}
	return Bitmap{N: n, Pix: make([]uint8, n*n)}
}

// Index returns the linear Pix index for (row, col).
func (b Bitmap) Index(row, col int) int { return row*b.N + col }

// At reports the value stored at (row, col).
func (b Bitmap) At(row, col int) uint8 { return b.Pix[row*b.N+col] }

// Row returns row r as a subslice of Pix.
func (b Bitmap) Row(r int) []uint8 { return b.Pix[r*b.N : (r+1)*b.N] }

// Rows returns the bitmap as row slices sharing Pix, suitable for Load.
func (b Bitmap) Rows() [][]uint8 {
	rows := make([][]uint8, b.N)
	for r := range rows {
		rows[r] = b.Row(r)
	}
	return rows
}

// Population counts the alive cells.
func (b Bitmap) Population() int {
	n := 0
	for _, v := range b.Pix {
		if v != 0 {
			n++
		}
	}
	return n
}

// Equal reports whether both bitmaps have the same side and contents.
func (b Bitmap) Equal(o Bitmap) bool {
	if b.N != o.N || len(b.Pix) != len(o.Pix) {
		return false
	}
	for i, v := range b.Pix {
		if o.Pix[i] != v {
			return false
		}
	}
	return true
}
