package render

import (
	"bytes"
	"image/color"
	"image/gif"
	"path/filepath"
	"testing"

	"layout-life/pkg/core"
)

func sample() core.Bitmap {
	b := core.NewBitmap(4)
	b.Pix[b.Index(0, 0)] = 1
	b.Pix[b.Index(2, 3)] = 1
	return b
}

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{1, 0}
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, cells, color.White, color.Black)
	want := []byte{255, 255, 255, 255, 0, 0, 0, 255}
	if !bytes.Equal(buf, want) {
		t.Fatalf("buf = %v, expected %v", buf, want)
	}
}

func TestPalettedScales(t *testing.T) {
	img := Paletted(sample(), 3)
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 12 {
		t.Fatalf("bounds %v, expected 12x12", b)
	}
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			want := uint8(0)
			if (y/3 == 0 && x/3 == 0) || (y/3 == 2 && x/3 == 3) {
				want = 1
			}
			if got := img.ColorIndexAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) index %d, expected %d", x, y, got, want)
			}
		}
	}
}

func TestGIFWriter(t *testing.T) {
	var out bytes.Buffer
	w := NewGIFWriter(&out, 2, 5)
	if err := w.Close(); err == nil {
		t.Fatal("closing an empty GIF must fail")
	}
	for i := 0; i < 3; i++ {
		if err := w.WriteFrame(sample()); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	anim, err := gif.DecodeAll(&out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(anim.Image) != 3 {
		t.Fatalf("%d frames, expected 3", len(anim.Image))
	}
	if anim.Image[0].Bounds().Dx() != 8 {
		t.Fatalf("frame width %d, expected 8", anim.Image[0].Bounds().Dx())
	}
}

func TestAVIWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.avi")
	w, err := NewAVIWriter(path, 4, 4, 10)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2; i++ {
		if err := w.WriteFrame(sample()); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
}
