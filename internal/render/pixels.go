package render

import (
	"image"
	"image/color"

	"layout-life/pkg/core"
)

// Palette maps cell value 0 to white and 1 to black.
var Palette = color.Palette{color.White, color.Black}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Paletted converts a bitmap into an indexed image using Palette, with each
// cell drawn as a scale×scale block.
func Paletted(b core.Bitmap, scale int) *image.Paletted {
	if scale < 1 {
		scale = 1
	}
	side := b.N * scale
	img := image.NewPaletted(image.Rect(0, 0, side, side), Palette)
	for y := 0; y < side; y++ {
		row := b.Row(y / scale)
		line := img.Pix[y*img.Stride : y*img.Stride+side]
		for x := range line {
			if row[x/scale] != 0 {
				line[x] = 1
			}
		}
	}
	return img
}
