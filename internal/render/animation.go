package render

import (
	"bytes"
	"fmt"
	"image/gif"
	"image/jpeg"
	"io"

	"layout-life/pkg/core"

	"github.com/icza/mjpeg"
)

// FrameWriter accepts successive snapshots and turns them into an animation.
type FrameWriter interface {
	WriteFrame(b core.Bitmap) error
	Close() error
}

// GIFWriter buffers frames and encodes a looping GIF on Close.
type GIFWriter struct {
	w     io.Writer
	scale int
	delay int
	anim  gif.GIF
}

// NewGIFWriter returns a writer that emits to w. delay is in 1/100 s.
func NewGIFWriter(w io.Writer, scale, delay int) *GIFWriter {
	return &GIFWriter{w: w, scale: scale, delay: delay}
}

// WriteFrame appends one frame.
func (g *GIFWriter) WriteFrame(b core.Bitmap) error {
	g.anim.Image = append(g.anim.Image, Paletted(b, g.scale))
	g.anim.Delay = append(g.anim.Delay, g.delay)
	return nil
}

// Close encodes the collected frames.
func (g *GIFWriter) Close() error {
	if len(g.anim.Image) == 0 {
		return fmt.Errorf("render: no frames to encode")
	}
	g.anim.LoopCount = 0
	return gif.EncodeAll(g.w, &g.anim)
}

// AVIWriter streams frames as JPEGs into an MJPEG AVI file.
type AVIWriter struct {
	aw    mjpeg.AviWriter
	scale int
	buf   bytes.Buffer
}

// NewAVIWriter creates path sized for an n×n grid drawn at scale.
func NewAVIWriter(path string, n, scale, fps int) (*AVIWriter, error) {
	if scale < 1 {
		scale = 1
	}
	side := int32(n * scale)
	aw, err := mjpeg.New(path, side, side, int32(fps))
	if err != nil {
		return nil, fmt.Errorf("render: open %s: %w", path, err)
	}
	return &AVIWriter{aw: aw, scale: scale}, nil
}

// WriteFrame encodes and appends one frame.
func (a *AVIWriter) WriteFrame(b core.Bitmap) error {
	a.buf.Reset()
	if err := jpeg.Encode(&a.buf, Paletted(b, a.scale), &jpeg.Options{Quality: 90}); err != nil {
		return fmt.Errorf("render: encode frame: %w", err)
	}
	return a.aw.AddFrame(a.buf.Bytes())
}

// Close finalizes the AVI index.
func (a *AVIWriter) Close() error { return a.aw.Close() }
