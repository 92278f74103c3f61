// Package ggrasterizer provides a rasterizer implementation using the gg library.
package ggrasterizer

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/user/framefit/pkg/ports"
)

// Rasterizer implements ports.Rasterizer using the gg library.
type Rasterizer struct{}

// New creates a new Rasterizer.
func New() *Rasterizer {
	return &Rasterizer{}
}

// NewFrame creates a frame with the given dimensions. gg contexts start
// fully transparent, which is the cleared state the compose stage expects.
func (r *Rasterizer) NewFrame(width, height int) ports.Frame {
	return &Frame{dc: gg.NewContext(width, height)}
}

var _ ports.Rasterizer = (*Rasterizer)(nil)

// Frame implements ports.Frame using gg.Context.
type Frame struct {
	dc *gg.Context
}

// Fill paints the entire frame with the given color.
func (f *Frame) Fill(c color.Color) {
	f.dc.SetColor(c)
	f.dc.Clear()
}

// DrawImageScaled resamples the image to the placement size with a Lanczos
// filter and draws it at the placement offset. gg clips anything outside
// the frame bounds, so oversized placements crop implicitly.
func (f *Frame) DrawImageScaled(img image.Image, x, y, width, height float64) {
	w := int(math.Round(width))
	h := int(math.Round(height))
	if w <= 0 || h <= 0 {
		return
	}

	scaled := imaging.Resize(img, w, h, imaging.Lanczos)
	f.dc.DrawImage(scaled, int(math.Round(x)), int(math.Round(y)))
}

// Image returns the composited frame.
func (f *Frame) Image() image.Image {
	return f.dc.Image()
}

var _ ports.Frame = (*Frame)(nil)
