package ports

import (
	"image"
	"image/color"
)

// Rasterizer abstracts frame creation and compositing.
type Rasterizer interface {
	// NewFrame creates a frame with the specified pixel dimensions.
	// The frame starts fully transparent.
	NewFrame(width, height int) Frame
}

// Frame provides drawing operations for a single output frame.
type Frame interface {
	// Fill paints the entire frame with the given color.
	Fill(c color.Color)

	// DrawImageScaled draws an image scaled to the given size at the given
	// offset, resampling with a high-quality filter. Placement coordinates
	// may be negative or extend past the frame; anything outside the frame
	// bounds is clipped.
	DrawImageScaled(img image.Image, x, y, width, height float64)

	// Image returns the composited frame.
	Image() image.Image
}
