package pipeline

import (
	"image"

	"github.com/user/framefit/pkg/ports"
)

// =============================================================================
// Common Types
// =============================================================================

// Dimension represents width and height in pixels.
type Dimension struct {
	Width  int
	Height int
}

// Positive reports whether both sides are strictly positive.
func (d Dimension) Positive() bool {
	return d.Width > 0 && d.Height > 0
}

// PlacementRect is the computed offset and size at which the source image
// is drawn within the target frame. Offsets may be negative and the size
// may exceed the frame for Cover; the rasterizer clips during drawing.
type PlacementRect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// =============================================================================
// Placement Stage Types
// =============================================================================

// PlacementInput contains parameters for placement resolution.
type PlacementInput struct {
	Source Dimension // Natural size of the decoded source image
	Target Dimension // Resolved target frame size
	Fit    FitMode
}

// PlacementResult contains the resolved placement rectangle.
type PlacementResult struct {
	Rect PlacementRect
}

// =============================================================================
// Compose Stage Types
// =============================================================================

// ComposeInput contains parameters for frame composition.
type ComposeInput struct {
	Source     image.Image
	Target     Dimension
	Placement  PlacementRect
	Background BackgroundFill
	// Format decides how a transparent background is resolved; it does not
	// affect drawing otherwise.
	Format ports.ImageFormat
}

// ComposeResult contains the composited frame.
type ComposeResult struct {
	Image image.Image
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// EncodeInput contains parameters for image encoding.
type EncodeInput struct {
	Image   image.Image
	Format  ports.ImageFormat
	Quality float64 // In [0, 1]; ignored for PNG
}

// EncodeResult contains the encoded image.
type EncodeResult struct {
	Data []byte
}
