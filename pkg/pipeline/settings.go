package pipeline

import (
	"fmt"
	"image/color"

	"github.com/user/framefit/pkg/ports"
)

// FitMode is the policy for mapping a source rectangle into a target
// rectangle when aspect ratios differ.
type FitMode int

const (
	// FitContain scales the source to fit entirely inside the target,
	// preserving aspect ratio and centering. Background may remain visible
	// on two sides.
	FitContain FitMode = iota
	// FitCover scales the source to fully fill the target, preserving
	// aspect ratio and centering. Excess is cropped.
	FitCover
	// FitStretch maps the source onto the full target rectangle, ignoring
	// aspect ratio.
	FitStretch
)

// String returns the fit mode name.
func (m FitMode) String() string {
	switch m {
	case FitContain:
		return "contain"
	case FitCover:
		return "cover"
	case FitStretch:
		return "stretch"
	default:
		return "unknown"
	}
}

// ParseFitMode parses a fit mode name.
func ParseFitMode(s string) (FitMode, error) {
	switch s {
	case "contain":
		return FitContain, nil
	case "cover":
		return FitCover, nil
	case "stretch":
		return FitStretch, nil
	default:
		return FitContain, fmt.Errorf("unknown fit mode %q", s)
	}
}

// ParseFormat parses an output format name or canonical extension.
func ParseFormat(s string) (ports.ImageFormat, error) {
	switch s {
	case "png":
		return ports.FormatPNG, nil
	case "jpeg", "jpg":
		return ports.FormatJPEG, nil
	case "webp":
		return ports.FormatWebP, nil
	default:
		return ports.FormatPNG, fmt.Errorf("unknown output format %q", s)
	}
}

// TargetSize determines the output frame dimensions. It is either a fixed
// Preset from the catalog or a caller-supplied CustomSize; the two cannot
// carry contradictory values because only CustomSize holds dimensions.
type TargetSize interface {
	// Dimensions returns the target frame size, or
	// ErrInvalidCustomDimensions for a non-positive custom size.
	Dimensions() (Dimension, error)

	// Label returns the human-readable name used in derived filenames.
	Label() string
}

// Preset is a named, fixed target resolution.
type Preset int

const (
	PresetUHD4K Preset = iota
	PresetQHD2K
	PresetFHD1080
	PresetHD720
)

var presetDimensions = map[Preset]Dimension{
	PresetUHD4K:   {Width: 3840, Height: 2160},
	PresetQHD2K:   {Width: 2560, Height: 1440},
	PresetFHD1080: {Width: 1920, Height: 1080},
	PresetHD720:   {Width: 1280, Height: 720},
}

var presetLabels = map[Preset]string{
	PresetUHD4K:   "4K UHD",
	PresetQHD2K:   "2K QHD",
	PresetFHD1080: "1080p FHD",
	PresetHD720:   "720p HD",
}

// Dimensions returns the catalog dimensions for the preset.
func (p Preset) Dimensions() (Dimension, error) {
	d, ok := presetDimensions[p]
	if !ok {
		return Dimension{}, fmt.Errorf("unknown preset %d", p)
	}
	return d, nil
}

// Label returns the preset name.
func (p Preset) Label() string {
	return presetLabels[p]
}

// ParsePreset parses a preset name.
func ParsePreset(s string) (Preset, error) {
	switch s {
	case "4k", "uhd":
		return PresetUHD4K, nil
	case "2k", "qhd":
		return PresetQHD2K, nil
	case "1080p", "fhd":
		return PresetFHD1080, nil
	case "720p", "hd":
		return PresetHD720, nil
	default:
		return PresetFHD1080, fmt.Errorf("unknown preset %q", s)
	}
}

// CustomSize is a caller-supplied target resolution.
type CustomSize struct {
	Width  int
	Height int
}

// Dimensions validates and returns the custom size.
func (c CustomSize) Dimensions() (Dimension, error) {
	if c.Width <= 0 || c.Height <= 0 {
		return Dimension{}, fmt.Errorf("%w: %dx%d", ErrInvalidCustomDimensions, c.Width, c.Height)
	}
	return Dimension{Width: c.Width, Height: c.Height}, nil
}

// Label returns "Custom".
func (c CustomSize) Label() string {
	return "Custom"
}

// BackgroundFill is either a solid color or transparent.
type BackgroundFill struct {
	Transparent bool
	Color       color.Color
}

// TransparentFill returns a transparent background fill.
func TransparentFill() BackgroundFill {
	return BackgroundFill{Transparent: true}
}

// SolidFill returns an opaque background fill with the given color.
func SolidFill(c color.Color) BackgroundFill {
	return BackgroundFill{Color: c}
}

// Effective resolves the fill against the output format. A transparent fill
// combined with a format that has no alpha channel degrades to opaque black.
func (b BackgroundFill) Effective(format ports.ImageFormat) BackgroundFill {
	if b.Transparent && !format.SupportsAlpha() {
		return SolidFill(color.Black)
	}
	return b
}

// Settings aggregates one processing request.
type Settings struct {
	Target     TargetSize
	Format     ports.ImageFormat
	Quality    float64 // In [0, 1]; ignored for PNG
	Fit        FitMode
	Background BackgroundFill
}

// DefaultSettings returns Settings with default values.
func DefaultSettings() Settings {
	return Settings{
		Target:     PresetFHD1080,
		Format:     ports.FormatPNG,
		Quality:    0.92,
		Fit:        FitContain,
		Background: TransparentFill(),
	}
}
