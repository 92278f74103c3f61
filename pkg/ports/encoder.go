package ports

import (
	"image"
)

// ImageFormat specifies an image encoding format.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
	FormatJPEG
	FormatWebP
)

// String returns the canonical format name.
func (f ImageFormat) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatWebP:
		return "webp"
	default:
		return "unknown"
	}
}

// MIME returns the encoder MIME identifier for the format.
func (f ImageFormat) MIME() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatJPEG:
		return "image/jpeg"
	case FormatWebP:
		return "image/webp"
	default:
		return ""
	}
}

// Extension returns the canonical file extension, without the dot.
func (f ImageFormat) Extension() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpg"
	case FormatWebP:
		return "webp"
	default:
		return ""
	}
}

// SupportsAlpha reports whether the format carries an alpha channel.
func (f ImageFormat) SupportsAlpha() bool {
	return f != FormatJPEG
}

// ImageEncoder abstracts encoding a composited frame.
type ImageEncoder interface {
	// Encode produces encoded bytes in the given format. Quality is in
	// [0, 1] and applies to JPEG and WebP; PNG encoders ignore it.
	Encode(img image.Image, format ImageFormat, quality float64) ([]byte, error)
}
