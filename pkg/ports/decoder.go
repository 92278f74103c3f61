// Package ports defines interfaces for external dependencies.
package ports

import (
	"image"
)

// ImageDecoder abstracts decoding raw image bytes.
type ImageDecoder interface {
	// Decode interprets data as an image and returns it.
	// The decoded image exposes its natural dimensions through Bounds.
	Decode(data []byte) (image.Image, error)
}
