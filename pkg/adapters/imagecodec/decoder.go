// Package imagecodec provides image decoding and encoding adapters backed
// by the standard library codecs plus libwebp for WebP output.
package imagecodec

import (
	"bytes"
	"fmt"
	"image"

	// Register the decoders for every supported input format with the
	// standard image package.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/user/framefit/pkg/ports"
)

// Decoder implements ports.ImageDecoder via image.Decode with all
// supported format decoders registered.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode interprets data as an image, auto-detecting the format.
func (d *Decoder) Decode(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

var _ ports.ImageDecoder = (*Decoder)(nil)
