package imagecodec

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	webpencoder "github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"

	"github.com/user/framefit/pkg/ports"
)

// Encoder implements ports.ImageEncoder. PNG and JPEG use the standard
// library; WebP uses libwebp bindings.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode encodes an image to the specified format. Quality is in [0, 1]
// and is scaled to each codec's native range; PNG ignores it.
func (e *Encoder) Encode(img image.Image, format ports.ImageFormat, quality float64) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	case ports.FormatJPEG:
		opts := &jpeg.Options{Quality: scaleQuality(quality)}
		if err := jpeg.Encode(&buf, img, opts); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatWebP:
		opts, err := webpencoder.NewLossyEncoderOptions(webpencoder.PresetDefault, float32(scaleQuality(quality)))
		if err != nil {
			return nil, fmt.Errorf("webp encoder options: %w", err)
		}
		if err := webp.Encode(&buf, img, opts); err != nil {
			return nil, fmt.Errorf("encode WebP: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %d", format)
	}

	return buf.Bytes(), nil
}

// scaleQuality maps [0, 1] to the 1-100 range the jpeg and libwebp
// encoders expect, clamping out-of-range input.
func scaleQuality(quality float64) int {
	q := int(quality * 100)
	if q < 1 {
		q = 1
	}
	if q > 100 {
		q = 100
	}
	return q
}

var _ ports.ImageEncoder = (*Encoder)(nil)
