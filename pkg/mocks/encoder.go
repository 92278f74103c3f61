package mocks

import (
	"image"
	"sync"

	"github.com/user/framefit/pkg/ports"
)

// ImageEncoder is a mock implementation of ports.ImageEncoder.
type ImageEncoder struct {
	EncodeFunc func(img image.Image, format ports.ImageFormat, quality float64) ([]byte, error)

	mu sync.Mutex
	// EncodeCalls records every call for verification.
	EncodeCalls []EncodeCall
}

// EncodeCall records a call to Encode.
type EncodeCall struct {
	Format  ports.ImageFormat
	Quality float64
}

func (m *ImageEncoder) Encode(img image.Image, format ports.ImageFormat, quality float64) ([]byte, error) {
	m.mu.Lock()
	m.EncodeCalls = append(m.EncodeCalls, EncodeCall{Format: format, Quality: quality})
	m.mu.Unlock()
	if m.EncodeFunc != nil {
		return m.EncodeFunc(img, format, quality)
	}
	// Minimal PNG signature
	return []byte{0x89, 0x50, 0x4E, 0x47}, nil
}

var _ ports.ImageEncoder = (*ImageEncoder)(nil)
