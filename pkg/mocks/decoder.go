// Package mocks provides mock implementations of the ports interfaces.
package mocks

import (
	"image"
	"sync"

	"github.com/user/framefit/pkg/ports"
)

// ImageDecoder is a mock implementation of ports.ImageDecoder.
type ImageDecoder struct {
	DecodeFunc func(data []byte) (image.Image, error)

	mu sync.Mutex
	// DecodeCalls counts invocations for verification.
	DecodeCalls int
}

func (m *ImageDecoder) Decode(data []byte) (image.Image, error) {
	m.mu.Lock()
	m.DecodeCalls++
	m.mu.Unlock()
	if m.DecodeFunc != nil {
		return m.DecodeFunc(data)
	}
	return image.NewRGBA(image.Rect(0, 0, 100, 100)), nil
}

var _ ports.ImageDecoder = (*ImageDecoder)(nil)
