package mocks

import (
	"image"
	"image/color"
	"sync"

	"github.com/user/framefit/pkg/ports"
)

// Rasterizer is a mock implementation of ports.Rasterizer. It is safe for
// concurrent use so tests can exercise overlapping invocations.
type Rasterizer struct {
	NewFrameFunc func(width, height int) ports.Frame

	mu sync.Mutex
	// Frames records every frame handed out, newest last.
	Frames []*Frame
}

func (m *Rasterizer) NewFrame(width, height int) ports.Frame {
	if m.NewFrameFunc != nil {
		return m.NewFrameFunc(width, height)
	}
	frame := &Frame{Width: width, Height: height}
	m.mu.Lock()
	m.Frames = append(m.Frames, frame)
	m.mu.Unlock()
	return frame
}

var _ ports.Rasterizer = (*Rasterizer)(nil)

// Frame is a mock implementation of ports.Frame that records calls.
type Frame struct {
	Width  int
	Height int

	mu        sync.Mutex
	FillCalls []color.Color
	DrawCalls []DrawCall
}

// DrawCall records a call to DrawImageScaled.
type DrawCall struct {
	Image  image.Image
	X      float64
	Y      float64
	Width  float64
	Height float64
}

func (m *Frame) Fill(c color.Color) {
	m.mu.Lock()
	m.FillCalls = append(m.FillCalls, c)
	m.mu.Unlock()
}

func (m *Frame) DrawImageScaled(img image.Image, x, y, width, height float64) {
	m.mu.Lock()
	m.DrawCalls = append(m.DrawCalls, DrawCall{Image: img, X: x, Y: y, Width: width, Height: height})
	m.mu.Unlock()
}

func (m *Frame) Image() image.Image {
	return image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
}

var _ ports.Frame = (*Frame)(nil)
