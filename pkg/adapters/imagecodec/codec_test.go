package imagecodec

import (
	"bytes"
	"image"
	"image/png"
	"testing"

	"github.com/user/framefit/pkg/ports"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
	return buf.Bytes()
}

// TestDecoder_Decode tests format auto-detection and dimension exposure.
func TestDecoder_Decode(t *testing.T) {
	decoder := NewDecoder()

	img, err := decoder.Decode(pngBytes(t, 12, 7))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 12 || bounds.Dy() != 7 {
		t.Errorf("expected 12x7, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

// TestDecoder_Decode_Garbage tests that unrecognizable bytes fail.
func TestDecoder_Decode_Garbage(t *testing.T) {
	decoder := NewDecoder()
	if _, err := decoder.Decode([]byte("definitely not an image")); err == nil {
		t.Fatal("expected decode error")
	}
}

// TestEncoder_PNG tests PNG output and that it survives a decode.
func TestEncoder_PNG(t *testing.T) {
	encoder := NewEncoder()
	img := image.NewRGBA(image.Rect(0, 0, 6, 4))

	data, err := encoder.Encode(img, ports.FormatPNG, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	if decoded.Bounds().Dx() != 6 || decoded.Bounds().Dy() != 4 {
		t.Errorf("round trip changed dimensions: %v", decoded.Bounds())
	}
}

// TestEncoder_JPEG tests JPEG output carries the JFIF magic.
func TestEncoder_JPEG(t *testing.T) {
	encoder := NewEncoder()
	img := image.NewRGBA(image.Rect(0, 0, 6, 4))

	data, err := encoder.Encode(img, ports.FormatJPEG, 0.9)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) < 2 || data[0] != 0xFF || data[1] != 0xD8 {
		t.Error("expected JPEG magic bytes")
	}
}

// TestScaleQuality tests the [0, 1] to 1-100 mapping and clamping.
func TestScaleQuality(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{0, 1},
		{0.005, 1},
		{0.5, 50},
		{0.92, 92},
		{1, 100},
		{1.5, 100},
		{-1, 1},
	}
	for _, tt := range tests {
		if got := scaleQuality(tt.in); got != tt.want {
			t.Errorf("scaleQuality(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
