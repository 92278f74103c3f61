package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"image"
	"testing"

	"github.com/user/framefit/pkg/mocks"
	"github.com/user/framefit/pkg/pipeline"
	"github.com/user/framefit/pkg/ports"
	"github.com/user/framefit/pkg/stages/compose"
	"github.com/user/framefit/pkg/stages/encode"
	"github.com/user/framefit/pkg/stages/placement"
)

// harness bundles a Processor with its mocks.
type harness struct {
	processor  *Processor
	decoder    *mocks.ImageDecoder
	rasterizer *mocks.Rasterizer
	encoder    *mocks.ImageEncoder
}

func newHarness() *harness {
	log := &mocks.Logger{}
	decoder := &mocks.ImageDecoder{}
	rasterizer := &mocks.Rasterizer{}
	encoder := &mocks.ImageEncoder{}

	processor := New(
		decoder,
		placement.NewStage(),
		compose.NewStage(rasterizer, log),
		encode.NewStage(encoder, log),
		log,
	)
	return &harness{processor: processor, decoder: decoder, rasterizer: rasterizer, encoder: encoder}
}

func baseInput() ProcessInput {
	settings := pipeline.DefaultSettings()
	settings.Format = ports.FormatJPEG
	settings.Quality = 0.85
	return ProcessInput{
		Data:     []byte{0xff, 0xd8},
		Filename: "photo.png",
		Settings: settings,
	}
}

// TestProcessor_Process tests the complete pipeline against the mocks.
func TestProcessor_Process(t *testing.T) {
	h := newHarness()
	h.decoder.DecodeFunc = func(data []byte) (image.Image, error) {
		return image.NewRGBA(image.Rect(0, 0, 4000, 2000)), nil
	}

	input := baseInput()
	input.Settings.Target = pipeline.PresetFHD1080

	result, err := h.processor.Process(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Width != 1920 || result.Height != 1080 {
		t.Errorf("result size: expected 1920x1080, got %dx%d", result.Width, result.Height)
	}
	if result.Filename != "photo_1920x1080_1080pFHD.jpg" {
		t.Errorf("filename: got %q", result.Filename)
	}
	if len(result.Data) == 0 {
		t.Error("expected encoded bytes")
	}

	// Contain, source ratio 2.0 into 16:9: width-bound with bars.
	if len(h.rasterizer.Frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(h.rasterizer.Frames))
	}
	draw := h.rasterizer.Frames[0].DrawCalls[0]
	if draw.X != 0 || draw.Y != 60 || draw.Width != 1920 || draw.Height != 960 {
		t.Errorf("unexpected placement: %+v", draw)
	}

	if len(h.encoder.EncodeCalls) != 1 {
		t.Fatalf("expected 1 encode call, got %d", len(h.encoder.EncodeCalls))
	}
	call := h.encoder.EncodeCalls[0]
	if call.Format != ports.FormatJPEG || call.Quality != 0.85 {
		t.Errorf("unexpected encode call: %+v", call)
	}
}

// TestProcessor_Process_CustomSize tests a custom target size end to end.
func TestProcessor_Process_CustomSize(t *testing.T) {
	h := newHarness()

	input := baseInput()
	input.Settings.Target = pipeline.CustomSize{Width: 640, Height: 480}
	input.Settings.Format = ports.FormatPNG

	result, err := h.processor.Process(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Width != 640 || result.Height != 480 {
		t.Errorf("result size: expected 640x480, got %dx%d", result.Width, result.Height)
	}
	if result.Filename != "photo_640x480_Custom.png" {
		t.Errorf("filename: got %q", result.Filename)
	}
}

// TestProcessor_Process_InvalidCustomSize tests that invalid custom
// dimensions fail before any decode or drawing work.
func TestProcessor_Process_InvalidCustomSize(t *testing.T) {
	for _, target := range []pipeline.CustomSize{
		{Width: 0, Height: 100},
		{Width: 100, Height: -5},
	} {
		h := newHarness()
		input := baseInput()
		input.Settings.Target = target

		_, err := h.processor.Process(context.Background(), input)
		if !errors.Is(err, pipeline.ErrInvalidCustomDimensions) {
			t.Errorf("%+v: expected ErrInvalidCustomDimensions, got %v", target, err)
		}
		if h.decoder.DecodeCalls != 0 {
			t.Errorf("%+v: decode ran before validation", target)
		}
		if len(h.rasterizer.Frames) != 0 {
			t.Errorf("%+v: drawing ran despite invalid settings", target)
		}
	}
}

// TestProcessor_Process_DecodeFailed tests decode failure mapping.
func TestProcessor_Process_DecodeFailed(t *testing.T) {
	h := newHarness()
	h.decoder.DecodeFunc = func(data []byte) (image.Image, error) {
		return nil, fmt.Errorf("not an image")
	}

	_, err := h.processor.Process(context.Background(), baseInput())
	if !errors.Is(err, pipeline.ErrDecodeFailed) {
		t.Errorf("expected ErrDecodeFailed, got %v", err)
	}
	if len(h.encoder.EncodeCalls) != 0 {
		t.Error("encoder ran despite decode failure")
	}
}

// TestProcessor_Process_ZeroSizeSource tests that a degenerate decoded
// image is rejected by the placement guard.
func TestProcessor_Process_ZeroSizeSource(t *testing.T) {
	h := newHarness()
	h.decoder.DecodeFunc = func(data []byte) (image.Image, error) {
		return image.NewRGBA(image.Rect(0, 0, 0, 0)), nil
	}

	_, err := h.processor.Process(context.Background(), baseInput())
	if !errors.Is(err, pipeline.ErrInvalidDimensions) {
		t.Errorf("expected ErrInvalidDimensions, got %v", err)
	}
}

// TestProcessor_Process_EncodeFailed tests encode failure mapping and that
// no partial result escapes.
func TestProcessor_Process_EncodeFailed(t *testing.T) {
	h := newHarness()
	h.encoder.EncodeFunc = func(img image.Image, format ports.ImageFormat, quality float64) ([]byte, error) {
		return nil, nil
	}

	result, err := h.processor.Process(context.Background(), baseInput())
	if !errors.Is(err, pipeline.ErrEncodeFailed) {
		t.Errorf("expected ErrEncodeFailed, got %v", err)
	}
	if result.Data != nil || result.Filename != "" {
		t.Errorf("expected zero result on failure, got %+v", result)
	}
}

// TestProcessor_Process_ConcurrentInvocations tests that one Processor can
// serve overlapping invocations without shared state.
func TestProcessor_Process_ConcurrentInvocations(t *testing.T) {
	h := newHarness()

	done := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func() {
			_, err := h.processor.Process(context.Background(), baseInput())
			done <- err
		}()
	}
	for i := 0; i < 8; i++ {
		if err := <-done; err != nil {
			t.Errorf("invocation %d: unexpected error: %v", i, err)
		}
	}
}
