package encode

import (
	"context"
	"errors"
	"fmt"
	"image"
	"testing"

	"github.com/user/framefit/pkg/mocks"
	"github.com/user/framefit/pkg/pipeline"
	"github.com/user/framefit/pkg/ports"
)

func baseInput() pipeline.EncodeInput {
	return pipeline.EncodeInput{
		Image:   image.NewRGBA(image.Rect(0, 0, 10, 10)),
		Format:  ports.FormatJPEG,
		Quality: 0.8,
	}
}

// TestStage_Execute_PassesFormatAndQuality tests that format and quality
// reach the encoder unchanged.
func TestStage_Execute_PassesFormatAndQuality(t *testing.T) {
	encoder := &mocks.ImageEncoder{}
	stage := NewStage(encoder, &mocks.Logger{})

	result, err := stage.Execute(context.Background(), baseInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Data) == 0 {
		t.Error("expected encoded bytes")
	}

	if len(encoder.EncodeCalls) != 1 {
		t.Fatalf("expected 1 encode call, got %d", len(encoder.EncodeCalls))
	}
	call := encoder.EncodeCalls[0]
	if call.Format != ports.FormatJPEG {
		t.Errorf("format: expected JPEG, got %v", call.Format)
	}
	if call.Quality != 0.8 {
		t.Errorf("quality: expected 0.8, got %v", call.Quality)
	}
}

// TestStage_Execute_EncoderError tests that encoder errors map to
// ErrEncodeFailed.
func TestStage_Execute_EncoderError(t *testing.T) {
	encoder := &mocks.ImageEncoder{
		EncodeFunc: func(img image.Image, format ports.ImageFormat, quality float64) ([]byte, error) {
			return nil, fmt.Errorf("codec exploded")
		},
	}
	stage := NewStage(encoder, &mocks.Logger{})

	_, err := stage.Execute(context.Background(), baseInput())
	if !errors.Is(err, pipeline.ErrEncodeFailed) {
		t.Errorf("expected ErrEncodeFailed, got %v", err)
	}
}

// TestStage_Execute_EmptyOutput tests that an encoder returning no bytes
// yields ErrEncodeFailed.
func TestStage_Execute_EmptyOutput(t *testing.T) {
	encoder := &mocks.ImageEncoder{
		EncodeFunc: func(img image.Image, format ports.ImageFormat, quality float64) ([]byte, error) {
			return nil, nil
		},
	}
	stage := NewStage(encoder, &mocks.Logger{})

	_, err := stage.Execute(context.Background(), baseInput())
	if !errors.Is(err, pipeline.ErrEncodeFailed) {
		t.Errorf("expected ErrEncodeFailed, got %v", err)
	}
}

// TestStage_Execute_CanceledContext tests that a canceled context aborts
// before the encoder runs.
func TestStage_Execute_CanceledContext(t *testing.T) {
	encoder := &mocks.ImageEncoder{}
	stage := NewStage(encoder, &mocks.Logger{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := stage.Execute(ctx, baseInput()); err == nil {
		t.Fatal("expected context error")
	}
	if len(encoder.EncodeCalls) != 0 {
		t.Errorf("expected no encode calls, got %d", len(encoder.EncodeCalls))
	}
}
