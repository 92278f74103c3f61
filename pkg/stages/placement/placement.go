// Package placement implements the placement resolution stage.
package placement

import (
	"context"
	"fmt"

	"github.com/user/framefit/pkg/pipeline"
)

// Stage resolves where the source image is drawn within the target frame.
// This is a pure function with no external dependencies.
type Stage struct{}

// NewStage creates a new placement stage.
func NewStage() *Stage {
	return &Stage{}
}

// Execute resolves the placement rectangle for the input.
func (s *Stage) Execute(ctx context.Context, input pipeline.PlacementInput) (pipeline.PlacementResult, error) {
	rect, err := ComputePlacement(input.Source, input.Target, input.Fit)
	if err != nil {
		return pipeline.PlacementResult{}, err
	}
	return pipeline.PlacementResult{Rect: rect}, nil
}

// ComputePlacement resolves the offset and scaled size of a source
// rectangle within a target frame for the given fit mode. It is exposed as
// a standalone function for testing and reuse.
//
// Contain keeps the whole source visible inside the frame; Cover fills the
// frame and lets the rasterizer crop the excess; Stretch maps the source
// onto the full frame. Contain and Cover preserve aspect ratio and center
// the result. Deterministic and safe for concurrent use.
func ComputePlacement(src, dst pipeline.Dimension, fit pipeline.FitMode) (pipeline.PlacementRect, error) {
	// Guard against division by zero in the ratio math, even though the
	// settings layer validates target dimensions first.
	if !src.Positive() || !dst.Positive() {
		return pipeline.PlacementRect{}, fmt.Errorf("%w: source %dx%d, target %dx%d",
			pipeline.ErrInvalidDimensions, src.Width, src.Height, dst.Width, dst.Height)
	}

	targetW := float64(dst.Width)
	targetH := float64(dst.Height)

	if fit == pipeline.FitStretch {
		return pipeline.PlacementRect{X: 0, Y: 0, Width: targetW, Height: targetH}, nil
	}

	srcRatio := float64(src.Width) / float64(src.Height)
	dstRatio := targetW / targetH

	var drawW, drawH float64
	switch fit {
	case pipeline.FitCover:
		if srcRatio > dstRatio {
			// Source relatively wider: match height, crop left/right.
			drawH = targetH
			drawW = targetH * srcRatio
		} else {
			// Match width, crop top/bottom. Equal ratios land here too;
			// the result is identical either way.
			drawW = targetW
			drawH = targetW / srcRatio
		}
	default: // FitContain
		if srcRatio > dstRatio {
			// Source relatively wider: width-bound, bars top/bottom.
			drawW = targetW
			drawH = targetW / srcRatio
		} else {
			drawH = targetH
			drawW = targetH * srcRatio
		}
	}

	return pipeline.PlacementRect{
		X:      (targetW - drawW) / 2,
		Y:      (targetH - drawH) / 2,
		Width:  drawW,
		Height: drawH,
	}, nil
}
