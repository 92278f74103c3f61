// Package compose implements the frame composition stage.
package compose

import (
	"context"

	"github.com/user/framefit/pkg/pipeline"
	"github.com/user/framefit/pkg/ports"
)

// Stage composites the source image onto a background frame.
type Stage struct {
	rasterizer ports.Rasterizer
	logger     ports.Logger
}

// NewStage creates a new compose stage.
func NewStage(rasterizer ports.Rasterizer, logger ports.Logger) *Stage {
	return &Stage{
		rasterizer: rasterizer,
		logger:     logger.WithComponent("compose"),
	}
}

// Execute fills the background and draws the source scaled into the
// placement rectangle. A transparent background with an alpha-less output
// format degrades to opaque black; a transparent background otherwise
// leaves the frame cleared so alpha is preserved. Content outside the frame
// is cropped by the rasterizer, which makes Cover cropping implicit in the
// placement geometry.
func (s *Stage) Execute(ctx context.Context, input pipeline.ComposeInput) (pipeline.ComposeResult, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.ComposeResult{}, err
	}

	frame := s.rasterizer.NewFrame(input.Target.Width, input.Target.Height)

	bg := input.Background.Effective(input.Format)
	if bg.Transparent {
		s.logger.Debug("Keeping transparent background")
	} else {
		s.logger.Debug("Filling %dx%d frame", input.Target.Width, input.Target.Height)
		frame.Fill(bg.Color)
	}

	rect := input.Placement
	s.logger.Debug("Drawing source at (%.1f, %.1f) size %.1fx%.1f", rect.X, rect.Y, rect.Width, rect.Height)
	frame.DrawImageScaled(input.Source, rect.X, rect.Y, rect.Width, rect.Height)

	return pipeline.ComposeResult{Image: frame.Image()}, nil
}
