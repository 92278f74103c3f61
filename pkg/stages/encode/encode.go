// Package encode implements the image encoding stage.
package encode

import (
	"context"
	"fmt"

	"github.com/user/framefit/pkg/pipeline"
	"github.com/user/framefit/pkg/ports"
)

// Stage encodes the composited frame through the encoder port.
type Stage struct {
	encoder ports.ImageEncoder
	logger  ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(encoder ports.ImageEncoder, logger ports.Logger) *Stage {
	return &Stage{
		encoder: encoder,
		logger:  logger.WithComponent("encode"),
	}
}

// Execute encodes the frame in the requested format. Quality passes
// through unchanged for JPEG and WebP and is ignored for PNG. An encoder
// that errors or returns no output yields ErrEncodeFailed.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	if err := ctx.Err(); err != nil {
		return pipeline.EncodeResult{}, err
	}

	s.logger.Debug("Encoding as %s (quality %.2f)", input.Format.MIME(), input.Quality)

	data, err := s.encoder.Encode(input.Image, input.Format, input.Quality)
	if err != nil {
		return pipeline.EncodeResult{}, fmt.Errorf("%w: %v", pipeline.ErrEncodeFailed, err)
	}
	if len(data) == 0 {
		return pipeline.EncodeResult{}, fmt.Errorf("%w: encoder returned no output", pipeline.ErrEncodeFailed)
	}

	s.logger.Debug("Encoded %d bytes", len(data))
	return pipeline.EncodeResult{Data: data}, nil
}
