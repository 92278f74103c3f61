// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/ideamans/go-l10n"

	"github.com/user/framefit/pkg/pipeline"
	"github.com/user/framefit/pkg/ports"
)

// ProcessInput contains one processing request.
type ProcessInput struct {
	// Data is the raw source image bytes.
	Data []byte
	// Filename is the original source filename; only its base name matters
	// for deriving the output name.
	Filename string
	// Settings controls target size, fit, background, format and quality.
	Settings pipeline.Settings
}

// ProcessResult is the output of one processing invocation. Each successful
// call allocates exactly one encoded buffer, owned by the caller; nothing is
// shared between invocations.
type ProcessResult struct {
	Data     []byte
	Width    int
	Height   int
	Filename string
}

// Processor runs the fit-and-encode pipeline. It holds no per-invocation
// state, so a single Processor may serve concurrent Process calls.
type Processor struct {
	decoder   ports.ImageDecoder
	placement pipeline.Stage[pipeline.PlacementInput, pipeline.PlacementResult]
	compose   pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult]
	encode    pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	logger    ports.Logger
}

// New creates a new Processor.
func New(
	decoder ports.ImageDecoder,
	placement pipeline.Stage[pipeline.PlacementInput, pipeline.PlacementResult],
	compose pipeline.Stage[pipeline.ComposeInput, pipeline.ComposeResult],
	encode pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	logger ports.Logger,
) *Processor {
	return &Processor{
		decoder:   decoder,
		placement: placement,
		compose:   compose,
		encode:    encode,
		logger:    logger,
	}
}

// Process runs the complete pipeline for a single image: resolve target
// dimensions, decode, resolve placement, composite, encode, derive the
// output filename. Any failure is terminal; no partial result is returned.
func (p *Processor) Process(ctx context.Context, input ProcessInput) (ProcessResult, error) {
	// 1. Resolve target dimensions before any drawing work, so invalid
	// custom sizes never reach the rasterizer or encoder.
	target, err := input.Settings.Target.Dimensions()
	if err != nil {
		p.logger.Error(l10n.F("Invalid target size: %s", err))
		return ProcessResult{}, fmt.Errorf("resolve target: %w", err)
	}
	p.logger.Debug(l10n.F("Target resolved to %dx%d (%s)", target.Width, target.Height, input.Settings.Target.Label()))

	// 2. Decode the source.
	source, err := p.decoder.Decode(input.Data)
	if err != nil {
		p.logger.Error(l10n.F("Failed to decode source image: %s", err))
		return ProcessResult{}, fmt.Errorf("%w: %v", pipeline.ErrDecodeFailed, err)
	}
	bounds := source.Bounds()
	sourceDims := pipeline.Dimension{Width: bounds.Dx(), Height: bounds.Dy()}
	p.logger.Info(l10n.F("Processing %dx%d image into %dx%d frame", sourceDims.Width, sourceDims.Height, target.Width, target.Height))

	// 3. Resolve placement.
	placed, err := p.placement.Execute(ctx, pipeline.PlacementInput{
		Source: sourceDims,
		Target: target,
		Fit:    input.Settings.Fit,
	})
	if err != nil {
		p.logger.Error(l10n.F("Failed to resolve placement: %s", err))
		return ProcessResult{}, fmt.Errorf("placement stage: %w", err)
	}

	// 4. Composite onto the background.
	composed, err := p.compose.Execute(ctx, pipeline.ComposeInput{
		Source:     source,
		Target:     target,
		Placement:  placed.Rect,
		Background: input.Settings.Background,
		Format:     input.Settings.Format,
	})
	if err != nil {
		p.logger.Error(l10n.F("Failed to composite frame: %s", err))
		return ProcessResult{}, fmt.Errorf("compose stage: %w", err)
	}

	// 5. Encode.
	encoded, err := p.encode.Execute(ctx, pipeline.EncodeInput{
		Image:   composed.Image,
		Format:  input.Settings.Format,
		Quality: input.Settings.Quality,
	})
	if err != nil {
		p.logger.Error(l10n.F("Failed to encode frame: %s", err))
		return ProcessResult{}, fmt.Errorf("encode stage: %w", err)
	}

	// 6. Derive the output filename.
	name := pipeline.DeriveFilename(input.Filename, target, input.Settings.Target.Label(), input.Settings.Format)
	p.logger.Info(l10n.F("Produced %s (%d bytes)", name, len(encoded.Data)))

	return ProcessResult{
		Data:     encoded.Data,
		Width:    target.Width,
		Height:   target.Height,
		Filename: name,
	}, nil
}
