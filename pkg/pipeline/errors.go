package pipeline

import "errors"

var (
	// ErrInvalidDimensions is returned when a source or target dimension
	// reaching the placement step is not strictly positive.
	ErrInvalidDimensions = errors.New("pipeline: invalid dimensions")

	// ErrInvalidCustomDimensions is returned when a custom target size
	// carries a non-positive width or height.
	ErrInvalidCustomDimensions = errors.New("pipeline: invalid custom dimensions")

	// ErrDecodeFailed is returned when the input bytes could not be
	// interpreted as an image.
	ErrDecodeFailed = errors.New("pipeline: decode failed")

	// ErrEncodeFailed is returned when the encoder produced no output.
	ErrEncodeFailed = errors.New("pipeline: encode failed")
)
