// Package encode implements the image encoding stage.
package encode

import (
	"context"
	"errors"
	"fmt"

	"github.com/user/pixelfx/pkg/pipeline"
	"github.com/user/pixelfx/pkg/ports"
)

// ErrNoBuffer is returned when there is nothing to encode.
var ErrNoBuffer = errors.New("no buffer to encode")

// Stage encodes a pixel buffer into an image file format.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new encode stage.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("encode"),
	}
}

// Execute encodes the buffer.
func (s *Stage) Execute(ctx context.Context, input pipeline.EncodeInput) (pipeline.EncodeResult, error) {
	result := pipeline.EncodeResult{}

	if input.Buffer == nil {
		return result, ErrNoBuffer
	}
	if err := input.Buffer.Validate(); err != nil {
		return result, err
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	data, err := s.renderer.EncodeImage(input.Buffer.ToImage(), input.Format, input.Quality)
	if err != nil {
		return result, fmt.Errorf("encode %s: %w", input.Format, err)
	}

	result.Data = data
	result.FileSize = int64(len(data))
	s.logger.Debug("Encoded %s: %d bytes", input.Format, result.FileSize)
	return result, nil
}
