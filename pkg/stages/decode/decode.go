// Package decode implements the image decoding stage.
package decode

import (
	"context"
	"errors"
	"fmt"

	"github.com/user/pixelfx/pkg/pipeline"
	"github.com/user/pixelfx/pkg/pixbuf"
	"github.com/user/pixelfx/pkg/ports"
)

// ErrEmptyImage is returned when the decoded image has no pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// Stage decodes image data into a pixel buffer.
type Stage struct {
	renderer ports.Renderer
	logger   ports.Logger
}

// NewStage creates a new decode stage.
func NewStage(renderer ports.Renderer, logger ports.Logger) *Stage {
	return &Stage{
		renderer: renderer,
		logger:   logger.WithComponent("decode"),
	}
}

// Execute decodes the input and downscales it if it exceeds MaxDimension.
func (s *Stage) Execute(ctx context.Context, input pipeline.DecodeInput) (pipeline.DecodeResult, error) {
	result := pipeline.DecodeResult{}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	img, format, err := s.renderer.DecodeImage(input.Data)
	if err != nil {
		return result, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return result, ErrEmptyImage
	}
	result.Format = format
	result.OriginalWidth = width
	result.OriginalHeight = height

	if w, h, ok := fitWithin(width, height, input.MaxDimension); ok {
		s.logger.Debug("Downscaling %dx%d to %dx%d", width, height, w, h)
		img = s.renderer.ResizeImage(img, w, h)
		result.Resized = true
	}

	result.Buffer = pixbuf.FromImage(img)
	s.logger.Debug("Decoded %s image: %dx%d", format, result.Buffer.Width, result.Buffer.Height)
	return result, nil
}

// fitWithin scales (width, height) so the longer side equals limit.
// ok is false when no scaling is needed.
func fitWithin(width, height, limit int) (w, h int, ok bool) {
	if limit <= 0 || (width <= limit && height <= limit) {
		return width, height, false
	}
	if width >= height {
		w, h = limit, height*limit/width
	} else {
		w, h = width*limit/height, limit
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h, true
}
