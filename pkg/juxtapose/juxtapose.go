// Package juxtapose places two images side by side, typically the source
// and the filtered result of a run.
package juxtapose

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/user/pixelfx/pkg/pixbuf"
)

// Options configures the juxtapose operation.
type Options struct {
	// Gap is the horizontal gap between the two images in pixels.
	Gap int
	// Background fills the gap and the area around the shorter image.
	Background color.NRGBA
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		Gap:        10,
		Background: color.NRGBA{A: 255},
	}
}

// Combine places left and right next to each other.
// The shorter image is vertically centered.
func Combine(left, right *pixbuf.Buffer, opts Options) (*pixbuf.Buffer, error) {
	if err := left.Validate(); err != nil {
		return nil, fmt.Errorf("left image: %w", err)
	}
	if err := right.Validate(); err != nil {
		return nil, fmt.Errorf("right image: %w", err)
	}
	if opts.Gap < 0 {
		opts.Gap = 0
	}

	width := left.Width + opts.Gap + right.Width
	height := max(left.Height, right.Height)

	output := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(output, output.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	leftY := (height - left.Height) / 2
	draw.Draw(output, image.Rect(0, leftY, left.Width, leftY+left.Height), left.ToImage(), image.Point{}, draw.Src)

	rightX := left.Width + opts.Gap
	rightY := (height - right.Height) / 2
	draw.Draw(output, image.Rect(rightX, rightY, rightX+right.Width, rightY+right.Height), right.ToImage(), image.Point{}, draw.Src)

	return pixbuf.FromImage(output), nil
}
