package engine

import (
	"image/color"

	"github.com/user/pixelfx/pkg/mocks"
	"github.com/user/pixelfx/pkg/ports"
)

// canvasRecorder keeps the last canvas handed out so tests can inspect it.
type canvasRecorder struct {
	last *mocks.Canvas
}

func (c *canvasRecorder) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	c.last = mocks.NewCanvas(width, height, bg)
	return c.last
}
