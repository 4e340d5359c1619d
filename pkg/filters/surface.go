package filters

import (
	"image/color"

	"github.com/user/pixelfx/pkg/pixbuf"
)

// PointSurface is a drawing target that accepts single colored points.
type PointSurface interface {
	// DrawPoint paints the pixel at (x, y). Points outside the surface are ignored.
	DrawPoint(x, y int, c color.RGBA)
}

// BufferSurface draws points straight into a pixel buffer.
type BufferSurface struct {
	Buf *pixbuf.Buffer
}

// DrawPoint writes the color channels of c at (x, y); alpha is untouched.
func (s BufferSurface) DrawPoint(x, y int, c color.RGBA) {
	// Out-of-range points are dropped, matching a clipped render target.
	_ = s.Buf.SetRGB(x, y, c.R, c.G, c.B)
}

var _ PointSurface = BufferSurface{}
