// Package filters implements the catalog of pixel transforms.
//
// Filters that only look at the pixel they write (Grayscale, Invert,
// Saturate) work in place. Filters whose output at one pixel depends on
// neighboring pixels read from an untouched snapshot and write to a
// separate destination of the same size, so traversal order never leaks
// into the result. The snapshot is never modified.
package filters

import (
	"image/color"
	"math"

	"github.com/user/pixelfx/pkg/pixbuf"
)

const ch = pixbuf.Channels

// checkPair validates a destination/snapshot pair before a spatial filter runs.
func checkPair(dst, src *pixbuf.Buffer) error {
	if err := dst.Validate(); err != nil {
		return err
	}
	if err := src.Validate(); err != nil {
		return err
	}
	return dst.SameSize(src)
}

// Grayscale replaces R, G and B with their integer mean.
func Grayscale(buf *pixbuf.Buffer) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	p := buf.Pix
	for i := 0; i+3 < len(p); i += ch {
		gray := uint8((int(p[i]) + int(p[i+1]) + int(p[i+2])) / 3)
		p[i], p[i+1], p[i+2] = gray, gray, gray
	}
	return nil
}

// Invert replaces each color channel v with 255-v.
func Invert(buf *pixbuf.Buffer) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	p := buf.Pix
	for i := 0; i+3 < len(p); i += ch {
		p[i] = 255 - p[i]
		p[i+1] = 255 - p[i+1]
		p[i+2] = 255 - p[i+2]
	}
	return nil
}

// Saturate applies a luminance-weighted saturation matrix. Each output channel
// mixes its own input with weight (1-s)*lum+s and the other two with (1-s)*lum.
// At s = 1 the transform is the identity.
func Saturate(buf *pixbuf.Buffer, params *Params) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	s := params.SaturationVal

	r1 := (1-s)*params.LumR + s
	g1 := (1-s)*params.LumG + s
	b1 := (1-s)*params.LumB + s

	r2 := (1 - s) * params.LumR
	g2 := (1 - s) * params.LumG
	b2 := (1 - s) * params.LumB

	p := buf.Pix
	for i := 0; i+3 < len(p); i += ch {
		r := float64(p[i])
		g := float64(p[i+1])
		b := float64(p[i+2])

		p[i] = pixbuf.Clamp(int(r*r1 + g*g2 + b*b2))
		p[i+1] = pixbuf.Clamp(int(r*r2 + g*g1 + b*b2))
		p[i+2] = pixbuf.Clamp(int(r*r2 + g*g2 + b*b1))
	}
	return nil
}

// Outline compares every pixel with the one above it in src. If all three
// channel differences are strictly within (-limit, limit) both become white;
// otherwise the pixel above becomes black and the current one white.
// The top row has nothing above it and is left as is.
func Outline(dst, src *pixbuf.Buffer, params *Params) error {
	if err := checkPair(dst, src); err != nil {
		return err
	}
	limit := params.OutlineLimit
	w := src.Width

	within := func(a, b uint8) bool {
		d := int(a) - int(b)
		return d < limit && d > -limit
	}

	for row := 1; row < src.Height; row++ {
		for col := 0; col < w; col++ {
			above := ((row-1)*w + col) * ch
			curr := (row*w + col) * ch

			same := within(src.Pix[above], src.Pix[curr]) &&
				within(src.Pix[above+1], src.Pix[curr+1]) &&
				within(src.Pix[above+2], src.Pix[curr+2])

			v := uint8(0)
			if same {
				v = 255
			}
			dst.Pix[above], dst.Pix[above+1], dst.Pix[above+2] = v, v, v
			dst.Pix[curr], dst.Pix[curr+1], dst.Pix[curr+2] = 255, 255, 255
		}
	}
	return nil
}

// ChannelOffset copies one color channel (chosen by params.ChannelSelector)
// from the src pixel ChanOffset columns to the right. Pixels whose source
// would fall past the right edge keep their value.
func ChannelOffset(dst, src *pixbuf.Buffer, params *Params) error {
	if err := checkPair(dst, src); err != nil {
		return err
	}
	offset := params.ChanOffset
	channel := params.ChannelSelector
	if channel < 0 || channel > 2 {
		channel = 2
	}
	w := src.Width

	for row := 0; row < src.Height; row++ {
		for col := 0; col < w; col++ {
			from := col + offset
			if from < 0 || from >= w {
				continue
			}
			dst.Pix[(row*w+col)*ch+channel] = src.Pix[(row*w+from)*ch+channel]
		}
	}
	return nil
}

// CRT emulates scanlines. Every ScanLineThickness-th row is brightened with
// ((1+boost) - 0.2c)c, the others are dimmed with ((1-intensity) + 0.1c)c,
// where c is the normalized src channel. A thickness of zero or less turns
// off the bright rows.
func CRT(dst, src *pixbuf.Buffer, params *Params) error {
	if err := checkPair(dst, src); err != nil {
		return err
	}
	thickness := params.ScanLineThickness
	w := src.Width

	for row := 0; row < src.Height; row++ {
		high := thickness > 0 && row%thickness == 0
		for col := 0; col < w; col++ {
			base := (row*w + col) * ch
			for i := 0; i < 3; i++ {
				c := float64(src.Pix[base+i]) / 255.0
				var v float64
				if high {
					v = ((1.0 + params.BrightBoost) - 0.2*c) * c
				} else {
					v = ((1.0 - params.Intensity) + 0.1*c) * c
				}
				dst.Pix[base+i] = pixbuf.Clamp(int(255.0 * v))
			}
		}
	}
	return nil
}

// Mosaic paints each ChunkSize x ChunkSize tile with the src color of the
// tile's top-left pixel. Tiles on the right and bottom edges may be smaller.
func Mosaic(dst, src *pixbuf.Buffer, params *Params) error {
	if err := checkPair(dst, src); err != nil {
		return err
	}
	size := params.ChunkSize
	if size <= 0 {
		return nil
	}
	w, h := src.Width, src.Height

	for x := 0; x < w; x += size {
		for y := 0; y < h; y += size {
			first := (y*w + x) * ch
			r, g, b := src.Pix[first], src.Pix[first+1], src.Pix[first+2]

			endX := min(x+size, w)
			endY := min(y+size, h)
			for k := x; k < endX; k++ {
				for l := y; l < endY; l++ {
					i := (l*w + k) * ch
					dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2] = r, g, b
				}
			}
		}
	}
	return nil
}

var (
	sobelX = [3][3]int{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [3][3]int{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// EdgeDetect writes the Sobel gradient magnitude of the src R channel to the
// color channels of dst. Border rows and columns are not processed.
func EdgeDetect(dst, src *pixbuf.Buffer) error {
	if err := checkPair(dst, src); err != nil {
		return err
	}
	w, h := src.Width, src.Height

	for row := 1; row < h-1; row++ {
		for col := 1; col < w-1; col++ {
			px, py := 0, 0
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					v := int(src.Pix[((row+ky)*w+col+kx)*ch])
					px += v * sobelX[ky+1][kx+1]
					py += v * sobelY[ky+1][kx+1]
				}
			}
			mag := pixbuf.Clamp(int(math.Ceil(math.Sqrt(float64(px*px + py*py)))))
			i := (row*w + col) * ch
			dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2] = mag, mag, mag
		}
	}
	return nil
}

// Dots samples src every DotSpacing pixels and draws each sample, plus its
// four axis neighbors that lie inside the image, onto surface.
func Dots(surface PointSurface, src *pixbuf.Buffer, params *Params) error {
	if err := src.Validate(); err != nil {
		return err
	}
	spacing := params.DotSpacing
	if spacing <= 0 {
		return nil
	}
	w := src.Width

	for row := 0; row < src.Height; row += spacing {
		for col := 0; col < w; col += spacing {
			i := (row*w + col) * ch
			c := color.RGBA{R: src.Pix[i], G: src.Pix[i+1], B: src.Pix[i+2], A: src.Pix[i+3]}

			surface.DrawPoint(col, row, c)
			for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				if src.InBounds(col+d[0], row+d[1]) {
					surface.DrawPoint(col+d[0], row+d[1], c)
				}
			}
		}
	}
	return nil
}
