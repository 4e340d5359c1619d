// Package ggrenderer provides a renderer implementation using the gg library.
package ggrenderer

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/user/pixelfx/pkg/ports"
)

// ErrUnsupportedFormat is returned for formats that cannot be read or written.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Renderer implements ports.Renderer using the gg library.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// CreateCanvas creates a new drawing canvas.
func (r *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()
	return &Canvas{dc: dc}
}

// DecodeImage decodes PNG, JPEG, BMP or WebP data.
func (r *Renderer) DecodeImage(data []byte) (image.Image, ports.ImageFormat, error) {
	img, name, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, ports.FormatPNG, fmt.Errorf("decode image: %w", err)
	}
	format, ok := ports.ParseImageFormat(name)
	if !ok {
		return nil, ports.FormatPNG, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}
	return img, format, nil
}

// EncodeImage encodes an image to the specified format.
// WebP is decode-only.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatJPEG:
		opts := &jpeg.Options{Quality: quality}
		if err := jpeg.Encode(&buf, img, opts); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	case ports.FormatBMP:
		if err := bmp.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode BMP: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	return buf.Bytes(), nil
}

// ResizeImage resizes an image to the specified dimensions.
func (r *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

var _ ports.Renderer = (*Renderer)(nil)

// Canvas implements ports.Canvas using gg.Context.
type Canvas struct {
	dc *gg.Context
}

// DrawPoint paints one pixel with the given color.
func (c *Canvas) DrawPoint(x, y int, col color.RGBA) {
	if x < 0 || y < 0 || x >= c.dc.Width() || y >= c.dc.Height() {
		return
	}
	c.dc.SetRGBA255(int(col.R), int(col.G), int(col.B), int(col.A))
	c.dc.SetPixel(x, y)
}

// ToImage returns the canvas as an image.
func (c *Canvas) ToImage() image.Image {
	return c.dc.Image()
}

var _ ports.Canvas = (*Canvas)(nil)
