package mocks

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/user/pixelfx/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
// By default it "encodes" by returning the format name and "decodes" into a
// white 4x4 image, which keeps stage tests independent of real codecs.
type Renderer struct {
	CreateCanvasFunc func(width, height int, bg color.Color) ports.Canvas
	DecodeImageFunc  func(data []byte) (image.Image, ports.ImageFormat, error)
	EncodeImageFunc  func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	ResizeImageFunc  func(img image.Image, width, height int) image.Image
}

func (m *Renderer) CreateCanvas(width, height int, bg color.Color) ports.Canvas {
	if m.CreateCanvasFunc != nil {
		return m.CreateCanvasFunc(width, height, bg)
	}
	return NewCanvas(width, height, bg)
}

func (m *Renderer) DecodeImage(data []byte) (image.Image, ports.ImageFormat, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data)
	}
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img, ports.FormatPNG, nil
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte(format.String()), nil
}

func (m *Renderer) ResizeImage(img image.Image, width, height int) image.Image {
	if m.ResizeImageFunc != nil {
		return m.ResizeImageFunc(img, width, height)
	}
	return image.NewNRGBA(image.Rect(0, 0, width, height))
}

var _ ports.Renderer = (*Renderer)(nil)

// Canvas is a mock implementation of ports.Canvas backed by an NRGBA image.
type Canvas struct {
	img *image.NRGBA

	// Points records every DrawPoint call in order.
	Points []image.Point
}

// NewCanvas creates a canvas filled with bg.
func NewCanvas(width, height int, bg color.Color) *Canvas {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	if bg != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}
	return &Canvas{img: img}
}

func (m *Canvas) DrawPoint(x, y int, c color.RGBA) {
	m.Points = append(m.Points, image.Pt(x, y))
	if image.Pt(x, y).In(m.img.Rect) {
		m.img.Set(x, y, c)
	}
}

func (m *Canvas) ToImage() image.Image {
	return m.img
}

var _ ports.Canvas = (*Canvas)(nil)
