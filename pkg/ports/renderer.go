package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts image codecs and drawing surfaces.
// The filter engine itself never sees encoded data; only the stages do.
type Renderer interface {
	// DecodeImage decodes image data, sniffing the format.
	DecodeImage(data []byte) (image.Image, ImageFormat, error)

	// EncodeImage encodes an image to the specified format.
	// quality is only used by lossy formats.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// ResizeImage resizes an image to the specified dimensions.
	ResizeImage(img image.Image, width, height int) image.Image

	// CreateCanvas creates a new drawing canvas filled with bg.
	CreateCanvas(width, height int, bg color.Color) Canvas
}

// Canvas is a point-drawing surface backed by a rendering library.
type Canvas interface {
	// DrawPoint paints a single pixel. Points outside the canvas are ignored.
	DrawPoint(x, y int, c color.RGBA)

	// ToImage returns the canvas contents.
	ToImage() image.Image
}

// ImageFormat specifies image encoding format.
type ImageFormat int

const (
	FormatPNG ImageFormat = iota
	FormatJPEG
	FormatBMP
	FormatWebP
)

// String returns the conventional name of the format.
func (f ImageFormat) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatBMP:
		return "bmp"
	case FormatWebP:
		return "webp"
	default:
		return "unknown"
	}
}

// ParseImageFormat parses a format name. ok is false for unknown names.
func ParseImageFormat(s string) (format ImageFormat, ok bool) {
	switch s {
	case "png":
		return FormatPNG, true
	case "jpeg", "jpg":
		return FormatJPEG, true
	case "bmp":
		return FormatBMP, true
	case "webp":
		return FormatWebP, true
	default:
		return FormatPNG, false
	}
}

// Extension returns the file extension for the format, with a leading dot.
func (f ImageFormat) Extension() string {
	if f == FormatJPEG {
		return ".jpg"
	}
	return "." + f.String()
}
