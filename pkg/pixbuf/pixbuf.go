// Package pixbuf provides the RGBA8 pixel buffer that every filter operates on.
package pixbuf

import (
	"image"
	"image/color"
	"image/draw"
)

// Channels is the number of bytes per pixel (R, G, B, A).
const Channels = 4

// Buffer is a row-major RGBA8 pixel buffer without padding.
// len(Pix) is always Width*Height*4 for a buffer that passed Validate.
type Buffer struct {
	Width  int
	Height int
	Pix    []byte
}

// New allocates a zeroed buffer of the given dimensions.
func New(width, height int) (*Buffer, error) {
	if width < 0 || height < 0 {
		return nil, &BufferError{Op: "new", Width: width, Height: height, Err: ErrDimensions}
	}
	return &Buffer{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*Channels),
	}, nil
}

// Wrap adopts an existing byte slice as a buffer after checking its length.
// The slice is not copied.
func Wrap(pix []byte, width, height int) (*Buffer, error) {
	b := &Buffer{Width: width, Height: height, Pix: pix}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// Validate rejects buffers whose length disagrees with their dimensions.
func (b *Buffer) Validate() error {
	if b == nil {
		return &BufferError{Op: "validate", Err: ErrDimensions}
	}
	if b.Width < 0 || b.Height < 0 || len(b.Pix) != b.Width*b.Height*Channels {
		return &BufferError{Op: "validate", Width: b.Width, Height: b.Height, Len: len(b.Pix), Err: ErrDimensions}
	}
	return nil
}

// SameSize returns an error unless other has the same dimensions as b.
func (b *Buffer) SameSize(other *Buffer) error {
	if other == nil || b.Width != other.Width || b.Height != other.Height {
		w, h, n := 0, 0, 0
		if other != nil {
			w, h, n = other.Width, other.Height, len(other.Pix)
		}
		return &BufferError{Op: "compare", Width: w, Height: h, Len: n, Err: ErrSizeMismatch}
	}
	return nil
}

// Len returns the number of pixels.
func (b *Buffer) Len() int {
	return b.Width * b.Height
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	pix := make([]byte, len(b.Pix))
	copy(pix, b.Pix)
	return &Buffer{Width: b.Width, Height: b.Height, Pix: pix}
}

// CopyFrom overwrites b with the contents of src. Both must have the same size.
func (b *Buffer) CopyFrom(src *Buffer) error {
	if err := b.SameSize(src); err != nil {
		return err
	}
	copy(b.Pix, src.Pix)
	return nil
}

// InBounds reports whether (col, row) addresses a pixel of the buffer.
func (b *Buffer) InBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < b.Width && row < b.Height
}

// Offset returns the index of the R byte of pixel (col, row).
func (b *Buffer) Offset(col, row int) (int, error) {
	if !b.InBounds(col, row) {
		return 0, &BufferError{Op: "offset", Width: b.Width, Height: b.Height, Len: len(b.Pix), Err: ErrOutOfBounds}
	}
	return (row*b.Width + col) * Channels, nil
}

// RGBA returns the color of pixel (col, row).
func (b *Buffer) RGBA(col, row int) (color.RGBA, error) {
	i, err := b.Offset(col, row)
	if err != nil {
		return color.RGBA{}, err
	}
	return color.RGBA{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2], A: b.Pix[i+3]}, nil
}

// SetRGB overwrites the color channels of pixel (col, row), leaving alpha untouched.
func (b *Buffer) SetRGB(col, row int, r, g, bl uint8) error {
	i, err := b.Offset(col, row)
	if err != nil {
		return err
	}
	b.Pix[i] = r
	b.Pix[i+1] = g
	b.Pix[i+2] = bl
	return nil
}

// FillRGB sets every pixel's color channels to the given color. Alpha is untouched.
func (b *Buffer) FillRGB(r, g, bl uint8) {
	for i := 0; i+3 < len(b.Pix); i += Channels {
		b.Pix[i] = r
		b.Pix[i+1] = g
		b.Pix[i+2] = bl
	}
}

// Equal reports whether two buffers have the same size and bytes.
func (b *Buffer) Equal(other *Buffer) bool {
	if b.SameSize(other) != nil || len(b.Pix) != len(other.Pix) {
		return false
	}
	for i := range b.Pix {
		if b.Pix[i] != other.Pix[i] {
			return false
		}
	}
	return true
}

// FromImage copies any image into a new buffer with origin (0,0).
// Channels are stored non-premultiplied, as decoders hand them out.
func FromImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return &Buffer{Width: bounds.Dx(), Height: bounds.Dy(), Pix: dst.Pix}
}

// ToImage returns an image over a copy of the buffer.
func (b *Buffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	copy(img.Pix, b.Pix)
	return img
}

// Clamp limits a channel value to [0, 255].
func Clamp(v int) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}
