package pixbuf

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestWrap_RejectsMalformedLength(t *testing.T) {
	tests := []struct {
		name   string
		length int
		width  int
		height int
	}{
		{"short", 15, 2, 2},
		{"long", 17, 2, 2},
		{"negative width", 0, -1, 2},
		{"partial pixel", 6, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Wrap(make([]byte, tt.length), tt.width, tt.height)
			if !errors.Is(err, ErrDimensions) {
				t.Errorf("expected ErrDimensions, got %v", err)
			}
			var be *BufferError
			if !errors.As(err, &be) {
				t.Fatalf("expected *BufferError, got %T", err)
			}
			if be.Op != "validate" {
				t.Errorf("expected op validate, got %s", be.Op)
			}
		})
	}
}

func TestWrap_AcceptsExactLength(t *testing.T) {
	b, err := Wrap(make([]byte, 3*2*4), 3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Len() != 6 {
		t.Errorf("expected 6 pixels, got %d", b.Len())
	}
}

func TestOffset_OutOfBounds(t *testing.T) {
	b, _ := New(2, 2)

	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if _, err := b.Offset(p[0], p[1]); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Offset(%d,%d): expected ErrOutOfBounds, got %v", p[0], p[1], err)
		}
	}

	i, err := b.Offset(1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if i != 12 {
		t.Errorf("expected offset 12, got %d", i)
	}
}

func TestSetRGB_KeepsAlpha(t *testing.T) {
	b, _ := New(1, 1)
	b.Pix[3] = 77

	if err := b.SetRGB(0, 0, 1, 2, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, _ := b.RGBA(0, 0)
	want := color.RGBA{R: 1, G: 2, B: 3, A: 77}
	if c != want {
		t.Errorf("expected %v, got %v", want, c)
	}
	if err := b.SetRGB(1, 0, 0, 0, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestClone_IsIndependent(t *testing.T) {
	b, _ := New(2, 1)
	c := b.Clone()
	c.Pix[0] = 9

	if b.Pix[0] != 0 {
		t.Error("clone shares storage with original")
	}
	if b.Equal(c) {
		t.Error("expected buffers to differ")
	}
}

func TestCopyFrom_SizeMismatch(t *testing.T) {
	a, _ := New(2, 2)
	b, _ := New(2, 3)
	if err := a.CopyFrom(b); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch, got %v", err)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in   int
		want uint8
	}{
		{-5, 0},
		{0, 0},
		{128, 128},
		{255, 255},
		{260, 255},
	}
	for _, tt := range tests {
		if got := Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFromImage_RoundTrip(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 10, 13, 12))
	img.Set(10, 10, color.NRGBA{R: 200, G: 100, B: 50, A: 128})

	b := FromImage(img)
	if b.Width != 3 || b.Height != 2 {
		t.Fatalf("expected 3x2, got %dx%d", b.Width, b.Height)
	}
	c, _ := b.RGBA(0, 0)
	if c != (color.RGBA{R: 200, G: 100, B: 50, A: 128}) {
		t.Errorf("unexpected pixel %v", c)
	}

	out := b.ToImage()
	if got := out.NRGBAAt(0, 0); got != (color.NRGBA{R: 200, G: 100, B: 50, A: 128}) {
		t.Errorf("unexpected round trip pixel %v", got)
	}
}
