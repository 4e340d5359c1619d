package thinning

import (
	"testing"

	"github.com/user/pixelfx/pkg/pixbuf"
)

// newWhite returns a white opaque buffer with the given black pixels (row, col).
func newWhite(t *testing.T, w, h int, blacks ...[2]int) *pixbuf.Buffer {
	t.Helper()
	b, err := pixbuf.New(w, h)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for i := range b.Pix {
		b.Pix[i] = 255
	}
	for _, p := range blacks {
		if err := b.SetRGB(p[1], p[0], 0, 0, 0); err != nil {
			t.Fatalf("SetRGB failed: %v", err)
		}
	}
	return b
}

func blackSet(b *pixbuf.Buffer) map[[2]int]bool {
	out := make(map[[2]int]bool)
	for row := 0; row < b.Height; row++ {
		for col := 0; col < b.Width; col++ {
			c, _ := b.RGBA(col, row)
			if c.R == 0 {
				out[[2]int{row, col}] = true
			}
		}
	}
	return out
}

func TestBinarize(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    uint8
	}{
		{"bright", 200, 200, 200, 255},
		{"dark", 100, 100, 100, 0},
		{"just below", 128, 127, 127, 0},
		{"just above", 128, 128, 127, 255},
		{"white", 255, 255, 255, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := pixbuf.New(1, 1)
			b.Pix[0], b.Pix[1], b.Pix[2], b.Pix[3] = tt.r, tt.g, tt.b, 42
			Binarize(b, DefaultThreshold)
			if b.Pix[0] != tt.want || b.Pix[1] != tt.want || b.Pix[2] != tt.want {
				t.Errorf("expected %d, got %v", tt.want, b.Pix[:3])
			}
			if b.Pix[3] != 42 {
				t.Errorf("alpha changed to %d", b.Pix[3])
			}
		})
	}
}

func TestThin_ZeroIterationsUnchanged(t *testing.T) {
	b, _ := pixbuf.New(3, 3)
	for i := range b.Pix {
		b.Pix[i] = uint8(i * 7)
	}
	before := b.Clone()

	if err := Thin(b, 0, DefaultThreshold); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.Equal(before) {
		t.Error("expected buffer to be unchanged")
	}
}

func TestThin_IsolatedPixelKept(t *testing.T) {
	b := newWhite(t, 3, 3, [2]int{1, 1})

	if err := Thin(b, 5, DefaultThreshold); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := blackSet(b); len(got) != 1 || !got[[2]int{1, 1}] {
		t.Errorf("expected the isolated pixel to survive, got %v", got)
	}
}

func TestThin_SquareBlock(t *testing.T) {
	b := newWhite(t, 4, 4, [2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1}, [2]int{2, 2})

	if err := Thin(b, 1, DefaultThreshold); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Only the top-right corner of the block passes all four tests.
	want := map[[2]int]bool{{1, 1}: true, {2, 1}: true, {2, 2}: true}
	got := blackSet(b)
	if len(got) != len(want) {
		t.Fatalf("expected %d black pixels, got %v", len(want), got)
	}
	for p := range want {
		if !got[p] {
			t.Errorf("expected %v to remain black", p)
		}
	}
}

func TestThin_RejectsMalformedBuffer(t *testing.T) {
	b := &pixbuf.Buffer{Width: 2, Height: 2, Pix: make([]byte, 3)}
	if err := Thin(b, 1, DefaultThreshold); err == nil {
		t.Error("expected an error for a malformed buffer")
	}
}

func TestConnectivity(t *testing.T) {
	// Vertical line through the center: two separate white runs around (1,1).
	b := newWhite(t, 3, 3, [2]int{0, 1}, [2]int{1, 1}, [2]int{2, 1})
	g := grid{buf: b}
	if g.connectivity(1, 1) {
		t.Error("a pixel in the middle of a line must not pass connectivity")
	}
	// Line end: one white-to-black transition.
	if !g.connectivity(0, 1) {
		t.Error("a line end should pass connectivity")
	}
	if g.connectivity(-1, 1) {
		t.Error("positions outside the image must fail")
	}
	if g.connectivity(0, 0) {
		t.Error("white pixels must fail")
	}
}
