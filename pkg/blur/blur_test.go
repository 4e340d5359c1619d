package blur

import (
	"testing"

	"github.com/user/pixelfx/pkg/pixbuf"
)

func TestBoxSizes(t *testing.T) {
	tests := []struct {
		sigma float64
		want  []int
	}{
		{1, []int{1, 1, 3}},
		{2, []int{3, 3, 5}},
	}

	for _, tt := range tests {
		got := BoxSizes(tt.sigma, 3)
		if len(got) != len(tt.want) {
			t.Fatalf("sigma %v: expected %v, got %v", tt.sigma, tt.want, got)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("sigma %v: expected %v, got %v", tt.sigma, tt.want, got)
				break
			}
		}
	}
}

func TestBoxSizes_OddAscending(t *testing.T) {
	for _, sigma := range []float64{0.5, 1.3, 2.7, 5, 11.2} {
		sizes := BoxSizes(sigma, Passes)
		for i, w := range sizes {
			if w%2 == 0 {
				t.Errorf("sigma %v: width %d is even", sigma, w)
			}
			if i > 0 && w < sizes[i-1] {
				t.Errorf("sigma %v: widths not ascending: %v", sigma, sizes)
			}
		}
	}
}

func TestRadii(t *testing.T) {
	got := Radii([]int{1, 3, 5})
	if got[0] != 0 || got[1] != 1 || got[2] != 2 {
		t.Errorf("unexpected radii %v", got)
	}
}

func TestGaussian_UniformUnchanged(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {2, 3}, {17, 9}} {
		b, _ := pixbuf.New(size[0], size[1])
		for i := 0; i < len(b.Pix); i += 4 {
			b.Pix[i], b.Pix[i+1], b.Pix[i+2], b.Pix[i+3] = 90, 180, 33, 255
		}
		before := b.Clone()

		if err := Gaussian(b, 4); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !b.Equal(before) {
			t.Errorf("%dx%d: uniform buffer changed", size[0], size[1])
		}
	}
}

func TestGaussian_SpreadsAndKeepsAlpha(t *testing.T) {
	b, _ := pixbuf.New(9, 9)
	for i := 3; i < len(b.Pix); i += 4 {
		b.Pix[i] = 200
	}
	center := (4*9 + 4) * 4
	b.Pix[center] = 255

	if err := Gaussian(b, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if b.Pix[center] == 255 || b.Pix[center] == 0 {
		t.Errorf("expected center to be softened, got %d", b.Pix[center])
	}
	if b.Pix[center-4] == 0 {
		t.Error("expected energy to spread to the left neighbor")
	}
	for i := 3; i < len(b.Pix); i += 4 {
		if b.Pix[i] != 200 {
			t.Fatalf("alpha changed at %d: %d", i, b.Pix[i])
		}
	}
}

func TestGaussian_DegenerateSigma(t *testing.T) {
	b, _ := pixbuf.New(3, 3)
	b.Pix[0] = 255
	before := b.Clone()

	for _, sigma := range []float64{0, -2} {
		if err := Gaussian(b, sigma); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !b.Equal(before) {
			t.Errorf("sigma %v: expected no change", sigma)
		}
	}
}

func TestGaussian_RadiusLargerThanImage(t *testing.T) {
	b, _ := pixbuf.New(2, 2)
	b.Pix[0] = 255

	if err := Gaussian(b, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGaussian_RejectsMalformedBuffer(t *testing.T) {
	b := &pixbuf.Buffer{Width: 3, Height: 3, Pix: make([]byte, 10)}
	if err := Gaussian(b, 2); err == nil {
		t.Error("expected an error")
	}
}
