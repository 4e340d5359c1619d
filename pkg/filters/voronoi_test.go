package filters

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/user/pixelfx/pkg/pixbuf"
)

// fixedRand always returns v modulo n.
type fixedRand struct {
	v int
}

func (r fixedRand) Intn(n int) int {
	return r.v % n
}

func TestVoronoiSeeds_Grid(t *testing.T) {
	src, _ := pixbuf.New(60, 30)

	seeds := VoronoiSeeds(src, 30, fixedRand{0})

	// stepX = 2, stepY = 1: 30 rows x columns 2,4,...,58.
	if len(seeds) != 30*29 {
		t.Fatalf("expected %d seeds, got %d", 30*29, len(seeds))
	}
	for _, s := range seeds {
		if s.X == 0 {
			t.Fatal("column 0 must not be sampled")
		}
	}
}

func TestVoronoiSeeds_JitterStaysInBounds(t *testing.T) {
	src, _ := pixbuf.New(40, 40)
	rng := rand.New(rand.NewSource(7))

	seeds := VoronoiSeeds(src, 10, rng)
	if len(seeds) == 0 {
		t.Fatal("expected seeds")
	}
	for _, s := range seeds {
		if !src.InBounds(s.X, s.Y) {
			t.Errorf("seed %+v outside the image", s)
		}
	}
}

func TestJitter_Range(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		j := jitter(rng)
		if j < -MaxJitter || j > MaxJitter {
			t.Fatalf("jitter %d out of range", j)
		}
		seen[j] = true
	}
	if !seen[-MaxJitter] || !seen[MaxJitter] {
		t.Error("expected both extremes to be reachable")
	}
}

func TestVoronoi_UniformSource(t *testing.T) {
	src := uniform(t, 50, 50, color.RGBA{R: 12, G: 34, B: 56, A: 200})
	dst := uniform(t, 50, 50, color.RGBA{A: 100})
	params := DefaultParams()
	params.VoronoiNeighborCount = 10

	if err := Voronoi(dst, src, &params, rand.New(rand.NewSource(3))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for row := 0; row < 50; row++ {
		for col := 0; col < 50; col++ {
			if got := pixelAt(t, dst, col, row); got != (color.RGBA{R: 12, G: 34, B: 56, A: 100}) {
				t.Fatalf("(%d,%d): got %v", col, row, got)
			}
		}
	}
}

func TestVoronoi_ColorsComeFromSeeds(t *testing.T) {
	src, _ := pixbuf.New(40, 40)
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 31)
	}
	dst := src.Clone()
	params := DefaultParams()
	params.VoronoiNeighborCount = 10

	seeds := VoronoiSeeds(src, 10, rand.New(rand.NewSource(9)))
	palette := map[[3]uint8]bool{}
	for _, s := range seeds {
		palette[[3]uint8{s.R, s.G, s.B}] = true
	}

	// Same seed, same jitter sequence.
	if err := Voronoi(dst, src, &params, rand.New(rand.NewSource(9))); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for row := 0; row < 40; row++ {
		for col := 0; col < 40; col++ {
			c := pixelAt(t, dst, col, row)
			if !palette[[3]uint8{c.R, c.G, c.B}] {
				t.Fatalf("(%d,%d): color %v is not a seed color", col, row, c)
			}
		}
	}
}

func TestVoronoi_DegenerateGrid(t *testing.T) {
	src, _ := pixbuf.New(8, 8)
	src.Pix[0] = 1
	dst := src.Clone()
	params := DefaultParams()

	for _, n := range []int{0, -1, 30} {
		params.VoronoiNeighborCount = n
		if err := Voronoi(dst, src, &params, fixedRand{0}); err != nil {
			t.Fatalf("n=%d: unexpected error: %v", n, err)
		}
		if !dst.Equal(src) {
			t.Errorf("n=%d: expected no change", n)
		}
	}
}
