package filters

import (
	"github.com/user/pixelfx/pkg/kdtree"
	"github.com/user/pixelfx/pkg/pixbuf"
)

// MaxJitter bounds the random displacement applied to each Voronoi seed.
const MaxJitter = 9

// VoronoiSeeds samples src on a grid of floor(w/n) x floor(h/n) cells,
// skipping column 0, displaces each sample by up to MaxJitter pixels in
// each axis and records the src color at the displaced position.
// It returns nil when the grid step would be zero.
func VoronoiSeeds(src *pixbuf.Buffer, neighborCount int, rng RandSource) []kdtree.Point {
	if neighborCount <= 0 {
		return nil
	}
	stepX := src.Width / neighborCount
	stepY := src.Height / neighborCount
	if stepX <= 0 || stepY <= 0 {
		return nil
	}

	var seeds []kdtree.Point
	for row := 0; row < src.Height; row += stepY {
		for col := stepX; col < src.Width; col += stepX {
			x := clampInt(col+jitter(rng), 0, src.Width-1)
			y := clampInt(row+jitter(rng), 0, src.Height-1)
			i := (y*src.Width + x) * ch
			seeds = append(seeds, kdtree.Point{
				X: x,
				Y: y,
				R: src.Pix[i],
				G: src.Pix[i+1],
				B: src.Pix[i+2],
			})
		}
	}
	return seeds
}

// jitter returns a signed offset in [-MaxJitter, MaxJitter].
func jitter(rng RandSource) int {
	offset := rng.Intn(MaxJitter + 1)
	if rng.Intn(2) == 0 {
		return -offset
	}
	return offset
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Voronoi colors every pixel of dst with the color of its nearest seed.
// Seeds are sampled from src with VoronoiSeeds. If no seeds can be placed
// the filter does nothing. The tree lives only for the duration of the call.
func Voronoi(dst, src *pixbuf.Buffer, params *Params, rng RandSource) error {
	if err := checkPair(dst, src); err != nil {
		return err
	}
	seeds := VoronoiSeeds(src, params.VoronoiNeighborCount, rng)
	if len(seeds) == 0 {
		return nil
	}

	tree := kdtree.Build(seeds)
	defer tree.Release()

	for row := 0; row < dst.Height; row++ {
		for col := 0; col < dst.Width; col++ {
			p, _ := tree.Nearest(col, row)
			i := (row*dst.Width + col) * ch
			dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2] = p.R, p.G, p.B
		}
	}
	return nil
}
