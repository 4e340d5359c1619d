package filters

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/user/pixelfx/pkg/pixbuf"
)

// quadrant offsets (row, col) of the top-left corner relative to the anchor,
// scaled by (factor-1). Evaluation order breaks ties.
var quadrants = [4][2]int{
	{-1, -1}, // top-left
	{-1, 0},  // top-right
	{0, -1},  // bottom-left
	{0, 0},   // bottom-right
}

// kuwaharaScratch holds per-quadrant samples reused across pixels.
type kuwaharaScratch struct {
	v, r, g, b []float64
}

func (s *kuwaharaScratch) reset() {
	s.v = s.v[:0]
	s.r = s.r[:0]
	s.g = s.g[:0]
	s.b = s.b[:0]
}

// Kuwahara smooths while keeping edges. Around every pixel it considers four
// KuwaharaFactor-sized square quadrants that share the pixel as a corner,
// and writes the mean color of the quadrant whose HSV value channel has the
// lowest standard deviation. Samples outside the image are skipped.
func Kuwahara(dst, src *pixbuf.Buffer, params *Params) error {
	if err := checkPair(dst, src); err != nil {
		return err
	}
	f := params.KuwaharaFactor
	if f <= 0 {
		return nil
	}

	scratch := &kuwaharaScratch{
		v: make([]float64, 0, f*f),
		r: make([]float64, 0, f*f),
		g: make([]float64, 0, f*f),
		b: make([]float64, 0, f*f),
	}

	for row := 0; row < src.Height; row++ {
		for col := 0; col < src.Width; col++ {
			r, g, b := kuwaharaPixel(src, row, col, f, scratch)
			i := (row*src.Width + col) * ch
			dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2] = r, g, b
		}
	}
	return nil
}

func kuwaharaPixel(src *pixbuf.Buffer, row, col, f int, s *kuwaharaScratch) (uint8, uint8, uint8) {
	bestStd := math.Inf(1)
	var best [3]float64

	for _, q := range quadrants {
		top := row + q[0]*(f-1)
		left := col + q[1]*(f-1)

		s.reset()
		for y := top; y < top+f; y++ {
			for x := left; x < left+f; x++ {
				if !src.InBounds(x, y) {
					continue
				}
				i := (y*src.Width + x) * ch
				r, g, b := src.Pix[i], src.Pix[i+1], src.Pix[i+2]
				s.v = append(s.v, hsvValue(r, g, b))
				s.r = append(s.r, float64(r))
				s.g = append(s.g, float64(g))
				s.b = append(s.b, float64(b))
			}
		}
		// The anchor itself is always a member, so no quadrant is empty.
		_, std := stat.PopMeanStdDev(s.v, nil)
		if std < bestStd {
			bestStd = std
			best = [3]float64{stat.Mean(s.r, nil), stat.Mean(s.g, nil), stat.Mean(s.b, nil)}
		}
	}

	return pixbuf.Clamp(int(math.Round(best[0]))),
		pixbuf.Clamp(int(math.Round(best[1]))),
		pixbuf.Clamp(int(math.Round(best[2])))
}

// hsvValue returns the V component of HSV, normalized to [0,1].
func hsvValue(r, g, b uint8) float64 {
	return float64(max(r, g, b)) / 255.0
}
