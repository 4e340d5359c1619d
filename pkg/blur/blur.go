// Package blur approximates a gaussian blur with repeated box blurs.
//
// Three box passes of suitably chosen widths come close to a true gaussian
// of the requested standard deviation, and each box pass costs O(1) per
// pixel regardless of radius thanks to a sliding-window accumulator.
package blur

import (
	"math"

	"github.com/user/pixelfx/pkg/pixbuf"
)

// Passes is the number of box blurs used to approximate the gaussian.
const Passes = 3

// BoxSizes returns n odd box widths, in ascending order, whose successive
// application approximates a gaussian with standard deviation sigma.
func BoxSizes(sigma float64, n int) []int {
	if n <= 0 {
		return nil
	}
	nf := float64(n)
	wIdeal := math.Sqrt(12*sigma*sigma/nf + 1)
	wl := int(math.Floor(wIdeal))
	if wl%2 == 0 {
		wl--
	}
	if wl < 1 {
		wl = 1
	}
	wu := wl + 2

	wlf := float64(wl)
	mIdeal := (12*sigma*sigma - nf*wlf*wlf - 4*nf*wlf - 3*nf) / (-4*wlf - 4)
	m := int(math.Round(mIdeal))

	sizes := make([]int, n)
	for i := range sizes {
		if i < m {
			sizes[i] = wl
		} else {
			sizes[i] = wu
		}
	}
	return sizes
}

// Radii converts box widths to half-widths.
func Radii(sizes []int) []int {
	r := make([]int, len(sizes))
	for i, w := range sizes {
		r[i] = (w - 1) / 2
	}
	return r
}

// Gaussian blurs the color channels of buf in place. Alpha is untouched.
// A non-positive sigma leaves the buffer unchanged.
func Gaussian(buf *pixbuf.Buffer, sigma float64) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	if sigma <= 0 || buf.Width == 0 || buf.Height == 0 {
		return nil
	}

	radii := Radii(BoxSizes(sigma, Passes))
	w, h := buf.Width, buf.Height
	n := w * h

	for ch := 0; ch < 3; ch++ {
		src := make([]int, n)
		tmp := make([]int, n)
		for i := 0; i < n; i++ {
			src[i] = int(buf.Pix[i*pixbuf.Channels+ch])
		}

		// Ping-pong: each pass reads one array and leaves its result in the other.
		a, b := src, tmp
		for _, r := range radii {
			box(a, b, w, h, r)
			a, b = b, a
		}

		for i := 0; i < n; i++ {
			buf.Pix[i*pixbuf.Channels+ch] = uint8(a[i])
		}
	}
	return nil
}

// box blurs src into dst with radius r. src is used as scratch space.
func box(src, dst []int, w, h, r int) {
	copy(dst, src)
	horizontal(dst, src, w, h, r)
	total(src, dst, w, h, r)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// horizontal runs a sliding-window mean along each row of src into dst.
// Samples past either end repeat the edge pixel.
func horizontal(src, dst []int, w, h, r int) {
	inv := 1.0 / float64(r+r+1)
	for row := 0; row < h; row++ {
		base := row * w
		val := 0.0
		for k := -r; k <= r; k++ {
			val += float64(src[base+clampIndex(k, w)])
		}
		for col := 0; col < w; col++ {
			dst[base+col] = int(math.Round(val * inv))
			val += float64(src[base+clampIndex(col+r+1, w)]) - float64(src[base+clampIndex(col-r, w)])
		}
	}
}

// total is the column-wise counterpart of horizontal.
func total(src, dst []int, w, h, r int) {
	inv := 1.0 / float64(r+r+1)
	for col := 0; col < w; col++ {
		val := 0.0
		for k := -r; k <= r; k++ {
			val += float64(src[clampIndex(k, h)*w+col])
		}
		for row := 0; row < h; row++ {
			dst[row*w+col] = int(math.Round(val * inv))
			val += float64(src[clampIndex(row+r+1, h)*w+col]) - float64(src[clampIndex(row-r, h)*w+col])
		}
	}
}
