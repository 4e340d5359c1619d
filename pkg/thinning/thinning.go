// Package thinning reduces binarized shapes toward one-pixel-wide skeletons
// using Hilditch-style structural tests.
package thinning

import "github.com/user/pixelfx/pkg/pixbuf"

// DefaultThreshold is the normalized gray level at or above which a pixel
// binarizes to white.
const DefaultThreshold = 0.5

const (
	black = 0
	white = 255
)

// Binarize sets each pixel to white if its normalized gray average is at
// least threshold, otherwise to black. Alpha is untouched.
func Binarize(buf *pixbuf.Buffer, threshold float64) {
	for i := 0; i+3 < len(buf.Pix); i += pixbuf.Channels {
		avg := (float64(buf.Pix[i]) + float64(buf.Pix[i+1]) + float64(buf.Pix[i+2])) / 3.0
		v := uint8(black)
		if avg/255.0 >= threshold {
			v = white
		}
		buf.Pix[i] = v
		buf.Pix[i+1] = v
		buf.Pix[i+2] = v
	}
}

// Thin binarizes buf and runs a fixed number of erosion passes over it.
// The pass count is not a convergence criterion: the result may still be
// thicker than one pixel. With zero iterations buf is left unchanged.
func Thin(buf *pixbuf.Buffer, iterations int, threshold float64) error {
	if err := buf.Validate(); err != nil {
		return err
	}
	if iterations <= 0 {
		return nil
	}

	Binarize(buf, threshold)

	snapshot := buf.Clone()
	for it := 0; it < iterations; it++ {
		copy(snapshot.Pix, buf.Pix)
		g := grid{buf: snapshot}

		for row := 0; row < buf.Height; row++ {
			for col := 0; col < buf.Width; col++ {
				if g.erasable(row, col) {
					i := (row*buf.Width + col) * pixbuf.Channels
					buf.Pix[i] = white
					buf.Pix[i+1] = white
					buf.Pix[i+2] = white
				}
			}
		}
	}
	return nil
}

// grid answers neighborhood questions against a frozen binarized buffer.
// Only the R channel is inspected; binarized pixels have equal channels.
type grid struct {
	buf *pixbuf.Buffer
}

// state of a neighbor position.
type cell uint8

const (
	absent cell = iota
	isWhite
	isBlack
)

func (g grid) at(row, col int) cell {
	if !g.buf.InBounds(col, row) {
		return absent
	}
	if g.buf.Pix[(row*g.buf.Width+col)*pixbuf.Channels] == black {
		return isBlack
	}
	return isWhite
}

func (g grid) isBlack(row, col int) bool {
	return g.at(row, col) == isBlack
}

// clockwise lists neighbor offsets (drow, dcol) starting at top, closing
// the cycle by repeating top.
var clockwise = [9][2]int{
	{-1, 0},  // top
	{-1, 1},  // top-right
	{0, 1},   // right
	{1, 1},   // bottom-right
	{1, 0},   // bottom
	{1, -1},  // bottom-left
	{0, -1},  // left
	{-1, -1}, // top-left
	{-1, 0},  // top
}

func (g grid) erasable(row, col int) bool {
	return g.isBlack(row, col) &&
		g.blackNeighbors(row, col) &&
		g.connectivity(row, col) &&
		g.verticalLine(row, col) &&
		g.horizontalLine(row, col)
}

// blackNeighbors passes when 2..6 of the present 8-neighbors are black.
func (g grid) blackNeighbors(row, col int) bool {
	n := 0
	for _, d := range clockwise[:8] {
		if g.at(row+d[0], col+d[1]) == isBlack {
			n++
		}
	}
	return n >= 2 && n <= 6
}

// connectivity passes when the clockwise walk around a black pixel has
// exactly one white-to-black transition. Absent neighbors are skipped,
// so the walk only joins present ones. Positions outside the image and
// non-black pixels fail.
func (g grid) connectivity(row, col int) bool {
	if !g.isBlack(row, col) {
		return false
	}

	var seq [9]bool // true = black
	n := 0
	for _, d := range clockwise {
		switch g.at(row+d[0], col+d[1]) {
		case isBlack:
			seq[n] = true
			n++
		case isWhite:
			seq[n] = false
			n++
		}
	}

	transitions := 0
	for i := 0; i+1 < n; i++ {
		if !seq[i] && seq[i+1] {
			transitions++
		}
	}
	return transitions == 1
}

// nonBlack counts present, non-black cells among the given offsets.
func (g grid) nonBlack(row, col int, offsets ...[2]int) int {
	n := 0
	for _, d := range offsets {
		if g.at(row+d[0], col+d[1]) == isWhite {
			n++
		}
	}
	return n
}

var (
	top    = [2]int{-1, 0}
	bottom = [2]int{1, 0}
	left   = [2]int{0, -1}
	right  = [2]int{0, 1}
)

// verticalLine protects vertical strokes: it passes when left, right and
// top are all non-black, or when the pixel above fails connectivity.
func (g grid) verticalLine(row, col int) bool {
	return g.nonBlack(row, col, left, right, top) == 3 || !g.connectivity(row-1, col)
}

// horizontalLine is the horizontal counterpart, using bottom, right and top
// and re-checking connectivity to the right.
func (g grid) horizontalLine(row, col int) bool {
	return g.nonBlack(row, col, bottom, right, top) == 3 || !g.connectivity(row, col+1)
}
