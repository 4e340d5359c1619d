// Package engine runs one catalog filter at a time over a pixel buffer.
//
// The caller owns two buffers: current, which receives the result, and an
// optional snapshot holding the pre-filter state. Filters with spatial
// dependencies read only from the snapshot; when none is given the engine
// takes one from current before the filter runs.
package engine

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/user/pixelfx/pkg/filters"
	"github.com/user/pixelfx/pkg/pixbuf"
	"github.com/user/pixelfx/pkg/ports"
)

// CanvasFactory creates point-drawing surfaces. ports.Renderer satisfies it.
type CanvasFactory interface {
	CreateCanvas(width, height int, bg color.Color) ports.Canvas
}

// Engine dispatches filters. It is not safe for concurrent use because the
// random source is shared across calls.
type Engine struct {
	rng      filters.RandSource
	canvases CanvasFactory
	logger   ports.Logger
}

// New creates an Engine. canvases may be nil, in which case Dots draws
// straight into the destination buffer.
func New(rng filters.RandSource, canvases CanvasFactory, logger ports.Logger) *Engine {
	return &Engine{
		rng:      rng,
		canvases: canvases,
		logger:   logger.WithComponent("engine"),
	}
}

// Apply runs f over current. snapshot may be nil; if given it must match
// current's dimensions and is never written. A snapshot sharing current's
// pixels is replaced by a copy.
func (e *Engine) Apply(ctx context.Context, f Filter, current, snapshot *pixbuf.Buffer, params *filters.Params) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := current.Validate(); err != nil {
		return fmt.Errorf("%s: %w", f, err)
	}
	if f.NeedsSnapshot() {
		if snapshot == nil || sharesPixels(current, snapshot) {
			snapshot = current.Clone()
		} else if err := current.SameSize(snapshot); err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
	}

	start := time.Now()
	if err := e.dispatch(f, current, snapshot, params); err != nil {
		return fmt.Errorf("%s: %w", f, err)
	}
	e.logger.Debug("Applied %s to %dx%d in %d ms", f, current.Width, current.Height, time.Since(start).Milliseconds())
	return nil
}

func sharesPixels(a, b *pixbuf.Buffer) bool {
	if a == b {
		return true
	}
	return len(a.Pix) > 0 && len(b.Pix) > 0 && &a.Pix[0] == &b.Pix[0]
}

func (e *Engine) dispatch(f Filter, cur, snap *pixbuf.Buffer, p *filters.Params) error {
	switch f {
	case None:
		return nil
	case Grayscale:
		return filters.Grayscale(cur)
	case Invert:
		return filters.Invert(cur)
	case Saturation:
		return filters.Saturate(cur, p)
	case Outline:
		return filters.Outline(cur, snap, p)
	case Mosaic:
		return filters.Mosaic(cur, snap, p)
	case ChannelOffset:
		return filters.ChannelOffset(cur, snap, p)
	case CRT:
		return filters.CRT(cur, snap, p)
	case Voronoi:
		return filters.Voronoi(cur, snap, p, e.rng)
	case Thinning:
		return filters.Thinning(cur, p)
	case Kuwahara:
		return filters.Kuwahara(cur, snap, p)
	case EdgeDetect:
		return filters.EdgeDetect(cur, snap)
	case Dots:
		return e.dots(cur, snap, p)
	case Blur:
		return filters.Blur(cur, p)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFilter, int(f))
	}
}

// dots renders the halftone onto an empty white target. With a canvas
// factory the points go through the canvas and its color channels are
// copied back; alpha of cur is kept either way.
func (e *Engine) dots(cur, snap *pixbuf.Buffer, p *filters.Params) error {
	if e.canvases == nil {
		cur.FillRGB(255, 255, 255)
		return filters.Dots(filters.BufferSurface{Buf: cur}, snap, p)
	}

	canvas := e.canvases.CreateCanvas(cur.Width, cur.Height, color.White)
	if err := filters.Dots(canvas, snap, p); err != nil {
		return err
	}
	rendered := pixbuf.FromImage(canvas.ToImage())
	if err := cur.SameSize(rendered); err != nil {
		return err
	}
	for i := 0; i < len(cur.Pix); i += pixbuf.Channels {
		copy(cur.Pix[i:i+3], rendered.Pix[i:i+3])
	}
	return nil
}
