// Package pixelfx provides a high-level API for running filter chains over
// in-memory images.
package pixelfx

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math/rand"

	"github.com/user/pixelfx/pkg/adapters/ggrenderer"
	"github.com/user/pixelfx/pkg/adapters/logger"
	"github.com/user/pixelfx/pkg/adapters/nullsink"
	"github.com/user/pixelfx/pkg/engine"
	"github.com/user/pixelfx/pkg/filters"
	"github.com/user/pixelfx/pkg/pipeline"
	"github.com/user/pixelfx/pkg/pixbuf"
	"github.com/user/pixelfx/pkg/stages/filter"
)

// ErrEmptyChain is returned by Apply when no filters are configured.
var ErrEmptyChain = errors.New("empty filter chain")

// Options describes one filter run.
type Options struct {
	Filters []engine.Filter
	Params  filters.Params
	Seed    int64

	// RollChannel re-rolls Params.ChannelSelector from Seed before running.
	RollChannel bool
}

// Builder provides a fluent interface for building Options.
type Builder struct {
	opts Options
}

// NewBuilder creates a Builder with default parameters, seed 1 and an
// empty chain.
func NewBuilder() *Builder {
	return &Builder{opts: Options{
		Params:      filters.DefaultParams(),
		Seed:        1,
		RollChannel: true,
	}}
}

// NewPresetBuilder creates a Builder whose chain is the named preset.
func NewPresetBuilder(name string) (*Builder, error) {
	chain, ok := engine.Preset(name)
	if !ok {
		return nil, fmt.Errorf("unknown preset %q", name)
	}
	b := NewBuilder()
	b.opts.Filters = chain
	return b, nil
}

// Build returns the final Options with parameters forced into range.
func (b *Builder) Build() Options {
	opts := b.opts
	opts.Filters = append([]engine.Filter(nil), b.opts.Filters...)
	opts.Params = opts.Params.Clamped()
	return opts
}

// Then appends filters to the chain.
func (b *Builder) Then(f ...engine.Filter) *Builder {
	b.opts.Filters = append(b.opts.Filters, f...)
	return b
}

// WithSeed sets the seed for Voronoi placement and the channel roll.
func (b *Builder) WithSeed(seed int64) *Builder {
	b.opts.Seed = seed
	return b
}

// WithParams replaces every parameter at once.
func (b *Builder) WithParams(p filters.Params) *Builder {
	b.opts.Params = p
	return b
}

// WithSaturation sets the saturation amount and luminance weights.
func (b *Builder) WithSaturation(sat, lumR, lumG, lumB float64) *Builder {
	b.opts.Params.SaturationVal = sat
	b.opts.Params.LumR, b.opts.Params.LumG, b.opts.Params.LumB = lumR, lumG, lumB
	return b
}

// WithOutlineLimit sets the outline difference threshold.
func (b *Builder) WithOutlineLimit(limit int) *Builder {
	b.opts.Params.OutlineLimit = limit
	return b
}

// WithChannelOffset sets the horizontal shift of the channel-offset filter.
func (b *Builder) WithChannelOffset(offset int) *Builder {
	b.opts.Params.ChanOffset = offset
	return b
}

// WithChannel pins the shifted channel (0 R, 1 G, 2 B) instead of rolling it.
func (b *Builder) WithChannel(selector int) *Builder {
	b.opts.Params.ChannelSelector = selector
	b.opts.RollChannel = false
	return b
}

// WithChunkSize sets the mosaic tile size.
func (b *Builder) WithChunkSize(size int) *Builder {
	b.opts.Params.ChunkSize = size
	return b
}

// WithCRT sets scanline thickness, bright-row boost and dark-row intensity.
func (b *Builder) WithCRT(thickness int, boost, intensity float64) *Builder {
	b.opts.Params.ScanLineThickness = thickness
	b.opts.Params.BrightBoost = boost
	b.opts.Params.Intensity = intensity
	return b
}

// WithVoronoiNeighbors sets the seed grid density.
func (b *Builder) WithVoronoiNeighbors(n int) *Builder {
	b.opts.Params.VoronoiNeighborCount = n
	return b
}

// WithThinning sets iteration count and binarization threshold.
func (b *Builder) WithThinning(iterations int, threshold float64) *Builder {
	b.opts.Params.ThinningIterations = iterations
	b.opts.Params.ThinningThreshold = threshold
	return b
}

// WithKuwaharaFactor sets the quadrant size.
func (b *Builder) WithKuwaharaFactor(f int) *Builder {
	b.opts.Params.KuwaharaFactor = f
	return b
}

// WithBlurSigma sets the gaussian standard deviation.
func (b *Builder) WithBlurSigma(sigma float64) *Builder {
	b.opts.Params.BlurSigma = sigma
	return b
}

// WithDotSpacing sets the halftone grid spacing.
func (b *Builder) WithDotSpacing(spacing int) *Builder {
	b.opts.Params.DotSpacing = spacing
	return b
}

// Apply runs opts over img and returns a new image. img is not modified.
// Dots are rendered through a gg canvas.
func Apply(ctx context.Context, img image.Image, opts Options) (*image.NRGBA, error) {
	if len(opts.Filters) == 0 {
		return nil, ErrEmptyChain
	}

	params := opts.Params
	if opts.RollChannel {
		params.GenerateChannelSelector(rand.New(rand.NewSource(opts.Seed)))
	}

	stage := filter.NewStage(ggrenderer.New(), nullsink.New(), logger.NewNoop())
	result, err := stage.Execute(ctx, pipeline.FilterInput{
		Job:     "pixelfx",
		Source:  pixbuf.FromImage(img),
		Filters: opts.Filters,
		Params:  params,
		Seed:    opts.Seed,
	})
	if err != nil {
		return nil, err
	}
	return result.Buffer.ToImage(), nil
}
