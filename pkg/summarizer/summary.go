package summarizer

import (
	"time"

	"github.com/user/pixelfx/pkg/orchestrator"
)

// Summary contains all data collected during a run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Run settings
	Settings Settings

	// One entry per input image, in input order
	Images []ImageInfo

	// Filter timings aggregated over all images, in first-seen order
	Filters []FilterTiming
}

// Settings contains the run configuration.
type Settings struct {
	Filters         []string
	Seed            int64
	ChannelSelector int
	Format          string
	Quality         int
	MaxDimension    int // 0 = unlimited
	Workers         int
}

// ImageInfo describes the outcome for one input.
type ImageInfo struct {
	Input  string
	Output string

	Width          int
	Height         int
	OriginalWidth  int
	OriginalHeight int
	FileSize       int64
	DurationMs     int64

	// Error is set for failed images.
	Error string
}

// Resized reports whether the image was downscaled before filtering.
func (i ImageInfo) Resized() bool {
	return i.OriginalWidth != i.Width || i.OriginalHeight != i.Height
}

// FilterTiming accumulates the time spent in one filter.
type FilterTiming struct {
	Filter  string
	Runs    int
	TotalMs int64
}

// AverageMs returns the mean duration per run.
func (f FilterTiming) AverageMs() float64 {
	if f.Runs == 0 {
		return 0
	}
	return float64(f.TotalMs) / float64(f.Runs)
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Failed returns the number of images that failed.
func (s *Summary) Failed() int {
	n := 0
	for _, img := range s.Images {
		if img.Error != "" {
			n++
		}
	}
	return n
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
	index   map[string]int
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
		index:   make(map[string]int),
	}
}

// WithSettings sets the run settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithConfig fills the settings from an orchestrator config.
// channelSelector is the value actually used by the run.
func (b *Builder) WithConfig(cfg orchestrator.Config, channelSelector int) *Builder {
	names := make([]string, len(cfg.Filters))
	for i, f := range cfg.Filters {
		names[i] = f.String()
	}
	return b.WithSettings(Settings{
		Filters:         names,
		Seed:            cfg.Seed,
		ChannelSelector: channelSelector,
		Format:          cfg.Format.String(),
		Quality:         cfg.Quality,
		MaxDimension:    cfg.MaxDimension,
		Workers:         cfg.Workers,
	})
}

// AddStep records one filter run.
func (b *Builder) AddStep(filter string, durationMs int64) *Builder {
	i, ok := b.index[filter]
	if !ok {
		i = len(b.summary.Filters)
		b.index[filter] = i
		b.summary.Filters = append(b.summary.Filters, FilterTiming{Filter: filter})
	}
	b.summary.Filters[i].Runs++
	b.summary.Filters[i].TotalMs += durationMs
	return b
}

// AddResult records the outcome of one job, including its steps.
func (b *Builder) AddResult(r orchestrator.RunResult) *Builder {
	info := ImageInfo{
		Input:  r.Job.InputPath,
		Output: r.Job.OutputPath,
	}
	if r.Err != nil {
		info.Error = r.Err.Error()
		b.summary.Images = append(b.summary.Images, info)
		return b
	}

	info.Width, info.Height = r.Width, r.Height
	info.OriginalWidth, info.OriginalHeight = r.OriginalWidth, r.OriginalHeight
	info.FileSize = r.FileSize
	info.DurationMs = r.TotalDurationMs()
	b.summary.Images = append(b.summary.Images, info)

	for _, s := range r.Steps {
		b.AddStep(s.Filter.String(), s.DurationMs)
	}
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
