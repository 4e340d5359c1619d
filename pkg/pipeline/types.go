package pipeline

import (
	"github.com/user/pixelfx/pkg/engine"
	"github.com/user/pixelfx/pkg/filters"
	"github.com/user/pixelfx/pkg/pixbuf"
	"github.com/user/pixelfx/pkg/ports"
)

// =============================================================================
// Decode Stage Types
// =============================================================================

// DecodeInput contains encoded image data.
type DecodeInput struct {
	Data []byte

	// MaxDimension bounds the longer side of the decoded image.
	// Larger images are scaled down keeping the aspect ratio. 0 disables.
	MaxDimension int
}

// DecodeResult contains the decoded pixel buffer.
type DecodeResult struct {
	Buffer *pixbuf.Buffer
	Format ports.ImageFormat

	// OriginalWidth and OriginalHeight are the dimensions before any downscale.
	OriginalWidth  int
	OriginalHeight int
	Resized        bool
}

// =============================================================================
// Filter Stage Types
// =============================================================================

// FilterInput describes a filter chain to run over a source buffer.
type FilterInput struct {
	// Job names the run for debug output.
	Job string

	// Source is never modified; the chain starts from a copy of it.
	Source *pixbuf.Buffer

	Filters []engine.Filter
	Params  filters.Params

	// Seed feeds the random source used by Voronoi.
	Seed int64
}

// StepResult reports one applied filter.
type StepResult struct {
	Index      int // 1-based position in the chain
	Filter     engine.Filter
	DurationMs int64
}

// FilterResult contains the filtered buffer.
type FilterResult struct {
	Buffer *pixbuf.Buffer
	Steps  []StepResult
}

// =============================================================================
// Encode Stage Types
// =============================================================================

// EncodeInput contains the buffer to encode.
type EncodeInput struct {
	Buffer  *pixbuf.Buffer
	Format  ports.ImageFormat
	Quality int // JPEG quality (1-100)
}

// EncodeResult contains the encoded image.
type EncodeResult struct {
	Data     []byte
	FileSize int64
}
