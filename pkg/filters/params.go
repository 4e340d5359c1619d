package filters

// Params holds the tunable knobs of every filter. It is owned by the caller
// and only read by filters. Ranges are enforced by the caller; filters only
// guard against values that would make the arithmetic undefined.
type Params struct {
	// Saturation (ranges 0..5)
	SaturationVal float64 `yaml:"saturation_val"`
	LumR          float64 `yaml:"lum_r"`
	LumG          float64 `yaml:"lum_g"`
	LumB          float64 `yaml:"lum_b"`

	// Outline (1..20)
	OutlineLimit int `yaml:"outline_limit"`

	// Channel offset (1..15). ChannelSelector picks R, G or B (0, 1, 2)
	// and is rolled once per session with GenerateChannelSelector.
	ChanOffset      int `yaml:"chan_offset"`
	ChannelSelector int `yaml:"channel_selector"`

	// Mosaic (1..20)
	ChunkSize int `yaml:"chunk_size"`

	// CRT
	ScanLineThickness int     `yaml:"scan_line_thickness"` // 0..10, 0 disables bright rows
	BrightBoost       float64 `yaml:"bright_boost"`        // 0..1
	Intensity         float64 `yaml:"intensity"`           // 0..1

	// Voronoi (10..60)
	VoronoiNeighborCount int `yaml:"voronoi_neighbor_count"`

	// Thinning
	ThinningIterations int     `yaml:"thinning_iterations"` // >= 0
	ThinningThreshold  float64 `yaml:"thinning_threshold"`  // 0..1, zero selects 0.5

	// Kuwahara quadrant size (1..20)
	KuwaharaFactor int `yaml:"kuwahara_factor"`

	// Gaussian blur standard deviation (0..20)
	BlurSigma float64 `yaml:"blur_sigma"`

	// Dot halftone grid spacing (1..20)
	DotSpacing int `yaml:"dot_spacing"`
}

// DefaultParams returns the default value of every knob.
func DefaultParams() Params {
	return Params{
		SaturationVal: 0.5,
		LumR:          0.5,
		LumG:          0.5,
		LumB:          0.5,

		OutlineLimit: 10,

		ChanOffset:      7,
		ChannelSelector: 0,

		ChunkSize: 5,

		ScanLineThickness: 4,
		BrightBoost:       0.35,
		Intensity:         0.25,

		VoronoiNeighborCount: 30,

		ThinningIterations: 1,
		ThinningThreshold:  0.5,

		KuwaharaFactor: 4,

		BlurSigma: 2.0,

		DotSpacing: 4,
	}
}

// RandSource is the uniform random source filters draw from.
// *math/rand.Rand satisfies it.
type RandSource interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// GenerateChannelSelector rolls a new channel for the channel-offset filter.
func (p *Params) GenerateChannelSelector(rng RandSource) {
	p.ChannelSelector = rng.Intn(3)
}
