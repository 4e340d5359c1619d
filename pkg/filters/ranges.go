package filters

// Clamped returns a copy of p with every knob forced into its documented
// range, the way a slider would. ThinningIterations has no upper bound.
func (p Params) Clamped() Params {
	p.SaturationVal = clampFloat(p.SaturationVal, 0, 5)
	p.LumR = clampFloat(p.LumR, 0, 5)
	p.LumG = clampFloat(p.LumG, 0, 5)
	p.LumB = clampFloat(p.LumB, 0, 5)
	p.OutlineLimit = clampInt(p.OutlineLimit, 1, 20)
	p.ChanOffset = clampInt(p.ChanOffset, 1, 15)
	p.ChannelSelector = clampInt(p.ChannelSelector, 0, 2)
	p.ChunkSize = clampInt(p.ChunkSize, 1, 20)
	p.ScanLineThickness = clampInt(p.ScanLineThickness, 0, 10)
	p.BrightBoost = clampFloat(p.BrightBoost, 0, 1)
	p.Intensity = clampFloat(p.Intensity, 0, 1)
	p.VoronoiNeighborCount = clampInt(p.VoronoiNeighborCount, 10, 60)
	if p.ThinningIterations < 0 {
		p.ThinningIterations = 0
	}
	p.ThinningThreshold = clampFloat(p.ThinningThreshold, 0, 1)
	p.KuwaharaFactor = clampInt(p.KuwaharaFactor, 1, 20)
	p.BlurSigma = clampFloat(p.BlurSigma, 0, 20)
	p.DotSpacing = clampInt(p.DotSpacing, 1, 20)
	return p
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
