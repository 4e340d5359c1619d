package engine

import "sort"

// presets are named filter chains.
var presets = map[string][]Filter{
	"sketch":      {Grayscale, EdgeDetect, Invert},
	"skeleton":    {Grayscale, Thinning},
	"retro":       {Mosaic, CRT},
	"glitch":      {ChannelOffset, CRT, Saturation},
	"paint":       {Kuwahara, Saturation},
	"stained":     {Voronoi, Outline},
	"pointillism": {Blur, Dots},
}

// Preset returns a copy of the named chain.
func Preset(name string) ([]Filter, bool) {
	chain, ok := presets[name]
	if !ok {
		return nil, false
	}
	return append([]Filter(nil), chain...), true
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
