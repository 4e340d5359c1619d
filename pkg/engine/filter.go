package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFilter is returned by ParseFilter for names outside the catalog.
var ErrUnknownFilter = errors.New("unknown filter")

// Filter names one transform of the catalog. None runs nothing.
type Filter int

const (
	None Filter = iota
	Grayscale
	Invert
	Saturation
	Outline
	Mosaic
	ChannelOffset
	CRT
	Voronoi
	Thinning
	Kuwahara
	EdgeDetect
	Dots
	Blur
)

var filterNames = [...]string{
	None:          "none",
	Grayscale:     "grayscale",
	Invert:        "invert",
	Saturation:    "saturation",
	Outline:       "outline",
	Mosaic:        "mosaic",
	ChannelOffset: "channel_offset",
	CRT:           "crt",
	Voronoi:       "voronoi",
	Thinning:      "thinning",
	Kuwahara:      "kuwahara",
	EdgeDetect:    "edge_detect",
	Dots:          "dots",
	Blur:          "blur",
}

// String returns the configuration name of the filter.
func (f Filter) String() string {
	if f < 0 || int(f) >= len(filterNames) {
		return fmt.Sprintf("filter(%d)", int(f))
	}
	return filterNames[f]
}

// ParseFilter resolves a filter name. Hyphens are accepted in place of
// underscores and case is ignored.
func ParseFilter(s string) (Filter, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for i, n := range filterNames {
		if n == name {
			return Filter(i), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownFilter, s)
}

// ParseFilters resolves a list of names, stopping at the first unknown one.
func ParseFilters(names []string) ([]Filter, error) {
	out := make([]Filter, 0, len(names))
	for _, n := range names {
		f, err := ParseFilter(n)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// All returns every runnable filter in catalog order, None excluded.
func All() []Filter {
	out := make([]Filter, 0, len(filterNames)-1)
	for i := range filterNames {
		if Filter(i) != None {
			out = append(out, Filter(i))
		}
	}
	return out
}

// NeedsSnapshot reports whether the filter reads neighbors that it also
// writes, and therefore needs an untouched copy of its input.
func (f Filter) NeedsSnapshot() bool {
	switch f {
	case Outline, Mosaic, ChannelOffset, CRT, Voronoi, Kuwahara, EdgeDetect, Dots:
		return true
	}
	return false
}
