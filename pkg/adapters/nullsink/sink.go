// Package nullsink provides a debug sink that discards everything.
package nullsink

import (
	"image"

	"github.com/user/pixelfx/pkg/ports"
)

// Sink is a no-op implementation of ports.DebugSink.
type Sink struct{}

// New creates a new Sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false as this sink discards all output.
func (s *Sink) Enabled() bool {
	return false
}

func (s *Sink) SaveParams(job string, data []byte) error { return nil }

func (s *Sink) SaveSource(job string, img image.Image) error { return nil }

func (s *Sink) SaveStep(job string, index int, filter string, img image.Image) error { return nil }

var _ ports.DebugSink = (*Sink)(nil)
