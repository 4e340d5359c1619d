package mocks

import (
	"image"
	"sync"

	"github.com/user/pixelfx/pkg/ports"
)

// Step is one SaveStep call recorded by DebugSink.
type Step struct {
	Job    string
	Index  int
	Filter string
	Image  image.Image
}

// DebugSink is a mock implementation of ports.DebugSink.
type DebugSink struct {
	mu sync.RWMutex

	enabled bool

	Params  map[string][]byte
	Sources map[string]image.Image
	Steps   []Step

	SaveStepFunc func(job string, index int, filter string, img image.Image) error
}

// NewDebugSink creates a new mock DebugSink.
func NewDebugSink(enabled bool) *DebugSink {
	return &DebugSink{
		enabled: enabled,
		Params:  make(map[string][]byte),
		Sources: make(map[string]image.Image),
	}
}

func (m *DebugSink) Enabled() bool {
	return m.enabled
}

func (m *DebugSink) SaveParams(job string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Params[job] = data
	return nil
}

func (m *DebugSink) SaveSource(job string, img image.Image) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Sources[job] = img
	return nil
}

func (m *DebugSink) SaveStep(job string, index int, filter string, img image.Image) error {
	if m.SaveStepFunc != nil {
		return m.SaveStepFunc(job, index, filter, img)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Steps = append(m.Steps, Step{Job: job, Index: index, Filter: filter, Image: img})
	return nil
}

// StepsFor returns the recorded steps of one job.
func (m *DebugSink) StepsFor(job string) []Step {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Step
	for _, s := range m.Steps {
		if s.Job == job {
			out = append(out, s)
		}
	}
	return out
}

var _ ports.DebugSink = (*DebugSink)(nil)
