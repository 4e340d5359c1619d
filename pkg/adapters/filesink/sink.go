// Package filesink provides a debug sink that writes intermediate images to disk.
package filesink

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/user/pixelfx/pkg/ports"
)

// Sink saves debug output under baseDir/<job>/.
type Sink struct {
	baseDir  string
	fs       ports.FileSystem
	renderer ports.Renderer
}

// New creates a new Sink.
func New(baseDir string, fs ports.FileSystem, renderer ports.Renderer) *Sink {
	return &Sink{
		baseDir:  baseDir,
		fs:       fs,
		renderer: renderer,
	}
}

// Enabled returns true as this sink saves output.
func (s *Sink) Enabled() bool {
	return true
}

// SaveParams writes params.yaml for the job.
func (s *Sink) SaveParams(job string, data []byte) error {
	return s.fs.WriteFile(filepath.Join(s.baseDir, job, "params.yaml"), data)
}

// SaveSource writes the decoded input as source.png.
func (s *Sink) SaveSource(job string, img image.Image) error {
	return s.savePNG(filepath.Join(s.baseDir, job, "source.png"), img)
}

// SaveStep writes steps/NN-<filter>.png.
func (s *Sink) SaveStep(job string, index int, filter string, img image.Image) error {
	name := fmt.Sprintf("%02d-%s.png", index, filter)
	return s.savePNG(filepath.Join(s.baseDir, job, "steps", name), img)
}

func (s *Sink) savePNG(path string, img image.Image) error {
	data, err := s.renderer.EncodeImage(img, ports.FormatPNG, 0)
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return s.fs.WriteFile(path, data)
}

var _ ports.DebugSink = (*Sink)(nil)
