package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// It allows saving the image after every filter step for inspection.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveParams saves the effective filter parameters as YAML.
	SaveParams(job string, data []byte) error

	// SaveSource saves the decoded input image of a job.
	SaveSource(job string, img image.Image) error

	// SaveStep saves the image produced by one filter step.
	SaveStep(job string, index int, filter string, img image.Image) error
}
