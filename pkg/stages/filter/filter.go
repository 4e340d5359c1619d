// Package filter implements the stage that runs a chain of filters.
package filter

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/user/pixelfx/pkg/engine"
	"github.com/user/pixelfx/pkg/pipeline"
	"github.com/user/pixelfx/pkg/ports"
)

// Stage applies filters one after another, each seeing the previous
// result as its pre-filter state.
type Stage struct {
	canvases engine.CanvasFactory
	sink     ports.DebugSink
	logger   ports.Logger
}

// NewStage creates a new filter stage. canvases may be nil.
func NewStage(canvases engine.CanvasFactory, sink ports.DebugSink, logger ports.Logger) *Stage {
	return &Stage{
		canvases: canvases,
		sink:     sink,
		logger:   logger.WithComponent("filter"),
	}
}

// Execute runs the chain over a copy of input.Source.
// The engine is created per call so that concurrent jobs never share a
// random source.
func (s *Stage) Execute(ctx context.Context, input pipeline.FilterInput) (pipeline.FilterResult, error) {
	result := pipeline.FilterResult{}

	if err := input.Source.Validate(); err != nil {
		return result, fmt.Errorf("source: %w", err)
	}

	eng := engine.New(rand.New(rand.NewSource(input.Seed)), s.canvases, s.logger)
	params := input.Params
	current := input.Source.Clone()

	s.logger.Debug("Running %d filters on %s", len(input.Filters), input.Job)

	for i, f := range input.Filters {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		start := time.Now()
		if err := eng.Apply(ctx, f, current, nil, &params); err != nil {
			return result, fmt.Errorf("step %d: %w", i+1, err)
		}
		step := pipeline.StepResult{
			Index:      i + 1,
			Filter:     f,
			DurationMs: time.Since(start).Milliseconds(),
		}
		result.Steps = append(result.Steps, step)
		s.logger.Info("Step %d/%d: %s (%d ms)", step.Index, len(input.Filters), f, step.DurationMs)

		if s.sink.Enabled() {
			if err := s.sink.SaveStep(input.Job, step.Index, f.String(), current.ToImage()); err != nil {
				s.logger.Warn("Failed to save debug step %d: %v", step.Index, err)
			}
		}
	}

	result.Buffer = current
	return result, nil
}
