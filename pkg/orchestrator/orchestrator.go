// Package orchestrator coordinates all pipeline stages.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/user/pixelfx/pkg/engine"
	"github.com/user/pixelfx/pkg/filters"
	"github.com/user/pixelfx/pkg/juxtapose"
	"github.com/user/pixelfx/pkg/pipeline"
	"github.com/user/pixelfx/pkg/ports"
)

// ErrNoFilters is returned when a run is requested with an empty chain.
var ErrNoFilters = errors.New("no filters to apply")

// Config contains all configuration for the orchestrator.
type Config struct {
	// Filter chain, applied in order
	Filters []engine.Filter
	Params  filters.Params

	// Seed drives every random choice of a run.
	Seed int64
	// RollChannel re-rolls Params.ChannelSelector from Seed once per run.
	RollChannel bool

	// Output
	Format       ports.ImageFormat
	Quality      int
	MaxDimension int
	// SideBySide writes the source and the result next to each other,
	// separated by Gap pixels.
	SideBySide bool
	Gap        int

	// Batch
	Workers int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Params:      filters.DefaultParams(),
		Seed:        1,
		RollChannel: true,
		Format:      ports.FormatPNG,
		Quality:     90,
		Gap:         juxtapose.DefaultOptions().Gap,
		Workers:     runtime.NumCPU(),
	}
}

// Job is one input file and where its result goes.
type Job struct {
	Name       string
	InputPath  string
	OutputPath string
}

// NewJob names a job after the input file without its extension.
func NewJob(inputPath, outputPath string) Job {
	base := filepath.Base(inputPath)
	return Job{
		Name:       strings.TrimSuffix(base, filepath.Ext(base)),
		InputPath:  inputPath,
		OutputPath: outputPath,
	}
}

// BatchJobs maps inputs to outDir/<name>-fx<ext>. A name already taken by an
// earlier job, including a suffixed one, gets the next free numeric suffix
// so that no output overwrites another.
func BatchJobs(inputs []string, outDir string, format ports.ImageFormat) []Job {
	jobs := make([]Job, 0, len(inputs))
	used := make(map[string]bool)
	for _, in := range inputs {
		job := NewJob(in, "")
		base := job.Name
		for n := 2; used[job.Name]; n++ {
			job.Name = fmt.Sprintf("%s-%d", base, n)
		}
		used[job.Name] = true
		job.OutputPath = filepath.Join(outDir, job.Name+"-fx"+format.Extension())
		jobs = append(jobs, job)
	}
	return jobs
}

// Orchestrator coordinates the execution of all pipeline stages.
type Orchestrator struct {
	decodeStage pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult]
	filterStage pipeline.Stage[pipeline.FilterInput, pipeline.FilterResult]
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult]
	fs          ports.FileSystem
	sink        ports.DebugSink
	logger      ports.Logger
}

// New creates a new Orchestrator.
func New(
	decodeStage pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult],
	filterStage pipeline.Stage[pipeline.FilterInput, pipeline.FilterResult],
	encodeStage pipeline.Stage[pipeline.EncodeInput, pipeline.EncodeResult],
	fs ports.FileSystem,
	sink ports.DebugSink,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		decodeStage: decodeStage,
		filterStage: filterStage,
		encodeStage: encodeStage,
		fs:          fs,
		sink:        sink,
		logger:      logger,
	}
}

// Run processes a single job.
func (o *Orchestrator) Run(ctx context.Context, config Config, job Job) (RunResult, error) {
	if len(config.Filters) == 0 {
		return RunResult{}, ErrNoFilters
	}
	params := o.sessionParams(config)
	return o.runJob(ctx, config, params, job, config.Seed)
}

// RunBatch processes jobs with a pool of config.Workers workers. Every job
// runs even if others fail; results keep the order of jobs and the returned
// error joins all failures.
func (o *Orchestrator) RunBatch(ctx context.Context, config Config, jobs []Job) ([]RunResult, error) {
	if len(config.Filters) == 0 {
		return nil, ErrNoFilters
	}
	if len(jobs) == 0 {
		return nil, nil
	}

	numWorkers := config.Workers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers > len(jobs) {
		numWorkers = len(jobs)
	}

	o.logger.Info("Processing %d images with %d workers", len(jobs), numWorkers)
	params := o.sessionParams(config)

	queue := make(chan int, len(jobs))
	results := make(chan RunResult, len(jobs))

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range queue {
				job := jobs[idx]
				if err := ctx.Err(); err != nil {
					results <- RunResult{Index: idx, Job: job, Err: err}
					continue
				}
				r, err := o.runJob(ctx, config, params, job, config.Seed+int64(idx))
				r.Index, r.Job, r.Err = idx, job, err
				results <- r
			}
		}()
	}

	for i := range jobs {
		queue <- i
	}
	close(queue)

	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make([]RunResult, 0, len(jobs))
	for r := range results {
		collected = append(collected, r)
	}

	sort.Slice(collected, func(i, j int) bool {
		return collected[i].Index < collected[j].Index
	})

	var errs []error
	for _, r := range collected {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Job.InputPath, r.Err))
		}
	}
	o.logger.Info("Batch completed: %d succeeded, %d failed", len(collected)-len(errs), len(errs))

	return collected, errors.Join(errs...)
}

// SessionParams returns the parameters shared by every job of a run.
// The channel selector is rolled once per run, from the run seed.
func SessionParams(config Config) filters.Params {
	params := config.Params
	if config.RollChannel {
		params.GenerateChannelSelector(rand.New(rand.NewSource(config.Seed)))
	}
	return params
}

func (o *Orchestrator) sessionParams(config Config) filters.Params {
	params := SessionParams(config)
	o.logger.Debug("Channel selector: %d", params.ChannelSelector)
	return params
}

// runJob always starts from the decoded original, so every run of the same
// job and chain is independent of earlier ones.
func (o *Orchestrator) runJob(ctx context.Context, config Config, params filters.Params, job Job, seed int64) (RunResult, error) {
	o.logger.Info("Processing %s", job.InputPath)

	data, err := o.fs.ReadFile(job.InputPath)
	if err != nil {
		o.logger.Error("Failed to read %s: %v", job.InputPath, err)
		return RunResult{}, fmt.Errorf("read input: %w", err)
	}

	decoded, err := o.decodeStage.Execute(ctx, pipeline.DecodeInput{
		Data:         data,
		MaxDimension: config.MaxDimension,
	})
	if err != nil {
		o.logger.Error("Failed to decode %s: %v", job.InputPath, err)
		return RunResult{}, fmt.Errorf("decode stage: %w", err)
	}

	if o.sink.Enabled() {
		o.saveDebugInputs(job, params, decoded)
	}

	filtered, err := o.filterStage.Execute(ctx, pipeline.FilterInput{
		Job:     job.Name,
		Source:  decoded.Buffer,
		Filters: config.Filters,
		Params:  params,
		Seed:    seed,
	})
	if err != nil {
		o.logger.Error("Failed to apply filters to %s: %v", job.InputPath, err)
		return RunResult{}, fmt.Errorf("filter stage: %w", err)
	}

	output := filtered.Buffer
	if config.SideBySide {
		opts := juxtapose.DefaultOptions()
		opts.Gap = config.Gap
		if output, err = juxtapose.Combine(decoded.Buffer, filtered.Buffer, opts); err != nil {
			o.logger.Error("Failed to combine %s side by side: %v", job.InputPath, err)
			return RunResult{}, fmt.Errorf("side by side: %w", err)
		}
	}

	encoded, err := o.encodeStage.Execute(ctx, pipeline.EncodeInput{
		Buffer:  output,
		Format:  config.Format,
		Quality: config.Quality,
	})
	if err != nil {
		o.logger.Error("Failed to encode %s: %v", job.OutputPath, err)
		return RunResult{}, fmt.Errorf("encode stage: %w", err)
	}

	if err := o.fs.WriteFile(job.OutputPath, encoded.Data); err != nil {
		o.logger.Error("Failed to write output: %v", err)
		return RunResult{}, fmt.Errorf("write output: %w", err)
	}
	o.logger.Info("Output saved to %s", job.OutputPath)

	return RunResult{
		Job:            job,
		Width:          output.Width,
		Height:         output.Height,
		OriginalWidth:  decoded.OriginalWidth,
		OriginalHeight: decoded.OriginalHeight,
		InputFormat:    decoded.Format,
		OutputFormat:   config.Format,
		FileSize:       encoded.FileSize,
		Steps:          filtered.Steps,
	}, nil
}

func (o *Orchestrator) saveDebugInputs(job Job, params filters.Params, decoded pipeline.DecodeResult) {
	if data, err := yaml.Marshal(params); err == nil {
		if err := o.sink.SaveParams(job.Name, data); err != nil {
			o.logger.Warn("Failed to save debug output: %v", err)
		}
	}
	if err := o.sink.SaveSource(job.Name, decoded.Buffer.ToImage()); err != nil {
		o.logger.Warn("Failed to save debug output: %v", err)
	}
}

// RunResult contains the results of one job.
type RunResult struct {
	// Index is the position of the job in a batch.
	Index int
	Job   Job
	// Err is set by RunBatch for failed jobs.
	Err error

	// Image information
	Width          int
	Height         int
	OriginalWidth  int
	OriginalHeight int
	InputFormat    ports.ImageFormat
	OutputFormat   ports.ImageFormat
	FileSize       int64

	Steps []pipeline.StepResult
}

// TotalDurationMs sums the time spent in filters.
func (r RunResult) TotalDurationMs() int64 {
	var total int64
	for _, s := range r.Steps {
		total += s.DurationMs
	}
	return total
}
