// Package main provides the CLI entry point for pixelfx.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/user/pixelfx/pkg/adapters/filesink"
	"github.com/user/pixelfx/pkg/adapters/ggrenderer"
	"github.com/user/pixelfx/pkg/adapters/logger"
	"github.com/user/pixelfx/pkg/adapters/nullsink"
	"github.com/user/pixelfx/pkg/adapters/osfilesystem"
	"github.com/user/pixelfx/pkg/config"
	"github.com/user/pixelfx/pkg/engine"
	"github.com/user/pixelfx/pkg/filters"
	"github.com/user/pixelfx/pkg/orchestrator"
	"github.com/user/pixelfx/pkg/ports"
	"github.com/user/pixelfx/pkg/stages/decode"
	"github.com/user/pixelfx/pkg/stages/encode"
	"github.com/user/pixelfx/pkg/stages/filter"
	"github.com/user/pixelfx/pkg/summarizer"
)

var version = "dev"

var (
	errNoInput     = errors.New("at least one input image is required")
	errNoOutput    = errors.New("--output or --out-dir is required")
	errSingleOut   = errors.New("--output accepts a single input; use --out-dir for several")
	errNoFilterSet = errors.New("no filters selected; use --filter or --preset")
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, l10n.F("Error: %s", err))
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "pixelfx",
		Usage:   l10n.T("Apply image filters from the command line"),
		Version: version,
		Commands: []*cli.Command{
			applyCommand(),
			filtersCommand(),
		},
	}
}

func applyCommand() *cli.Command {
	return &cli.Command{
		Name:      "apply",
		Usage:     l10n.T("Apply a filter chain to one or more images"),
		ArgsUsage: "<input>...",
		Flags: []cli.Flag{
			// Output
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: l10n.T("Output file path (single input)"), Category: l10n.T("Output")},
			&cli.StringFlag{Name: "out-dir", Aliases: []string{"d"}, Usage: l10n.T("Output directory (one or more inputs)"), Category: l10n.T("Output")},
			&cli.StringFlag{Name: "format", Usage: l10n.T("Output format (png, jpeg, bmp); inferred from --output when omitted"), Category: l10n.T("Output")},
			&cli.IntFlag{Name: "quality", Aliases: []string{"q"}, Usage: l10n.T("JPEG quality (1-100)"), Category: l10n.T("Output")},
			&cli.IntFlag{Name: "max-dimension", Usage: l10n.T("Downscale inputs whose longer side exceeds this size (0 = off)"), Category: l10n.T("Output")},
			&cli.BoolFlag{Name: "side-by-side", Usage: l10n.T("Write the source and the result next to each other"), Category: l10n.T("Output")},
			&cli.IntFlag{Name: "gap", Usage: l10n.T("Gap in pixels between the side-by-side images"), Category: l10n.T("Output")},

			// Filters
			&cli.StringSliceFlag{Name: "filter", Aliases: []string{"f"}, Usage: l10n.T("Filter to apply, repeatable and applied in order"), Category: l10n.T("Filters")},
			&cli.StringFlag{Name: "preset", Aliases: []string{"p"}, Usage: l10n.T("Named filter chain (see the filters command)"), Category: l10n.T("Filters")},
			&cli.StringSliceFlag{Name: "set", Usage: l10n.T("Override a parameter, e.g. --set chunk_size=8"), Category: l10n.T("Filters")},
			&cli.Int64Flag{Name: "seed", Usage: l10n.T("Random seed (0 = time-based)"), Category: l10n.T("Filters")},
			&cli.IntFlag{Name: "channel", Value: -1, Usage: l10n.T("Pin the channel-offset channel (0 R, 1 G, 2 B) instead of rolling it"), Category: l10n.T("Filters")},
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: l10n.T("YAML configuration file"), Category: l10n.T("Filters")},

			// Batch
			&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: l10n.T("Number of images processed in parallel"), Category: l10n.T("Batch")},
			&cli.StringFlag{Name: "summary", Usage: l10n.T("Output execution summary to file (Markdown format)"), Category: l10n.T("Batch")},

			// Debug
			&cli.BoolFlag{Name: "debug", Usage: l10n.T("Save every intermediate step"), Category: l10n.T("Debug")},
			&cli.StringFlag{Name: "debug-dir", Usage: l10n.T("Directory for debug output"), Category: l10n.T("Debug")},

			// Logging
			&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Usage: l10n.T("Log level (debug, info, warn, error)"), Category: l10n.T("Logging")},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Usage: l10n.T("Suppress all log output"), Category: l10n.T("Logging")},
		},
		Action: runApply,
	}
}

func filtersCommand() *cli.Command {
	return &cli.Command{
		Name:  "filters",
		Usage: l10n.T("List available filters and presets"),
		Action: func(c *cli.Context) error {
			w := c.App.Writer
			fmt.Fprintln(w, l10n.T("Filters:"))
			for _, f := range engine.All() {
				fmt.Fprintf(w, "  %s\n", f)
			}
			fmt.Fprintln(w, l10n.T("Presets:"))
			for _, name := range engine.PresetNames() {
				chain, _ := engine.Preset(name)
				names := make([]string, len(chain))
				for i, f := range chain {
					names[i] = f.String()
				}
				fmt.Fprintf(w, "  %-12s %s\n", name, strings.Join(names, ", "))
			}
			return nil
		},
	}
}

func runApply(c *cli.Context) error {
	inputs := c.Args().Slice()
	if len(inputs) == 0 {
		return errNoInput
	}
	output, outDir := c.String("output"), c.String("out-dir")
	if output == "" && outDir == "" {
		return errNoOutput
	}
	if output != "" && len(inputs) > 1 {
		return errSingleOut
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	orchConfig, err := cfg.ToOrchestratorConfig(output)
	if err != nil {
		return err
	}
	if len(orchConfig.Filters) == 0 {
		return errNoFilterSet
	}

	// Create logger
	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	// Create adapters
	fs := osfilesystem.New()
	renderer := ggrenderer.New()

	var sink ports.DebugSink
	if cfg.Debug {
		if err := fs.MkdirAll(cfg.DebugDir); err != nil {
			return fmt.Errorf("create debug directory: %w", err)
		}
		sink = filesink.New(cfg.DebugDir, fs, renderer)
	} else {
		sink = nullsink.New()
	}

	orch := orchestrator.New(
		decode.NewStage(renderer, log),
		filter.NewStage(renderer, sink, log),
		encode.NewStage(renderer, log),
		fs,
		sink,
		log,
	)

	log.Info("Applying %s with seed %d", chainNames(orchConfig.Filters), orchConfig.Seed)

	var results []orchestrator.RunResult
	var runErr error
	if output != "" {
		r, err := orch.Run(ctx, orchConfig, orchestrator.NewJob(inputs[0], output))
		r.Job, r.Err = orchestrator.NewJob(inputs[0], output), err
		results, runErr = []orchestrator.RunResult{r}, err
	} else {
		results, runErr = orch.RunBatch(ctx, orchConfig, orchestrator.BatchJobs(inputs, outDir, orchConfig.Format))
	}

	if path := c.String("summary"); path != "" {
		builder := summarizer.NewBuilder().
			WithConfig(orchConfig, orchestrator.SessionParams(orchConfig).ChannelSelector)
		for _, r := range results {
			builder.AddResult(r)
		}
		w := summarizer.NewWriter(summarizer.NewMarkdownFormatter(
			summarizer.WithTranslator(func(s string) string { return l10n.T(s) }),
			summarizer.WithVersion(version),
		), fs)
		if err := w.Write(path, builder.Build()); err != nil {
			log.Error("Failed to write summary: %v", err)
		} else {
			log.Info("Summary saved to %s", path)
		}
	}

	return runErr
}

// loadConfig layers command-line flags over the configuration file, which
// in turn is layered over the defaults.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	if c.IsSet("filter") {
		cfg.Filters = splitList(c.StringSlice("filter"))
	}
	if c.IsSet("preset") {
		cfg.Preset = c.String("preset")
		if !c.IsSet("filter") {
			cfg.Filters = nil
		}
	}
	for _, kv := range c.StringSlice("set") {
		if err := setParam(&cfg.Params, kv); err != nil {
			return cfg, err
		}
	}
	if c.IsSet("seed") {
		cfg.Seed = c.Int64("seed")
	}
	if ch := c.Int("channel"); ch >= 0 {
		cfg.Params.ChannelSelector = ch
		cfg.RollChannel = false
	}
	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("quality") {
		cfg.Quality = c.Int("quality")
	}
	if c.IsSet("max-dimension") {
		cfg.MaxDimension = c.Int("max-dimension")
	}
	if c.IsSet("side-by-side") {
		cfg.SideBySide = c.Bool("side-by-side")
	}
	if c.IsSet("gap") {
		cfg.Gap = c.Int("gap")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("debug") {
		cfg.Debug = c.Bool("debug")
	}
	if c.IsSet("debug-dir") {
		cfg.DebugDir = c.String("debug-dir")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	return cfg, nil
}

// setParam applies one key=value override using the same YAML keys as the
// configuration file. Unknown keys are rejected.
func setParam(p *filters.Params, kv string) error {
	key, value, ok := strings.Cut(kv, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return fmt.Errorf("invalid --set %q: expected key=value", kv)
	}
	dec := yaml.NewDecoder(strings.NewReader(strings.TrimSpace(key) + ": " + strings.TrimSpace(value)))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil {
		return fmt.Errorf("invalid --set %q: %w", kv, err)
	}
	return nil
}

// splitList accepts both repeated flags and comma-separated values.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func chainNames(chain []engine.Filter) string {
	names := make([]string, len(chain))
	for i, f := range chain {
		names[i] = f.String()
	}
	return strings.Join(names, " → ")
}
