package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/user/pixelfx/pkg/engine"
	"github.com/user/pixelfx/pkg/filters"
	"github.com/user/pixelfx/pkg/ports"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.Params != filters.DefaultParams() {
		t.Error("expected default filter parameters")
	}
	if !cfg.RollChannel || cfg.Quality != 90 || cfg.LogLevel != "info" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pixelfx.yaml")
	yml := `filters: [grayscale, edge-detect]
params:
  chunk_size: 8
  blur_sigma: 3.5
seed: 42
format: jpeg
quality: 75
debug: true
side_by_side: true
gap: 4
`
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if !cfg.SideBySide || cfg.Gap != 4 {
		t.Errorf("expected side by side with gap 4, got %v %d", cfg.SideBySide, cfg.Gap)
	}
	if cfg.Params.ChunkSize != 8 || cfg.Params.BlurSigma != 3.5 {
		t.Errorf("expected overridden params, got %+v", cfg.Params)
	}
	if cfg.Params.OutlineLimit != 10 {
		t.Errorf("expected unmentioned params to keep defaults, got %d", cfg.Params.OutlineLimit)
	}
	if cfg.Seed != 42 || !cfg.Debug || cfg.DebugDir != "./debug" {
		t.Errorf("unexpected config %+v", cfg)
	}

	oc, err := cfg.ToOrchestratorConfig("out.png")
	if err != nil {
		t.Fatalf("ToOrchestratorConfig failed: %v", err)
	}
	if len(oc.Filters) != 2 || oc.Filters[1] != engine.EdgeDetect {
		t.Errorf("unexpected chain %v", oc.Filters)
	}
	if oc.Format != ports.FormatJPEG || oc.Quality != 75 || oc.Seed != 42 {
		t.Errorf("unexpected orchestrator config %+v", oc)
	}
}

func TestLoadFromFile_Errors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(path, []byte("filters: [unterminated"), 0o644)
	if _, err := LoadFromFile(path); err == nil {
		t.Error("expected parse error")
	}
}

func TestChain(t *testing.T) {
	cfg := Defaults()
	if chain, err := cfg.Chain(); err != nil || chain != nil {
		t.Errorf("expected empty chain, got %v, %v", chain, err)
	}

	cfg.Preset = "retro"
	chain, err := cfg.Chain()
	if err != nil || len(chain) != 2 || chain[0] != engine.Mosaic {
		t.Errorf("unexpected preset chain %v, %v", chain, err)
	}

	cfg.Filters = []string{"invert"}
	if chain, _ := cfg.Chain(); len(chain) != 1 || chain[0] != engine.Invert {
		t.Errorf("explicit filters must win over preset, got %v", chain)
	}

	cfg.Filters = nil
	cfg.Preset = "nope"
	if _, err := cfg.Chain(); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("expected ErrUnknownPreset, got %v", err)
	}

	cfg.Filters = []string{"sepia"}
	if _, err := cfg.ToOrchestratorConfig("x.png"); !errors.Is(err, engine.ErrUnknownFilter) {
		t.Errorf("expected ErrUnknownFilter, got %v", err)
	}
}

func TestOutputFormat(t *testing.T) {
	tests := []struct {
		format, path string
		want         ports.ImageFormat
		wantErr      bool
	}{
		{"", "out.JPG", ports.FormatJPEG, false},
		{"", "out.bmp", ports.FormatBMP, false},
		{"", "out.webp", ports.FormatPNG, false},
		{"", "out", ports.FormatPNG, false},
		{"BMP", "out.png", ports.FormatBMP, false},
		{"webp", "out.png", ports.FormatPNG, true},
		{"gif", "out.png", ports.FormatPNG, true},
	}
	for _, tt := range tests {
		cfg := Config{Format: tt.format}
		got, err := cfg.OutputFormat(tt.path)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("OutputFormat(%q, %q) = %s, %v", tt.format, tt.path, got, err)
		}
	}
}

func TestToOrchestratorConfig_ClampsAndSeeds(t *testing.T) {
	cfg := Defaults()
	cfg.Filters = []string{"mosaic"}
	cfg.Params.ChunkSize = 500
	cfg.Quality = 0

	oc, err := cfg.ToOrchestratorConfig("a.png")
	if err != nil {
		t.Fatalf("ToOrchestratorConfig failed: %v", err)
	}
	if oc.Params.ChunkSize != 20 {
		t.Errorf("expected chunk size clamped to 20, got %d", oc.Params.ChunkSize)
	}
	if oc.Quality != 1 {
		t.Errorf("expected quality clamped to 1, got %d", oc.Quality)
	}
	if oc.Seed == 0 {
		t.Error("expected a time-based seed when none is set")
	}
}
