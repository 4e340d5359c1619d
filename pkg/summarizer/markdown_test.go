package summarizer

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/user/pixelfx/pkg/mocks"
)

func sampleSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		Settings: Settings{
			Filters:         []string{"grayscale", "edge_detect"},
			Seed:            42,
			ChannelSelector: 1,
			Format:          "png",
			Quality:         90,
			Workers:         4,
		},
		Images: []ImageInfo{
			{Input: "a.png", Output: "out/a-fx.png", Width: 320, Height: 240, OriginalWidth: 640, OriginalHeight: 480, FileSize: 1024 * 1024, DurationMs: 12},
			{Input: "b.png", Output: "out/b-fx.png", Error: "decode stage: corrupt"},
		},
		Filters: []FilterTiming{
			{Filter: "grayscale", Runs: 1, TotalMs: 2},
			{Filter: "edge_detect", Runs: 1, TotalMs: 10},
		},
	}
}

func TestMarkdownFormatter_Format(t *testing.T) {
	result := NewMarkdownFormatter().Format(sampleSummary())

	checks := []string{
		"# Filter Summary",
		"2024-01-15 10:30:00 UTC",
		"grayscale → edge_detect",
		"| Seed | 42 |",
		"| Channel | G |",
		"| Max Dimension | Unlimited |",
		"320x240 (from 640x480)",
		"1.00 MB",
		"12 ms",
		"Failed: decode stage: corrupt",
		"Failed: 1 / 2",
		"| edge_detect | 1 | 10 ms | 10.0 ms |",
		"pixelfx dev",
	}
	for _, check := range checks {
		if !strings.Contains(result, check) {
			t.Errorf("expected output to contain %q", check)
		}
	}
}

func TestMarkdownFormatter_EmptyRun(t *testing.T) {
	result := NewMarkdownFormatter().Format(&Summary{GeneratedAt: time.Now()})

	if !strings.Contains(result, "| Filters | None |") {
		t.Error("expected empty chain to render as None")
	}
	if strings.Contains(result, "Filter Timings") {
		t.Error("expected no timing section without filters")
	}
}

func TestMarkdownFormatter_WithTranslator(t *testing.T) {
	translator := func(key string) string {
		translations := map[string]string{
			"Filter Summary": "フィルタサマリー",
			"Seed":           "シード",
			"Failed":         "失敗",
		}
		if v, ok := translations[key]; ok {
			return v
		}
		return key
	}

	result := NewMarkdownFormatter(WithTranslator(translator)).Format(sampleSummary())

	for _, want := range []string{"フィルタサマリー", "| シード | 42 |", "失敗: decode stage"} {
		if !strings.Contains(result, want) {
			t.Errorf("expected translated %q", want)
		}
	}
}

func TestMarkdownFormatter_WithVersion(t *testing.T) {
	result := NewMarkdownFormatter(WithVersion("v1.2.0")).Format(sampleSummary())

	if !strings.Contains(result, "v1.2.0") {
		t.Error("expected output to contain version 'v1.2.0'")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{100, "100 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1024 * 1024, "1.00 MB"},
		{1024 * 1024 * 1024, "1.00 GB"},
		{1536 * 1024 * 1024, "1.50 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := formatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("formatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestWriter_Write(t *testing.T) {
	fs := mocks.NewFileSystem()
	w := NewWriter(FormatFunc(func(s *Summary) string { return "report" }), fs)
	path := filepath.Join("out", "summary.md")

	if err := w.Write(path, NewSummary()); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if data, ok := fs.GetFile(path); !ok || string(data) != "report" {
		t.Errorf("expected report to be written, got %q", data)
	}

	fs.WriteFileFunc = func(path string, data []byte) error { return errors.New("read-only") }
	if err := w.Write(path, NewSummary()); err == nil {
		t.Error("expected write error")
	}
}
