package filesink

import (
	"errors"
	"image"
	"path/filepath"
	"testing"

	"github.com/user/pixelfx/pkg/mocks"
	"github.com/user/pixelfx/pkg/ports"
)

// testBaseDir is a platform-independent base directory for tests
var testBaseDir = filepath.Join("debug")

func TestSink_Enabled(t *testing.T) {
	sink := New(testBaseDir, mocks.NewFileSystem(), &mocks.Renderer{})

	if !sink.Enabled() {
		t.Error("expected Enabled to return true")
	}
}

func TestSink_SaveParams(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, &mocks.Renderer{})

	data := []byte("saturation_val: 2\n")
	if err := sink.SaveParams("cat", data); err != nil {
		t.Fatalf("SaveParams failed: %v", err)
	}

	expectedPath := filepath.Join(testBaseDir, "cat", "params.yaml")
	saved, ok := fs.GetFile(expectedPath)
	if !ok {
		t.Fatalf("expected file to be saved at %s", expectedPath)
	}
	if string(saved) != string(data) {
		t.Errorf("expected %q, got %q", data, saved)
	}
}

func TestSink_SaveSourceEncodesPNG(t *testing.T) {
	fs := mocks.NewFileSystem()
	var gotFormat ports.ImageFormat = -1
	renderer := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			gotFormat = format
			return []byte("png-bytes"), nil
		},
	}
	sink := New(testBaseDir, fs, renderer)

	if err := sink.SaveSource("cat", image.NewNRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("SaveSource failed: %v", err)
	}

	if gotFormat != ports.FormatPNG {
		t.Errorf("expected PNG, got %v", gotFormat)
	}
	if _, ok := fs.GetFile(filepath.Join(testBaseDir, "cat", "source.png")); !ok {
		t.Error("expected source.png to be saved")
	}
}

func TestSink_SaveStepNaming(t *testing.T) {
	fs := mocks.NewFileSystem()
	sink := New(testBaseDir, fs, &mocks.Renderer{})
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))

	if err := sink.SaveStep("cat", 1, "invert", img); err != nil {
		t.Fatalf("SaveStep failed: %v", err)
	}
	if err := sink.SaveStep("cat", 12, "edge_detect", img); err != nil {
		t.Fatalf("SaveStep failed: %v", err)
	}

	for _, name := range []string{"01-invert.png", "12-edge_detect.png"} {
		path := filepath.Join(testBaseDir, "cat", "steps", name)
		if _, ok := fs.GetFile(path); !ok {
			t.Errorf("expected %s to be saved", path)
		}
	}
}

func TestSink_EncodeError(t *testing.T) {
	fs := mocks.NewFileSystem()
	encErr := errors.New("boom")
	renderer := &mocks.Renderer{
		EncodeImageFunc: func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
			return nil, encErr
		},
	}
	sink := New(testBaseDir, fs, renderer)

	err := sink.SaveStep("cat", 1, "invert", image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	if !errors.Is(err, encErr) {
		t.Errorf("expected wrapped encode error, got %v", err)
	}
	if len(fs.Paths()) != 0 {
		t.Error("expected nothing written on encode failure")
	}
}
