package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/pixelfx/pkg/ports"
)

func TestConsoleLogger_Levels(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewWriter(ports.LevelInfo, &out, &errOut)

	log.Debug("debug line %d", 1)
	log.Info("info line %d", 2)
	log.Warn("warn line %d", 3)
	log.Error("error line %d", 4)

	if strings.Contains(out.String(), "debug line") {
		t.Error("debug output should be filtered at info level")
	}
	if !strings.Contains(out.String(), "info line 2") {
		t.Errorf("expected info on stdout, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "warn line 3") || !strings.Contains(errOut.String(), "error line 4") {
		t.Errorf("expected warn and error on stderr, got %q", errOut.String())
	}
}

func TestConsoleLogger_WithComponent(t *testing.T) {
	var out bytes.Buffer
	base := NewWriter(ports.LevelDebug, &out, &out)

	base.WithComponent("engine").Debug("applied %s", "invert")
	base.Info("plain")

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", out.String())
	}
	if lines[0] != "[engine] applied invert" {
		t.Errorf("unexpected component line %q", lines[0])
	}
	if lines[1] != "plain" {
		t.Errorf("base logger should not carry the component, got %q", lines[1])
	}
}

func TestConsoleLogger_Quiet(t *testing.T) {
	var out bytes.Buffer
	log := NewWriter(ports.LevelQuiet, &out, &out)
	log.Error("nothing")
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}
