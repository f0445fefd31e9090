package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/user/framecount/pkg/ports"
)

func TestConsoleLogger_LevelFiltering(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewConsoleWriter(ports.LevelWarn, &out, &errOut)

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	if out.Len() != 0 {
		t.Errorf("expected no stdout output below warn level, got %q", out.String())
	}
	combined := errOut.String()
	if !strings.Contains(combined, "warn message") || !strings.Contains(combined, "error message") {
		t.Errorf("expected warn and error on stderr, got %q", combined)
	}
}

func TestConsoleLogger_StreamSplit(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewConsoleWriter(ports.LevelDebug, &out, &errOut)

	log.Info("to stdout")
	log.Warn("to stderr")

	if !strings.Contains(out.String(), "to stdout") {
		t.Errorf("info should go to stdout, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "to stderr") {
		t.Errorf("warn should go to stderr, got %q", errOut.String())
	}
}

func TestConsoleLogger_ComponentPrefix(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewConsoleWriter(ports.LevelDebug, &out, &errOut).WithComponent("analyzer")

	log.Info("working on %d packets", 5)

	if got := out.String(); got != "[analyzer] working on 5 packets\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestConsoleLogger_QuietLevel(t *testing.T) {
	var out, errOut bytes.Buffer
	log := NewConsoleWriter(ports.LevelQuiet, &out, &errOut)

	log.Error("should not appear")

	if out.Len() != 0 || errOut.Len() != 0 {
		t.Error("quiet level must suppress all output")
	}
}
