package main

import (
	"bytes"
	"testing"

	"github.com/user/framecount/pkg/adapters/spinner"
)

func TestNewProgress_RedirectedOutputStaysClean(t *testing.T) {
	var buf bytes.Buffer

	prog := newProgress(false, false, &buf)
	prog.Tick()
	prog.Tick()
	prog.Tick()
	prog.Finish()

	if buf.Len() != 0 {
		t.Errorf("expected no output without a terminal, got %q", buf.String())
	}
	if _, ok := prog.(*spinner.Noop); !ok {
		t.Errorf("expected noop progress without a terminal, got %T", prog)
	}
}

func TestNewProgress_QuietSuppressesSpinner(t *testing.T) {
	var buf bytes.Buffer

	prog := newProgress(true, true, &buf)
	prog.Tick()
	prog.Finish()

	if buf.Len() != 0 {
		t.Errorf("expected no output in quiet mode, got %q", buf.String())
	}
}

func TestNewProgress_TerminalGetsLiveSpinner(t *testing.T) {
	var buf bytes.Buffer

	prog := newProgress(false, true, &buf)
	if _, ok := prog.(*spinner.Spinner); !ok {
		t.Errorf("expected live spinner on a terminal, got %T", prog)
	}
}
