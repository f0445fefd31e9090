// Package spinner provides a console progress indicator for packet
// processing.
package spinner

import (
	"fmt"
	"io"

	"github.com/ideamans/go-l10n"
	"github.com/schollz/progressbar/v3"
	"github.com/user/framecount/pkg/ports"
)

var (
	_ ports.Progress = (*Spinner)(nil)
	_ ports.Progress = (*Noop)(nil)
)

// Spinner shows a live spinner while packets are processed.
type Spinner struct {
	bar *progressbar.ProgressBar
	out io.Writer
}

// New creates a spinner writing to out.
func New(out io.Writer) *Spinner {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(out),
		progressbar.OptionSpinnerCustom([]string{"/", "|", "\\", "-"}),
		progressbar.OptionSetDescription(l10n.T("Processing packets...")),
		progressbar.OptionSetElapsedTime(false),
	)
	return &Spinner{bar: bar, out: out}
}

// Tick advances the spinner by one packet.
func (s *Spinner) Tick() {
	_ = s.bar.Add(1)
}

// Finish replaces the spinner with a completion message.
func (s *Spinner) Finish() {
	_ = s.bar.Clear()
	fmt.Fprintln(s.out, l10n.T("Processing complete."))
}

// Noop is a progress indicator that does nothing. Used for quiet mode
// and non-interactive output.
type Noop struct{}

// NewNoop creates a no-op progress indicator.
func NewNoop() *Noop {
	return &Noop{}
}

// Tick does nothing.
func (n *Noop) Tick() {}

// Finish does nothing.
func (n *Noop) Finish() {}
