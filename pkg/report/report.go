// Package report assembles and renders the frame statistics report.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/ideamans/go-l10n"
	"github.com/user/framecount/pkg/analyzer"
	"github.com/user/framecount/pkg/ports"
)

// ANSI styling for section headers.
const (
	blueBold   = "\033[1;34m"
	styleReset = "\033[0m"
)

// BoxInfo holds container durations read directly from MP4 boxes,
// independent of any decoding.
type BoxInfo struct {
	Timescale       uint32
	DurationTicks   uint64
	DurationMs      int64
	TrackDurationMs int64
}

// Report is the final, read-only result of one inspection pass.
type Report struct {
	// DeclaredDuration is the container-declared duration in ticks.
	DeclaredDuration int64

	// TimeBase is the selected video stream's time base.
	TimeBase ports.Rational

	// Stats are the accumulated frame statistics.
	Stats analyzer.Stats

	// Elapsed is the wall-clock time the pass took.
	Elapsed time.Duration

	// Box carries the optional MP4 box-level cross-check.
	Box *BoxInfo
}

// MediaDurationMs computes the container duration in milliseconds from
// the declared ticks. The ratio is taken in floating point before
// scaling, then truncated; negative results clamp to zero.
func (r *Report) MediaDurationMs() int64 {
	if r.TimeBase.Num == 0 {
		return 0
	}
	ms := float64(r.DeclaredDuration) * float64(r.TimeBase.Den) / float64(r.TimeBase.Num) * 1000
	if ms < 0 {
		return 0
	}
	return int64(ms)
}

// LastFrameMs computes the time of the highest observed decode
// timestamp in milliseconds, or zero when no timestamp was observed.
func (r *Report) LastFrameMs() int64 {
	if !r.Stats.HasDTS || r.TimeBase.Den == 0 {
		return 0
	}
	ms := float64(r.Stats.HighestDTS) * float64(r.TimeBase.Num) / float64(r.TimeBase.Den) * 1000
	if ms < 0 {
		return 0
	}
	return int64(ms)
}

// Text renders the fixed two-section report. Headers are styled when
// color is enabled.
func (r *Report) Text(color bool) string {
	var b strings.Builder

	header := func(title string) {
		if color {
			fmt.Fprintf(&b, "%s%s%s\n", blueBold, title, styleReset)
		} else {
			fmt.Fprintf(&b, "%s\n", title)
		}
	}

	header(l10n.T("Basic file metadata -"))
	fmt.Fprintf(&b, "%s\n", l10n.F("Declared duration (ticks): %d", r.DeclaredDuration))
	fmt.Fprintf(&b, "%s\n", l10n.F("Media Duration: %s", ClockFormat(r.MediaDurationMs())))
	fmt.Fprintf(&b, "%s\n", l10n.F("Time base numerator: %d", r.TimeBase.Num))
	fmt.Fprintf(&b, "%s\n", l10n.F("Time base denominator: %d", r.TimeBase.Den))

	if r.Box != nil {
		header(l10n.T("MP4 box metadata -"))
		fmt.Fprintf(&b, "%s\n", l10n.F("Movie timescale: %d", r.Box.Timescale))
		fmt.Fprintf(&b, "%s\n", l10n.F("Movie duration (ticks): %d", r.Box.DurationTicks))
		fmt.Fprintf(&b, "%s\n", l10n.F("Movie duration: %s", ClockFormat(r.Box.DurationMs)))
		fmt.Fprintf(&b, "%s\n", l10n.F("Video track duration: %s", ClockFormat(r.Box.TrackDurationMs)))
	}

	header(l10n.T("Calculated from the frames -"))
	fmt.Fprintf(&b, "%s\n", l10n.F("Last key frame id: %s", GroupDigits(r.Stats.LastKeyFrameIndex)))
	fmt.Fprintf(&b, "%s\n", l10n.F("Frames count: %s", GroupDigits(r.Stats.FrameCount)))
	fmt.Fprintf(&b, "%s\n", l10n.F("Last Frame Time: %s", ClockFormat(r.LastFrameMs())))
	fmt.Fprintf(&b, "%s\n", l10n.F("Code execution time: %s", ClockFormat(r.Elapsed.Milliseconds())))

	return b.String()
}
