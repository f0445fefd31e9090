package report

import (
	"strings"
	"testing"
	"time"

	"github.com/user/framecount/pkg/analyzer"
	"github.com/user/framecount/pkg/ports"
)

func TestMediaDurationMs(t *testing.T) {
	tests := []struct {
		name     string
		declared int64
		timeBase ports.Rational
		want     int64
	}{
		{
			name:     "microsecond ticks",
			declared: 5_000_000,
			timeBase: ports.Rational{Num: 1_000_000, Den: 1},
			want:     5_000_000 * 1 / 1_000_000 * 1000, // 5000
		},
		{
			name:     "ratio taken before scaling",
			declared: 1,
			timeBase: ports.Rational{Num: 3, Den: 1},
			want:     333, // 1/3 * 1000 truncated
		},
		{
			name:     "zero numerator yields zero",
			declared: 100,
			timeBase: ports.Rational{Num: 0, Den: 1},
			want:     0,
		},
		{
			name:     "negative declared duration clamps to zero",
			declared: -1,
			timeBase: ports.Rational{Num: 1, Den: 1000},
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Report{DeclaredDuration: tt.declared, TimeBase: tt.timeBase}
			if got := r.MediaDurationMs(); got != tt.want {
				t.Errorf("MediaDurationMs() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLastFrameMs(t *testing.T) {
	tests := []struct {
		name     string
		stats    analyzer.Stats
		timeBase ports.Rational
		want     int64
	}{
		{
			name:     "90kHz ticks",
			stats:    analyzer.Stats{HighestDTS: 90_000, HasDTS: true},
			timeBase: ports.Rational{Num: 1, Den: 90_000},
			want:     1000,
		},
		{
			name:     "truncated toward zero",
			stats:    analyzer.Stats{HighestDTS: 1, HasDTS: true},
			timeBase: ports.Rational{Num: 1, Den: 3},
			want:     333,
		},
		{
			name:     "no timestamp observed",
			stats:    analyzer.Stats{},
			timeBase: ports.Rational{Num: 1, Den: 90_000},
			want:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Report{Stats: tt.stats, TimeBase: tt.timeBase}
			if got := r.LastFrameMs(); got != tt.want {
				t.Errorf("LastFrameMs() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestText_Sections(t *testing.T) {
	r := Report{
		DeclaredDuration: 5_000_000,
		TimeBase:         ports.Rational{Num: 1_000_000, Den: 1},
		Stats: analyzer.Stats{
			FrameCount:        1234567,
			LastKeyFrameIndex: 1234500,
			HighestDTS:        4_800_000,
			HasDTS:            true,
		},
		Elapsed: 1500 * time.Millisecond,
	}

	out := r.Text(false)

	for _, want := range []string{
		"Basic file metadata -",
		"Declared duration (ticks): 5000000",
		"Media Duration: 00m 05s .000ms",
		"Time base numerator: 1000000",
		"Time base denominator: 1",
		"Calculated from the frames -",
		"Last key frame id: 1,234,500",
		"Frames count: 1,234,567",
		"Last Frame Time: 00m 04s .800ms",
		"Code execution time: 00m 01s .500ms",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}

	if strings.Contains(out, "MP4 box metadata") {
		t.Error("box section rendered without box info")
	}
	if strings.Contains(out, "\033[") {
		t.Error("ANSI escapes present with color disabled")
	}
}

func TestText_ColorAndBoxInfo(t *testing.T) {
	r := Report{
		TimeBase: ports.Rational{Num: 1, Den: 1000},
		Box: &BoxInfo{
			Timescale:       1000,
			DurationTicks:   60_000,
			DurationMs:      60_000,
			TrackDurationMs: 59_500,
		},
	}

	out := r.Text(true)

	if !strings.Contains(out, blueBold+"Basic file metadata -"+styleReset) {
		t.Error("expected styled section header with color enabled")
	}
	for _, want := range []string{
		"MP4 box metadata -",
		"Movie timescale: 1000",
		"Movie duration (ticks): 60000",
		"Movie duration: 01m 00s .000ms",
		"Video track duration: 00m 59s .500ms",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
