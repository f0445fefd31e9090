package report

import (
	"fmt"
	"strings"
	"testing"
)

func TestClockFormat(t *testing.T) {
	tests := []struct {
		ms   int64
		want string
	}{
		{0, "00m 00s .000ms"},
		{1, "00m 00s .001ms"},
		{999, "00m 00s .999ms"},
		{1000, "00m 01s .000ms"},
		{59_999, "00m 59s .999ms"},
		{60_000, "01m 00s .000ms"},
		{3_599_999, "59m 59s .999ms"},
		{3_600_000, "01h 00m 00s .000ms"},
		{3_661_234, "01h 01m 01s .234ms"},
		{90_000_000, "25h 00m 00s .000ms"},
		{-5, "00m 00s .000ms"},
	}

	for _, tt := range tests {
		if got := ClockFormat(tt.ms); got != tt.want {
			t.Errorf("ClockFormat(%d) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}

func TestClockFormat_RoundTripsComponents(t *testing.T) {
	for _, ms := range []int64{0, 999, 61_001, 3_600_000, 86_399_999, 123_456_789} {
		hours := ms / 3_600_000
		mins := (ms % 3_600_000) / 60_000
		secs := (ms % 60_000) / 1000
		millis := ms % 1000

		got := ClockFormat(ms)

		wantHour := hours > 0
		if gotHour := strings.Contains(got, "h "); gotHour != wantHour {
			t.Errorf("ClockFormat(%d) = %q: hour field presence %v, want %v", ms, got, gotHour, wantHour)
		}
		for _, part := range []string{
			fmt.Sprintf("%02dm", mins),
			fmt.Sprintf("%02ds", secs),
			fmt.Sprintf(".%03dms", millis),
		} {
			if !strings.Contains(got, part) {
				t.Errorf("ClockFormat(%d) = %q: missing %q", ms, got, part)
			}
		}
	}
}

func TestGroupDigits(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{42, "42"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{100000, "100,000"},
		{-1, "-1"},
		{-1234, "-1,234"},
		{-1234567, "-1,234,567"},
		{9223372036854775807, "9,223,372,036,854,775,807"},
	}

	for _, tt := range tests {
		if got := GroupDigits(tt.n); got != tt.want {
			t.Errorf("GroupDigits(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestGroupDigits_PreservesDigits(t *testing.T) {
	for _, n := range []int64{7, 1234, 987654321, -42, -100200300} {
		got := GroupDigits(n)
		stripped := strings.ReplaceAll(got, ",", "")
		if want := fmt.Sprintf("%d", n); stripped != want {
			t.Errorf("GroupDigits(%d) = %q: digits %q, want %q", n, got, stripped, want)
		}
	}
}
