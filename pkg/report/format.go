package report

import (
	"fmt"
	"strings"
)

// ClockFormat converts a millisecond count to a clock string such as
// "01h 01m 01s .234ms". The hour field is omitted when it is zero.
// Negative inputs render as zero.
func ClockFormat(ms int64) string {
	if ms < 0 {
		ms = 0
	}

	hours := ms / 3_600_000
	mins := (ms % 3_600_000) / 60_000
	secs := (ms % 60_000) / 1000
	millis := ms % 1000

	if hours > 0 {
		return fmt.Sprintf("%02dh %02dm %02ds .%03dms", hours, mins, secs, millis)
	}
	return fmt.Sprintf("%02dm %02ds .%03dms", mins, secs, millis)
}

// GroupDigits renders n with a comma every three digits from the
// least-significant end, preserving the sign.
func GroupDigits(n int64) string {
	s := fmt.Sprintf("%d", n)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	if len(s) <= 3 {
		return sign + s
	}

	var b strings.Builder
	head := len(s) % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return sign + b.String()
}
