// Package mp4probe reads container durations straight from MP4 boxes,
// without decoding. It backs the box-level cross-check of the report.
package mp4probe

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"
)

// ErrNoMovieBox is returned when the file parses as MP4 but carries no
// moov box (e.g. a bare fragment).
var ErrNoMovieBox = errors.New("mp4probe: no moov box")

// Info holds box-level duration facts about an MP4 file.
type Info struct {
	// Timescale is the mvhd movie timescale in ticks per second.
	Timescale uint32

	// DurationTicks is the mvhd duration in movie timescale ticks.
	DurationTicks uint64

	// VideoTracks is the number of video tracks in the movie.
	VideoTracks int

	// TrackDurationTicks is the first video track's mdhd duration in
	// the track's own timescale ticks.
	TrackDurationTicks uint64

	// TrackTimescale is the first video track's mdhd timescale.
	TrackTimescale uint32
}

// DurationMs returns the movie duration in milliseconds.
func (i *Info) DurationMs() int64 {
	if i.Timescale == 0 {
		return 0
	}
	return int64(float64(i.DurationTicks) / float64(i.Timescale) * 1000)
}

// TrackDurationMs returns the first video track's duration in
// milliseconds.
func (i *Info) TrackDurationMs() int64 {
	if i.TrackTimescale == 0 {
		return 0
	}
	return int64(float64(i.TrackDurationTicks) / float64(i.TrackTimescale) * 1000)
}

// Probe reads box-level duration information from the MP4 file at path.
func Probe(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return ProbeReader(f)
}

// ProbeReader reads box-level duration information from rs.
func ProbeReader(rs io.ReadSeeker) (*Info, error) {
	mp4File, err := mp4.DecodeFile(rs)
	if err != nil {
		return nil, fmt.Errorf("decode mp4: %w", err)
	}

	moov := mp4File.Moov
	if moov == nil && mp4File.Init != nil {
		moov = mp4File.Init.Moov
	}
	if moov == nil || moov.Mvhd == nil {
		return nil, ErrNoMovieBox
	}

	info := &Info{
		Timescale:     moov.Mvhd.Timescale,
		DurationTicks: moov.Mvhd.Duration,
	}

	for _, trak := range moov.Traks {
		if trak.Mdia == nil || trak.Mdia.Hdlr == nil || trak.Mdia.Hdlr.HandlerType != "vide" {
			continue
		}
		info.VideoTracks++
		if info.VideoTracks == 1 && trak.Mdia.Mdhd != nil {
			info.TrackDurationTicks = trak.Mdia.Mdhd.Duration
			info.TrackTimescale = trak.Mdia.Mdhd.Timescale
		}
	}

	return info, nil
}
