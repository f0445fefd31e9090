// Package analyzer implements the single-pass decode-and-accumulate
// loop that produces frame-accurate duration statistics.
package analyzer

import (
	"errors"
	"io"

	"github.com/user/framecount/pkg/ports"
)

// Stats holds the running statistics accumulated over one pass.
type Stats struct {
	// FrameCount is the total number of decoded frames.
	FrameCount int64

	// LastKeyFrameIndex is the FrameCount value recorded immediately
	// before the most recent key frame was counted.
	LastKeyFrameIndex int64

	// HighestDTS is the maximum decode timestamp seen across packets
	// of the selected stream, in stream time-base ticks. Only
	// meaningful when HasDTS is true.
	HighestDTS int64
	HasDTS     bool
}

// Options configures the accumulator loop.
type Options struct {
	// DrainTail flushes the decoder after the final packet and
	// counts the frames still buffered inside it. Off by default:
	// the historical behavior leaves those frames uncounted.
	DrainTail bool
}

// Analyzer drives a FrameDecoder over a packet sequence and maintains
// the running statistics.
type Analyzer struct {
	log  ports.Logger
	opts Options
}

// New creates an Analyzer.
func New(log ports.Logger, opts Options) *Analyzer {
	return &Analyzer{log: log.WithComponent("analyzer"), opts: opts}
}

// Run consumes src to exhaustion, decoding packets of the stream with
// index videoStream and accumulating statistics. The progress
// indicator advances once per packet visited, selected or not.
//
// Any demux or decode failure aborts the run; no partial statistics
// are returned.
func (a *Analyzer) Run(src ports.PacketSource, dec ports.FrameDecoder, videoStream int, prog ports.Progress) (Stats, error) {
	var stats Stats

	for {
		pkt, err := src.ReadPacket()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Stats{}, err
		}

		prog.Tick()

		// Packets from other streams never reach the decoder and
		// never affect statistics.
		if pkt.StreamIndex != videoStream {
			continue
		}

		if pkt.HasDTS {
			if !stats.HasDTS || pkt.DTS > stats.HighestDTS {
				stats.HighestDTS = pkt.DTS
				stats.HasDTS = true
			}
		}

		if err := dec.Send(pkt); err != nil {
			return Stats{}, err
		}

		if err := a.drain(dec, &stats); err != nil {
			return Stats{}, err
		}
	}

	if a.opts.DrainTail {
		a.log.Debug("draining frames buffered after the final packet")
		if err := dec.Flush(); err != nil {
			return Stats{}, err
		}
		if err := a.drain(dec, &stats); err != nil {
			return Stats{}, err
		}
	}

	a.log.Debug("pass complete: %d frames, last key frame at %d", stats.FrameCount, stats.LastKeyFrameIndex)
	return stats, nil
}

// drain pulls decoded frames until the decoder reports none are
// immediately available. Mandatory after every Send: decoders buffer
// frames across packets.
func (a *Analyzer) drain(dec ports.FrameDecoder, stats *Stats) error {
	for {
		frame, ok, err := dec.Receive()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if frame.Key {
			// Snapshot taken before this frame's own increment.
			stats.LastKeyFrameIndex = stats.FrameCount
		}
		stats.FrameCount++
	}
}
