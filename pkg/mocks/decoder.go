package mocks

import "github.com/user/framecount/pkg/ports"

// FrameDecoder is a scripted decoder: the n-th Send makes the frames
// of Frames[n] available to Receive, modeling decoders that buffer
// frames across packets.
type FrameDecoder struct {
	// Frames[n] are the frames drained after the n-th Send. Sends
	// beyond len(Frames) yield no frames.
	Frames [][]ports.Frame

	// TailFrames become available after Flush.
	TailFrames []ports.Frame

	// FailAt makes the Send with this zero-based ordinal return
	// Err. Negative means never.
	FailAt int
	Err    error

	// Sent records every packet submitted, in order.
	Sent []ports.Packet

	Flushed bool
	Closed  bool

	pending []ports.Frame
	sends   int
}

// NewFrameDecoder creates a decoder that yields frames[n] after the
// n-th Send.
func NewFrameDecoder(frames ...[]ports.Frame) *FrameDecoder {
	return &FrameDecoder{Frames: frames, FailAt: -1}
}

// Send records the packet and queues the scripted frames.
func (d *FrameDecoder) Send(pkt ports.Packet) error {
	if d.sends == d.FailAt && d.Err != nil {
		return d.Err
	}
	if d.sends < len(d.Frames) {
		d.pending = append(d.pending, d.Frames[d.sends]...)
	}
	d.sends++
	d.Sent = append(d.Sent, pkt)
	return nil
}

// Receive pops the next queued frame.
func (d *FrameDecoder) Receive() (ports.Frame, bool, error) {
	if len(d.pending) == 0 {
		return ports.Frame{}, false, nil
	}
	frame := d.pending[0]
	d.pending = d.pending[1:]
	return frame, true, nil
}

// Flush makes the tail frames available.
func (d *FrameDecoder) Flush() error {
	d.Flushed = true
	d.pending = append(d.pending, d.TailFrames...)
	return nil
}

// Close marks the decoder closed.
func (d *FrameDecoder) Close() error {
	d.Closed = true
	return nil
}
