package ports

// Rational is a stream time base: ticks are converted to seconds by
// multiplying with Num/Den.
type Rational struct {
	Num int32
	Den int32
}

// Packet is one chunk of compressed data read from the container.
type Packet struct {
	// StreamIndex identifies the stream the packet belongs to.
	StreamIndex int

	// DTS is the decode timestamp in stream time-base ticks.
	// Only meaningful when HasDTS is true.
	DTS    int64
	HasDTS bool

	// Handle carries the demuxer's native packet for its paired
	// decoder. It is only valid until the next ReadPacket call.
	// Pure-Go fakes leave it nil.
	Handle any
}

// Frame describes a single decoded picture.
type Frame struct {
	// Key reports whether the frame is decodable without reference
	// to prior frames.
	Key bool
}

// VideoStreamInfo describes the selected video stream.
type VideoStreamInfo struct {
	Index     int
	TimeBase  Rational
	CodecName string
	Width     int
	Height    int
}

// PacketSource yields demuxed packets in arrival order. The sequence is
// single-pass and non-restartable.
type PacketSource interface {
	// ReadPacket returns the next packet from the container.
	// It returns io.EOF when the container is exhausted.
	ReadPacket() (Packet, error)
}

// FrameDecoder decodes compressed packets into frames.
//
// The contract is strictly sequential: after Send, the caller must call
// Receive until it reports no frame available before sending the next
// packet. Decoders buffer frames across packets (B-frames), so skipping
// the drain step loses frames.
type FrameDecoder interface {
	// Send submits one compressed packet to the decoder.
	Send(pkt Packet) error

	// Receive returns the next decoded frame buffered in the
	// decoder. ok is false when no frame is immediately available.
	Receive() (frame Frame, ok bool, err error)

	// Flush signals end of stream so remaining buffered frames can
	// be drained with Receive. No packet may be sent afterwards.
	Flush() error

	// Close releases decoder resources.
	Close() error
}

// Demuxer is an opened media container.
type Demuxer interface {
	PacketSource

	// VideoStream returns information about the best video stream.
	VideoStream() VideoStreamInfo

	// DeclaredDuration returns the container-declared duration in
	// ticks, exactly as reported by the demuxing library.
	DeclaredDuration() int64

	// Close releases container resources.
	Close() error
}
