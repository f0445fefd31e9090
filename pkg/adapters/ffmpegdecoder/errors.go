package ffmpegdecoder

import "errors"

var (
	// ErrNoVideoStream is returned when the container has no
	// decodable video stream.
	ErrNoVideoStream = errors.New("ffmpegdecoder: no video stream found")

	// ErrOpenContainer is returned when the container cannot be
	// opened or parsed.
	ErrOpenContainer = errors.New("ffmpegdecoder: cannot open container")

	// ErrDecoderConstruction is returned when the stream's codec
	// parameters cannot produce a decoder.
	ErrDecoderConstruction = errors.New("ffmpegdecoder: cannot construct decoder")

	// ErrDecode is returned on any mid-stream demux or decode
	// failure. The underlying library error is wrapped.
	ErrDecode = errors.New("ffmpegdecoder: decode failed")
)
