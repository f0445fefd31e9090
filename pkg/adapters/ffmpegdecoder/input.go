// Package ffmpegdecoder adapts the ffgo FFmpeg bindings to the demuxer
// and decoder ports.
package ffmpegdecoder

import (
	"fmt"
	"io"

	"github.com/obinnaokechukwu/ffgo"
	"github.com/obinnaokechukwu/ffgo/avcodec"
	"github.com/obinnaokechukwu/ffgo/avformat"
	"github.com/obinnaokechukwu/ffgo/avutil"
	"github.com/user/framecount/pkg/ports"
)

var _ ports.Demuxer = (*Input)(nil)

// Input is an opened media container with its best video stream
// selected. It implements ports.Demuxer.
type Input struct {
	ctx    avformat.FormatContext
	pkt    avcodec.Packet
	stream ports.VideoStreamInfo

	codecID  avcodec.CodecID
	codecPar avcodec.Parameters

	closed bool
}

// Open loads the FFmpeg libraries if needed, opens the container at
// path and selects the best video stream.
func Open(path string) (*Input, error) {
	// Library load is idempotent; ffgo caches the handles.
	if err := ffgo.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenContainer, err)
	}

	in := &Input{}
	if err := avformat.OpenInput(&in.ctx, path, nil, nil); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenContainer, path, err)
	}

	if err := avformat.FindStreamInfo(in.ctx, nil); err != nil {
		avformat.CloseInput(&in.ctx)
		return nil, fmt.Errorf("%w: %v", ErrOpenContainer, err)
	}

	idx := avformat.FindBestStream(in.ctx, avutil.MediaTypeVideo, -1, -1, nil, 0)
	if idx < 0 {
		avformat.CloseInput(&in.ctx)
		return nil, ErrNoVideoStream
	}

	stream := avformat.GetStream(in.ctx, int(idx))
	in.codecPar = avformat.GetStreamCodecPar(stream)
	in.codecID = avformat.GetCodecParCodecID(in.codecPar)

	num, den := avformat.GetStreamTimeBase(stream)

	var codecName string
	if codec := avcodec.FindDecoder(in.codecID); codec != nil {
		codecName = avcodec.GetCodecName(codec)
	}

	in.stream = ports.VideoStreamInfo{
		Index:     int(idx),
		TimeBase:  ports.Rational{Num: num, Den: den},
		CodecName: codecName,
		Width:     int(avformat.GetCodecParWidth(in.codecPar)),
		Height:    int(avformat.GetCodecParHeight(in.codecPar)),
	}

	in.pkt = avcodec.PacketAlloc()
	if in.pkt == nil {
		avformat.CloseInput(&in.ctx)
		return nil, fmt.Errorf("%w: packet allocation failed", ErrOpenContainer)
	}

	return in, nil
}

// VideoStream returns information about the selected video stream.
func (in *Input) VideoStream() ports.VideoStreamInfo {
	return in.stream
}

// DeclaredDuration returns the container-declared duration in ticks,
// exactly as reported by the library.
func (in *Input) DeclaredDuration() int64 {
	return avformat.GetDuration(in.ctx)
}

// ReadPacket reads the next packet from the container. The returned
// packet is only valid until the next call; the underlying native
// packet is reused.
func (in *Input) ReadPacket() (ports.Packet, error) {
	avcodec.PacketUnref(in.pkt)

	if err := avformat.ReadFrame(in.ctx, in.pkt); err != nil {
		if avutil.IsEOF(err) {
			return ports.Packet{}, io.EOF
		}
		return ports.Packet{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	dts := avcodec.GetPacketDTS(in.pkt)
	return ports.Packet{
		StreamIndex: int(avcodec.GetPacketStreamIndex(in.pkt)),
		DTS:         dts,
		HasDTS:      dts != avutil.NoPTSValue,
		Handle:      in.pkt,
	}, nil
}

// Close releases the container and packet resources. Safe to call
// multiple times.
func (in *Input) Close() error {
	if in.closed {
		return nil
	}
	in.closed = true

	if in.pkt != nil {
		avcodec.PacketFree(&in.pkt)
	}
	if in.ctx != nil {
		avformat.CloseInput(&in.ctx)
	}
	return nil
}
