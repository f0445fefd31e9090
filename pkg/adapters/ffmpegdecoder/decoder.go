package ffmpegdecoder

import (
	"fmt"

	"github.com/obinnaokechukwu/ffgo/avcodec"
	"github.com/obinnaokechukwu/ffgo/avutil"
	"github.com/user/framecount/pkg/ports"
)

var _ ports.FrameDecoder = (*Decoder)(nil)

// Decoder decodes the video stream of an Input. It implements
// ports.FrameDecoder.
type Decoder struct {
	ctx   avcodec.Context
	frame avutil.Frame

	closed bool
}

// NewDecoder constructs a decoding context from the input's video
// stream codec parameters. threads configures frame-level parallel
// decoding; values below 1 are raised to 1.
func NewDecoder(in *Input, threads int) (*Decoder, error) {
	codec := avcodec.FindDecoder(in.codecID)
	if codec == nil {
		return nil, fmt.Errorf("%w: no decoder for codec id %d", ErrDecoderConstruction, in.codecID)
	}

	ctx := avcodec.AllocContext3(codec)
	if ctx == nil {
		return nil, fmt.Errorf("%w: context allocation failed", ErrDecoderConstruction)
	}

	if err := avcodec.ParametersToContext(ctx, in.codecPar); err != nil {
		avcodec.FreeContext(&ctx)
		return nil, fmt.Errorf("%w: %v", ErrDecoderConstruction, err)
	}

	if threads < 1 {
		threads = 1
	}
	// Frame-level threading: workers reconstruct whole frames in
	// parallel behind the synchronous send/receive interface.
	if err := avutil.OptSetInt(ctx, "threads", int64(threads), avutil.AV_OPT_SEARCH_CHILDREN); err != nil {
		avcodec.FreeContext(&ctx)
		return nil, fmt.Errorf("%w: %v", ErrDecoderConstruction, err)
	}
	if err := avutil.OptSet(ctx, "thread_type", "frame", avutil.AV_OPT_SEARCH_CHILDREN); err != nil {
		avcodec.FreeContext(&ctx)
		return nil, fmt.Errorf("%w: %v", ErrDecoderConstruction, err)
	}

	if err := avcodec.Open2(ctx, codec, nil); err != nil {
		avcodec.FreeContext(&ctx)
		return nil, fmt.Errorf("%w: %v", ErrDecoderConstruction, err)
	}

	frame := avutil.FrameAlloc()
	if frame == nil {
		avcodec.FreeContext(&ctx)
		return nil, fmt.Errorf("%w: frame allocation failed", ErrDecoderConstruction)
	}

	return &Decoder{ctx: ctx, frame: frame}, nil
}

// Send submits one compressed packet to the decoder. The packet must
// carry the native handle produced by Input.ReadPacket.
func (d *Decoder) Send(pkt ports.Packet) error {
	native, ok := pkt.Handle.(avcodec.Packet)
	if !ok {
		return fmt.Errorf("%w: packet carries no native handle", ErrDecode)
	}
	if err := avcodec.SendPacket(d.ctx, native); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

// Receive returns the next decoded frame buffered in the decoder, or
// ok == false when no frame is immediately available.
func (d *Decoder) Receive() (ports.Frame, bool, error) {
	avutil.FrameUnref(d.frame)

	if err := avcodec.ReceiveFrame(d.ctx, d.frame); err != nil {
		if avutil.IsAgain(err) || avutil.IsEOF(err) {
			return ports.Frame{}, false, nil
		}
		return ports.Frame{}, false, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return ports.Frame{Key: avutil.GetFrameKeyFrame(d.frame) != 0}, true, nil
}

// Flush puts the decoder into drain mode so Receive can return frames
// still buffered after the final packet.
func (d *Decoder) Flush() error {
	if err := avcodec.SendPacket(d.ctx, nil); err != nil && !avutil.IsEOF(err) {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

// Close releases the decoding context and scratch frame. Safe to call
// multiple times.
func (d *Decoder) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true

	if d.frame != nil {
		avutil.FrameFree(&d.frame)
	}
	if d.ctx != nil {
		avcodec.FreeContext(&d.ctx)
	}
	return nil
}
