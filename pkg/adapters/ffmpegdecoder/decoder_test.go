package ffmpegdecoder

import (
	"errors"
	"testing"

	"github.com/user/framecount/pkg/ports"
)

func TestDecoderSend_RequiresNativeHandle(t *testing.T) {
	d := &Decoder{}

	err := d.Send(ports.Packet{StreamIndex: 0, DTS: 42, HasDTS: true})
	if err == nil {
		t.Fatal("expected error for a packet without a native handle")
	}
	if !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode, got %v", err)
	}
}

func TestDecoderSend_RejectsForeignHandle(t *testing.T) {
	d := &Decoder{}

	err := d.Send(ports.Packet{Handle: "not a packet"})
	if !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode for a foreign handle, got %v", err)
	}
}
