// Package mocks provides fake port implementations for testing.
package mocks

import (
	"io"

	"github.com/user/framecount/pkg/ports"
)

// PacketSource replays a fixed packet sequence, then reports EOF.
type PacketSource struct {
	Packets []ports.Packet

	// FailAt makes ReadPacket return Err instead of the packet at
	// this zero-based position. Negative means never.
	FailAt int
	Err    error

	pos int
}

// NewPacketSource creates a source over the given packets.
func NewPacketSource(packets ...ports.Packet) *PacketSource {
	return &PacketSource{Packets: packets, FailAt: -1}
}

// ReadPacket returns the next scripted packet or io.EOF.
func (s *PacketSource) ReadPacket() (ports.Packet, error) {
	if s.pos == s.FailAt && s.Err != nil {
		return ports.Packet{}, s.Err
	}
	if s.pos >= len(s.Packets) {
		return ports.Packet{}, io.EOF
	}
	pkt := s.Packets[s.pos]
	s.pos++
	return pkt, nil
}
