// Copyright 2026 The ofwire Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package oflayers implements the OpenFlow message framing on top of
// gopacket. Every OpenFlow message, in every protocol version, starts with
// the same 8-byte header; the length field frames the message on the byte
// stream. The header layer is the entry point from transport bytes into the
// wire buffer core: decode the header, then bind the framed bytes to a
// wire.Buffer for field access.
package oflayers

import (
	"encoding/binary"
	"fmt"

	"github.com/gopacket/gopacket"

	"github.com/ofcodec/ofwire/pkg/ofver"
	"github.com/ofcodec/ofwire/pkg/private/serrors"
)

// HeaderLen is the length of the version-independent message header.
const HeaderLen = 8

// Header is the OpenFlow message header.
//
// Header has the following format:
//
//	 0                   1                   2                   3
//	 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|    Version    |     Type      |            Length             |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
//	|                              Xid                              |
//	+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
type Header struct {
	BaseLayer
	// Version is the wire protocol version of the message.
	Version ofver.Version
	// Type is the message type code. Type codes are version specific and
	// not interpreted here.
	Type uint8
	// Length is the total message length including the header.
	Length uint16
	// Xid is the transaction identifier echoed in replies.
	Xid uint32
}

func (h *Header) LayerType() gopacket.LayerType {
	return LayerTypeOpenFlow
}

func (h *Header) CanDecode() gopacket.LayerClass {
	return LayerClassOpenFlow
}

func (h *Header) NextLayerType() gopacket.LayerType {
	return gopacket.LayerTypePayload
}

// DecodeFromBytes implements the gopacket.DecodingLayer.DecodeFromBytes
// method. The data must start at the first byte of a message and contain the
// complete message; the length field must cover at least the header.
func (h *Header) DecodeFromBytes(data []byte, df gopacket.DecodeFeedback) error {
	if len(data) < HeaderLen {
		df.SetTruncated()
		return serrors.New("message too short for header",
			"expected", HeaderLen, "actual", len(data))
	}
	version, err := ofver.FromWire(data[0])
	if err != nil {
		return err
	}
	h.Version = version
	h.Type = data[1]
	h.Length = binary.BigEndian.Uint16(data[2:4])
	h.Xid = binary.BigEndian.Uint32(data[4:8])
	if h.Length < HeaderLen {
		return serrors.New("message length below header length",
			"length", h.Length)
	}
	end := int(h.Length)
	if end > len(data) {
		df.SetTruncated()
		end = len(data)
	}
	h.BaseLayer = BaseLayer{Contents: data[:HeaderLen], Payload: data[HeaderLen:end]}
	return nil
}

// SerializeTo implements the gopacket.SerializableLayer.SerializeTo method.
// With opts.FixLengths the length field is computed from the serialized
// payload.
func (h *Header) SerializeTo(b gopacket.SerializeBuffer, opts gopacket.SerializeOptions) error {
	if err := h.Version.Check(); err != nil {
		return err
	}
	if opts.FixLengths {
		total := len(b.Bytes()) + HeaderLen
		if total > int(^uint16(0)) {
			return serrors.New("message too long for length field", "length", total)
		}
		h.Length = uint16(total)
	}
	bytes, err := b.PrependBytes(HeaderLen)
	if err != nil {
		return err
	}
	bytes[0] = byte(h.Version)
	bytes[1] = h.Type
	binary.BigEndian.PutUint16(bytes[2:4], h.Length)
	binary.BigEndian.PutUint32(bytes[4:8], h.Xid)
	return nil
}

func (h *Header) String() string {
	return fmt.Sprintf("OpenFlow{Version: %s, Type: %d, Length: %d, Xid: %#x}",
		h.Version, h.Type, h.Length, h.Xid)
}

func decodeOpenFlow(data []byte, pb gopacket.PacketBuilder) error {
	h := &Header{}
	if err := h.DecodeFromBytes(data, pb); err != nil {
		return err
	}
	pb.AddLayer(h)
	return pb.NextDecoder(gopacket.LayerTypePayload)
}
