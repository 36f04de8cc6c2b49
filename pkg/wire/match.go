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

package wire

import (
	"github.com/ofcodec/ofwire/pkg/ofver"
	"github.com/ofcodec/ofwire/pkg/private/serrors"
)

// A TLV match structure carries its payload length in a 16-bit field two
// bytes into the structure. Its total encoded length pads that up to a
// multiple of 8.
const matchLengthOffset = 2

// MatchBytes returns the total encoded length of the match structure
// starting at offset, by probing its length field. It lets callers skip or
// splice the structure without decoding it.
func (b *Buffer) MatchBytes(offset int) (int, error) {
	length, err := b.Uint16(offset + matchLengthOffset)
	if err != nil {
		return 0, err
	}
	return (int(length) + 7) / 8 * 8, nil
}

// The generic structured-field codecs below are hooks for a codec that does
// not exist yet; they consistently return ErrUnimplemented. Callers that
// need the raw bytes of a match structure combine MatchBytes with ReadBytes.

// Match decodes the generic match structure at offset.
func (b *Buffer) Match(v ofver.Version, offset int) ([]byte, error) {
	return nil, serrors.JoinNoStack(ErrUnimplemented, nil,
		"field", "match", "version", v)
}

// PutMatch encodes a generic match structure at offset.
func (b *Buffer) PutMatch(v ofver.Version, offset int, raw []byte) error {
	return serrors.JoinNoStack(ErrUnimplemented, nil,
		"field", "match", "version", v)
}

// PortDesc decodes the port description structure at offset.
func (b *Buffer) PortDesc(v ofver.Version, offset int) ([]byte, error) {
	return nil, serrors.JoinNoStack(ErrUnimplemented, nil,
		"field", "port_desc", "version", v)
}

// PutPortDesc encodes a port description structure at offset.
func (b *Buffer) PutPortDesc(v ofver.Version, offset int, raw []byte) error {
	return serrors.JoinNoStack(ErrUnimplemented, nil,
		"field", "port_desc", "version", v)
}
