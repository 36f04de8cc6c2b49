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

// Three OpenFlow fields changed their wire width across versions. The
// accessors below take the message's version, read or write the width that
// version uses, and widen or narrow to a canonical in-memory type: the
// widest representation any version needs. An unsupported version is a
// caller bug (the version is fixed before field access) and yields an error
// wrapping ofver.ErrUnsupported.

// PortNo reads a port identifier: 16 bits in 1.0, 32 bits from 1.1 on.
func (b *Buffer) PortNo(v ofver.Version, offset int) (uint32, error) {
	switch v {
	case ofver.OF10:
		p, err := b.Uint16(offset)
		return uint32(p), err
	case ofver.OF11, ofver.OF12, ofver.OF13:
		return b.Uint32(offset)
	default:
		return 0, serrors.JoinNoStack(ofver.ErrUnsupported, nil,
			"field", "port_no", "version", uint8(v))
	}
}

// PutPortNo writes a port identifier, narrowing to 16 bits for version 1.0.
func (b *Buffer) PutPortNo(v ofver.Version, offset int, port uint32) error {
	switch v {
	case ofver.OF10:
		return b.PutUint16(offset, uint16(port))
	case ofver.OF11, ofver.OF12, ofver.OF13:
		return b.PutUint32(offset, port)
	default:
		return serrors.JoinNoStack(ofver.ErrUnsupported, nil,
			"field", "port_no", "version", uint8(v))
	}
}

// FlowModCommand reads a flow-modification command code: 16 bits in 1.0,
// 8 bits from 1.1 on.
func (b *Buffer) FlowModCommand(v ofver.Version, offset int) (uint16, error) {
	switch v {
	case ofver.OF10:
		return b.Uint16(offset)
	case ofver.OF11, ofver.OF12, ofver.OF13:
		c, err := b.Uint8(offset)
		return uint16(c), err
	default:
		return 0, serrors.JoinNoStack(ofver.ErrUnsupported, nil,
			"field", "fm_cmd", "version", uint8(v))
	}
}

// PutFlowModCommand writes a flow-modification command code, narrowing to
// 8 bits from version 1.1 on.
func (b *Buffer) PutFlowModCommand(v ofver.Version, offset int, cmd uint16) error {
	switch v {
	case ofver.OF10:
		return b.PutUint16(offset, cmd)
	case ofver.OF11, ofver.OF12, ofver.OF13:
		return b.PutUint8(offset, uint8(cmd))
	default:
		return serrors.JoinNoStack(ofver.ErrUnsupported, nil,
			"field", "fm_cmd", "version", uint8(v))
	}
}

// WildcardBitmap reads a wildcard bitmap: 32 bits up to 1.1, 64 bits from
// 1.2 on.
func (b *Buffer) WildcardBitmap(v ofver.Version, offset int) (uint64, error) {
	switch v {
	case ofver.OF10, ofver.OF11:
		w, err := b.Uint32(offset)
		return uint64(w), err
	case ofver.OF12, ofver.OF13:
		return b.Uint64(offset)
	default:
		return 0, serrors.JoinNoStack(ofver.ErrUnsupported, nil,
			"field", "wc_bmap", "version", uint8(v))
	}
}

// PutWildcardBitmap writes a wildcard bitmap, narrowing to 32 bits for
// versions up to 1.1.
func (b *Buffer) PutWildcardBitmap(v ofver.Version, offset int, bmap uint64) error {
	switch v {
	case ofver.OF10, ofver.OF11:
		return b.PutUint32(offset, uint32(bmap))
	case ofver.OF12, ofver.OF13:
		return b.PutUint64(offset, bmap)
	default:
		return serrors.JoinNoStack(ofver.ErrUnsupported, nil,
			"field", "wc_bmap", "version", uint8(v))
	}
}

// MatchBitmap reads a match bitmap. Match bitmaps follow the wildcard
// bitmap widths in every version.
func (b *Buffer) MatchBitmap(v ofver.Version, offset int) (uint64, error) {
	return b.WildcardBitmap(v, offset)
}

// PutMatchBitmap writes a match bitmap.
func (b *Buffer) PutMatchBitmap(v ofver.Version, offset int, bmap uint64) error {
	return b.PutWildcardBitmap(v, offset, bmap)
}
