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
	"encoding/binary"
)

// All multi-byte scalars are big-endian on the wire, independent of the
// host. Every accessor checks bounds against the used extent before touching
// the storage and returns ErrBounds on violation.

// Uint8 reads the byte at offset.
func (b *Buffer) Uint8(offset int) (uint8, error) {
	if err := b.access(offset, 1); err != nil {
		return 0, err
	}
	return b.store.buf[offset], nil
}

// PutUint8 writes v at offset.
func (b *Buffer) PutUint8(offset int, v uint8) error {
	if err := b.access(offset, 1); err != nil {
		return err
	}
	b.store.buf[offset] = v
	return nil
}

// Uint16 reads the big-endian 16-bit scalar at offset.
func (b *Buffer) Uint16(offset int) (uint16, error) {
	if err := b.access(offset, 2); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b.store.buf[offset:]), nil
}

// PutUint16 writes v big-endian at offset.
func (b *Buffer) PutUint16(offset int, v uint16) error {
	if err := b.access(offset, 2); err != nil {
		return err
	}
	binary.BigEndian.PutUint16(b.store.buf[offset:], v)
	return nil
}

// Uint32 reads the big-endian 32-bit scalar at offset.
func (b *Buffer) Uint32(offset int) (uint32, error) {
	if err := b.access(offset, 4); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b.store.buf[offset:]), nil
}

// PutUint32 writes v big-endian at offset.
func (b *Buffer) PutUint32(offset int, v uint32) error {
	if err := b.access(offset, 4); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(b.store.buf[offset:], v)
	return nil
}

// Uint64 reads the big-endian 64-bit scalar at offset.
func (b *Buffer) Uint64(offset int) (uint64, error) {
	if err := b.access(offset, 8); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b.store.buf[offset:]), nil
}

// PutUint64 writes v big-endian at offset.
func (b *Buffer) PutUint64(offset int, v uint64) error {
	if err := b.access(offset, 8); err != nil {
		return err
	}
	binary.BigEndian.PutUint64(b.store.buf[offset:], v)
	return nil
}

// ReadBytes copies exactly len(dst) bytes starting at offset into dst. No
// truncation or padding ever happens; the caller states the length by sizing
// dst.
func (b *Buffer) ReadBytes(offset int, dst []byte) error {
	if err := b.access(offset, len(dst)); err != nil {
		return err
	}
	copy(dst, b.store.buf[offset:offset+len(dst)])
	return nil
}

// PutBytes copies exactly len(src) bytes from src into the buffer starting
// at offset.
func (b *Buffer) PutBytes(offset int, src []byte) error {
	if err := b.access(offset, len(src)); err != nil {
		return err
	}
	copy(b.store.buf[offset:], src)
	return nil
}
