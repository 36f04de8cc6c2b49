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
)

// Slice is a lightweight view into a Buffer at a byte offset, decoupling a
// nested protocol object from the message buffer it lives in. Many slices
// may reference one buffer; exactly one of them is the owning slice, which
// destroys the buffer on release. Slices never copy data: every field access
// goes through AbsOffset into the shared buffer.
//
// Releasing the owning slice while non-owning slices are still in use is a
// use-after-release hazard this package does not police; the object layer
// keeps nested objects scoped strictly within their parent's lifetime.
type Slice struct {
	buf  *Buffer
	base int
	owns bool
}

// NewSlice returns a slice over buf starting at base. If owns is true the
// slice is responsible for destroying the buffer when released.
func NewSlice(buf *Buffer, base int, owns bool) *Slice {
	return &Slice{buf: buf, base: base, owns: owns}
}

// AbsOffset translates a slice-relative offset into a buffer offset.
func (s *Slice) AbsOffset(rel int) int {
	return s.base + rel
}

// Buffer returns the underlying buffer.
func (s *Slice) Buffer() *Buffer {
	return s.buf
}

// Base returns the slice's start offset in the buffer.
func (s *Slice) Base() int {
	return s.base
}

// Owns indicates whether this is the buffer's owning slice.
func (s *Slice) Owns() bool {
	return s.owns
}

// Release drops this slice's hold on the buffer. The owning slice destroys
// the buffer; a non-owning slice never touches it. Release is idempotent.
func (s *Slice) Release() {
	if s == nil || s.buf == nil {
		return
	}
	if s.owns {
		s.buf.Destroy()
	}
	s.buf = nil
}

// The scalar and versioned accessors of the buffer, addressed relative to
// the slice. This is how the object layer reads and writes the fields of a
// nested object.

// Uint8 reads the byte at the slice-relative offset.
func (s *Slice) Uint8(rel int) (uint8, error) {
	return s.buf.Uint8(s.AbsOffset(rel))
}

// PutUint8 writes v at the slice-relative offset.
func (s *Slice) PutUint8(rel int, v uint8) error {
	return s.buf.PutUint8(s.AbsOffset(rel), v)
}

// Uint16 reads the 16-bit scalar at the slice-relative offset.
func (s *Slice) Uint16(rel int) (uint16, error) {
	return s.buf.Uint16(s.AbsOffset(rel))
}

// PutUint16 writes v at the slice-relative offset.
func (s *Slice) PutUint16(rel int, v uint16) error {
	return s.buf.PutUint16(s.AbsOffset(rel), v)
}

// Uint32 reads the 32-bit scalar at the slice-relative offset.
func (s *Slice) Uint32(rel int) (uint32, error) {
	return s.buf.Uint32(s.AbsOffset(rel))
}

// PutUint32 writes v at the slice-relative offset.
func (s *Slice) PutUint32(rel int, v uint32) error {
	return s.buf.PutUint32(s.AbsOffset(rel), v)
}

// Uint64 reads the 64-bit scalar at the slice-relative offset.
func (s *Slice) Uint64(rel int) (uint64, error) {
	return s.buf.Uint64(s.AbsOffset(rel))
}

// PutUint64 writes v at the slice-relative offset.
func (s *Slice) PutUint64(rel int, v uint64) error {
	return s.buf.PutUint64(s.AbsOffset(rel), v)
}

// ReadBytes copies len(dst) bytes out from the slice-relative offset.
func (s *Slice) ReadBytes(rel int, dst []byte) error {
	return s.buf.ReadBytes(s.AbsOffset(rel), dst)
}

// PutBytes copies src in at the slice-relative offset.
func (s *Slice) PutBytes(rel int, src []byte) error {
	return s.buf.PutBytes(s.AbsOffset(rel), src)
}

// PortNo reads the version-dependent port identifier at the slice-relative
// offset.
func (s *Slice) PortNo(v ofver.Version, rel int) (uint32, error) {
	return s.buf.PortNo(v, s.AbsOffset(rel))
}

// PutPortNo writes the version-dependent port identifier at the
// slice-relative offset.
func (s *Slice) PutPortNo(v ofver.Version, rel int, port uint32) error {
	return s.buf.PutPortNo(v, s.AbsOffset(rel), port)
}

// FlowModCommand reads the version-dependent command code at the
// slice-relative offset.
func (s *Slice) FlowModCommand(v ofver.Version, rel int) (uint16, error) {
	return s.buf.FlowModCommand(v, s.AbsOffset(rel))
}

// PutFlowModCommand writes the version-dependent command code at the
// slice-relative offset.
func (s *Slice) PutFlowModCommand(v ofver.Version, rel int, cmd uint16) error {
	return s.buf.PutFlowModCommand(v, s.AbsOffset(rel), cmd)
}

// WildcardBitmap reads the version-dependent wildcard bitmap at the
// slice-relative offset.
func (s *Slice) WildcardBitmap(v ofver.Version, rel int) (uint64, error) {
	return s.buf.WildcardBitmap(v, s.AbsOffset(rel))
}

// PutWildcardBitmap writes the version-dependent wildcard bitmap at the
// slice-relative offset.
func (s *Slice) PutWildcardBitmap(v ofver.Version, rel int, bmap uint64) error {
	return s.buf.PutWildcardBitmap(v, s.AbsOffset(rel), bmap)
}
