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
	"fmt"

	"github.com/ofcodec/ofwire/pkg/private/serrors"
)

// MaxMessageBytes is the maximum length of an OpenFlow message. Buffers for
// fresh outbound objects are allocated at this size so that building a
// maximum-size message never needs a reallocation.
const MaxMessageBytes = 65535

// Buffer is a wire buffer: one exclusively owned Store plus the extent of it
// that currently holds meaningful message bytes. Bytes between the used
// extent and the capacity are allocated but carry no meaning. The used
// extent only moves through Grow and Splice and never exceeds the capacity.
type Buffer struct {
	store *Store
	used  int
}

// New returns an empty Buffer with capacity at least bytes.
func New(bytes int) (*Buffer, error) {
	store, err := Allocate(bytes)
	if err != nil {
		return nil, err
	}
	return &Buffer{store: store}, nil
}

// NewMessage returns an empty Buffer sized for a maximum-length message.
func NewMessage() (*Buffer, error) {
	return New(MaxMessageBytes)
}

// NewBind returns a Buffer over caller memory, e.g. bytes received from the
// transport. The whole region counts as used. Release semantics are those of
// Bind: nil means the caller keeps ownership.
func NewBind(raw []byte, release ReleaseFunc) *Buffer {
	return &Buffer{store: Bind(raw, release), used: len(raw)}
}

// Used returns the used extent.
func (b *Buffer) Used() int {
	if b == nil {
		return 0
	}
	return b.used
}

// Capacity returns the allocated storage size.
func (b *Buffer) Capacity() int {
	if b == nil {
		return 0
	}
	return b.store.Capacity()
}

// Destroy releases the underlying store. It is idempotent; any later
// operation on the buffer returns ErrReleased.
func (b *Buffer) Destroy() {
	if b == nil {
		return
	}
	b.store.Destroy()
	b.used = 0
}

// Steal moves the raw storage out of the buffer, e.g. to hand a serialized
// message to the transport without copying. The stolen bytes retain their
// content, including the region beyond the used extent. The buffer is
// invalidated for all further use.
func (b *Buffer) Steal() ([]byte, error) {
	if b == nil {
		return nil, serrors.JoinNoStack(ErrReleased, nil, "op", "steal")
	}
	raw, err := b.store.Steal()
	if err != nil {
		return nil, err
	}
	b.used = 0
	return raw, nil
}

// Grow extends the used extent to target. Grow is monotonic: a target below
// the current extent leaves the buffer unchanged. A target beyond the
// allocated capacity returns ErrBounds; this package never reallocates
// storage behind a caller's back, since outstanding Slices hold offsets into
// it.
func (b *Buffer) Grow(target int) error {
	if !b.valid() {
		return serrors.JoinNoStack(ErrReleased, nil, "op", "grow")
	}
	if target < 0 || target > b.store.Capacity() {
		return serrors.JoinNoStack(ErrBounds, nil,
			"op", "grow", "target", target, "capacity", b.store.Capacity())
	}
	if target > b.used {
		b.used = target
	}
	return nil
}

// Splice replaces the region [start, start+oldLen) with data, relocating
// everything after the region by len(data)-oldLen bytes and adjusting the
// used extent accordingly. Content before start, the inserted data, and the
// relocated suffix are preserved byte-exactly. The relocation is a single
// overlap-safe block move; source and destination routinely overlap when the
// length changes.
//
// A splice that would push the used extent beyond the capacity returns
// ErrBounds, same policy as Grow. All checks run before any byte moves, so a
// failed splice leaves the buffer untouched.
func (b *Buffer) Splice(start, oldLen int, data []byte) error {
	if !b.valid() {
		return serrors.JoinNoStack(ErrReleased, nil, "op", "splice")
	}
	// No start+oldLen: the sum can wrap on huge inputs.
	if start < 0 || oldLen < 0 || start > b.used || oldLen > b.used-start {
		return serrors.JoinNoStack(ErrBounds, nil,
			"op", "splice", "start", start, "oldLen", oldLen, "used", b.used)
	}
	newLen := len(data)
	newUsed := b.used - oldLen + newLen
	if newUsed > b.store.Capacity() {
		return serrors.JoinNoStack(ErrBounds, nil,
			"op", "splice", "newUsed", newUsed, "capacity", b.store.Capacity())
	}
	buf := b.store.buf
	copy(buf[start+newLen:newUsed], buf[start+oldLen:b.used])
	copy(buf[start:start+newLen], data)
	b.used = newUsed
	return nil
}

func (b *Buffer) String() string {
	if !b.valid() {
		return "Buffer{released}"
	}
	return fmt.Sprintf("Buffer{used: %d, capacity: %d}", b.used, b.store.Capacity())
}

// access is the check in front of every read and write: the storage must be
// live and [offset, offset+bytes) must lie inside the used extent. The check
// is written without computing offset+bytes, which can wrap.
func (b *Buffer) access(offset, bytes int) error {
	if !b.valid() {
		return serrors.JoinNoStack(ErrReleased, nil)
	}
	if offset < 0 || bytes < 0 || offset > b.used || bytes > b.used-offset {
		return serrors.JoinNoStack(ErrBounds, nil,
			"offset", offset, "bytes", bytes, "used", b.used)
	}
	return nil
}

func (b *Buffer) valid() bool {
	return b != nil && b.store.valid()
}
