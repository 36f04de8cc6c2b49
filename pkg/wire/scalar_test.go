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

package wire_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ofcodec/ofwire/pkg/private/xtest"
	"github.com/ofcodec/ofwire/pkg/wire"
)

func TestScalarRoundTrip(t *testing.T) {
	buf := mustBuffer(t, 32)

	require.NoError(t, buf.PutUint8(3, 0x7f))
	v8, err := buf.Uint8(3)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x7f), v8)

	require.NoError(t, buf.PutUint16(4, 0xcafe))
	v16, err := buf.Uint16(4)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xcafe), v16)

	require.NoError(t, buf.PutUint32(8, 0xdeadbeef))
	v32, err := buf.Uint32(8)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xdeadbeef), v32)

	require.NoError(t, buf.PutUint64(16, 0x0102030405060708))
	v64, err := buf.Uint64(16)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0102030405060708), v64)
}

func TestScalarWireFormat(t *testing.T) {
	// Multi-byte scalars are big-endian regardless of host byte order.
	buf := mustBuffer(t, 16)
	require.NoError(t, buf.PutUint16(0, 0x1234))
	require.NoError(t, buf.PutUint32(2, 0x56789abc))
	require.NoError(t, buf.PutUint64(6, 0xdef0123456789abc))

	want := xtest.MustParseHexString("1234 56789abc def0123456789abc 0e0f")
	assert.Equal(t, want, contents(t, buf))
}

func TestScalarBounds(t *testing.T) {
	widths := map[string]struct {
		width int
		get   func(b *wire.Buffer, offset int) error
		put   func(b *wire.Buffer, offset int) error
	}{
		"uint8": {
			width: 1,
			get:   func(b *wire.Buffer, o int) error { _, err := b.Uint8(o); return err },
			put:   func(b *wire.Buffer, o int) error { return b.PutUint8(o, 1) },
		},
		"uint16": {
			width: 2,
			get:   func(b *wire.Buffer, o int) error { _, err := b.Uint16(o); return err },
			put:   func(b *wire.Buffer, o int) error { return b.PutUint16(o, 1) },
		},
		"uint32": {
			width: 4,
			get:   func(b *wire.Buffer, o int) error { _, err := b.Uint32(o); return err },
			put:   func(b *wire.Buffer, o int) error { return b.PutUint32(o, 1) },
		},
		"uint64": {
			width: 8,
			get:   func(b *wire.Buffer, o int) error { _, err := b.Uint64(o); return err },
			put:   func(b *wire.Buffer, o int) error { return b.PutUint64(o, 1) },
		},
	}
	const used = 16
	for name, w := range widths {
		t.Run(name, func(t *testing.T) {
			buf := mustBuffer(t, used)

			// Last valid offset: offset+width == used.
			assert.NoError(t, w.get(buf, used-w.width))
			assert.NoError(t, w.put(buf, used-w.width))

			// One past: offset+width == used+1. The boundary case.
			assert.ErrorIs(t, w.get(buf, used-w.width+1), wire.ErrBounds)
			assert.ErrorIs(t, w.put(buf, used-w.width+1), wire.ErrBounds)

			assert.ErrorIs(t, w.get(buf, -1), wire.ErrBounds)
			assert.ErrorIs(t, w.put(buf, used), wire.ErrBounds)

			// An offset large enough to wrap offset+width around the
			// integer range fails the bounds check instead of panicking.
			assert.ErrorIs(t, w.get(buf, math.MaxInt-w.width+1), wire.ErrBounds)
			assert.ErrorIs(t, w.put(buf, math.MaxInt-w.width+1), wire.ErrBounds)
		})
	}
}

func TestScalarFailedWriteMutatesNothing(t *testing.T) {
	buf := mustBuffer(t, 10)
	original := contents(t, buf)

	assert.Error(t, buf.PutUint32(8, 0xffffffff))
	assert.Error(t, buf.PutBytes(5, make([]byte, 6)))
	assert.Equal(t, original, contents(t, buf))
}

func TestByteRun(t *testing.T) {
	buf := mustBuffer(t, 16)

	src := []byte{0x11, 0x22, 0x33}
	require.NoError(t, buf.PutBytes(5, src))

	dst := make([]byte, 3)
	require.NoError(t, buf.ReadBytes(5, dst))
	assert.Equal(t, src, dst)

	// The run length is exactly the caller-provided slice length; the
	// neighboring bytes stay untouched.
	got := contents(t, buf)
	assert.Equal(t, uint8(4), got[4])
	assert.Equal(t, uint8(8), got[8])

	assert.ErrorIs(t, buf.ReadBytes(14, dst), wire.ErrBounds)
	assert.ErrorIs(t, buf.PutBytes(14, src), wire.ErrBounds)
}
