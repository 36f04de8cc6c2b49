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

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ofcodec/ofwire/pkg/log/testlog"
	"github.com/ofcodec/ofwire/pkg/private/xtest"
)

func TestWalkFrames(t *testing.T) {
	data := xtest.MustParseHexString(`
		04 00 0008 00000001
		01 02 000c 0000002a deadbeef
		04 0e 0010 00001234 0102030405060708`)

	frames := walkFrames(testlog.NewLogger(t), data)
	require.Len(t, frames, 3)
	for _, f := range frames {
		require.NoError(t, f.Err)
	}
	assert.Equal(t, 0, frames[0].Offset)
	assert.Equal(t, "1.3", frames[0].Version)
	assert.Equal(t, uint32(1), frames[0].Xid)
	assert.Equal(t, 8, frames[1].Offset)
	assert.Equal(t, "1.0", frames[1].Version)
	assert.Equal(t, uint16(12), frames[1].Length)
	assert.Equal(t, 20, frames[2].Offset)
	assert.Equal(t, uint8(14), frames[2].Type)
}

func TestWalkFramesMalformed(t *testing.T) {
	t.Run("bad version stops the walk", func(t *testing.T) {
		data := xtest.MustParseHexString(`
			04 00 0008 00000001
			ff 00 0008 00000002
			04 00 0008 00000003`)
		frames := walkFrames(testlog.NewLogger(t), data)
		require.Len(t, frames, 2)
		assert.NoError(t, frames[0].Err)
		assert.Error(t, frames[1].Err)
		assert.Equal(t, 8, frames[1].Offset)
	})

	t.Run("frame overruns file", func(t *testing.T) {
		data := xtest.MustParseHexString("04 00 00ff 00000001 aabb")
		frames := walkFrames(testlog.NewLogger(t), data)
		require.Len(t, frames, 1)
		assert.Error(t, frames[0].Err)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, walkFrames(testlog.NewLogger(t), nil))
	})
}
