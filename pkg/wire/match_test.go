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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ofcodec/ofwire/pkg/ofver"
	"github.com/ofcodec/ofwire/pkg/wire"
)

func TestMatchBytes(t *testing.T) {
	testCases := map[string]struct {
		length uint16
		want   int
	}{
		"length on a boundary": {length: 16, want: 16},
		"length pads up":       {length: 10, want: 16},
		"one over boundary":    {length: 17, want: 24},
		"empty match":          {length: 0, want: 0},
		"header only":          {length: 4, want: 8},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			buf := emptyBuffer(t, 64)
			// The match structure starts at 8; its length field sits two
			// bytes in.
			require.NoError(t, buf.PutUint16(10, tc.length))

			got, err := buf.MatchBytes(8)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMatchBytesBounds(t *testing.T) {
	buf := emptyBuffer(t, 8)
	_, err := buf.MatchBytes(6)
	assert.ErrorIs(t, err, wire.ErrBounds)
}

func TestStructuredHooksUnimplemented(t *testing.T) {
	buf := emptyBuffer(t, 64)

	_, err := buf.Match(ofver.OF13, 0)
	assert.ErrorIs(t, err, wire.ErrUnimplemented)
	assert.ErrorIs(t, buf.PutMatch(ofver.OF13, 0, nil), wire.ErrUnimplemented)

	_, err = buf.PortDesc(ofver.OF13, 0)
	assert.ErrorIs(t, err, wire.ErrUnimplemented)
	assert.ErrorIs(t, buf.PutPortDesc(ofver.OF13, 0, nil), wire.ErrUnimplemented)
}
