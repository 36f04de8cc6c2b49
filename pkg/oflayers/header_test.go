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

package oflayers_test

import (
	"testing"

	"github.com/gopacket/gopacket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ofcodec/ofwire/pkg/oflayers"
	"github.com/ofcodec/ofwire/pkg/ofver"
	"github.com/ofcodec/ofwire/pkg/private/xtest"
)

func TestHeaderDecodeFromBytes(t *testing.T) {
	testCases := map[string]struct {
		raw       []byte
		assertErr assert.ErrorAssertionFunc
		want      oflayers.Header
		payload   []byte
	}{
		"hello 1.3": {
			// An OFPT_HELLO is a bare header.
			raw:       xtest.MustParseHexString("04 00 0008 00000001"),
			assertErr: assert.NoError,
			want: oflayers.Header{
				Version: ofver.OF13,
				Type:    0,
				Length:  8,
				Xid:     1,
			},
			payload: []byte{},
		},
		"message with body": {
			raw:       xtest.MustParseHexString("01 02 000c 0000002a deadbeef"),
			assertErr: assert.NoError,
			want: oflayers.Header{
				Version: ofver.OF10,
				Type:    2,
				Length:  12,
				Xid:     42,
			},
			payload: xtest.MustParseHexString("deadbeef"),
		},
		"unknown version": {
			raw:       xtest.MustParseHexString("09 00 0008 00000000"),
			assertErr: assert.Error,
		},
		"short header": {
			raw:       xtest.MustParseHexString("04 00 0008"),
			assertErr: assert.Error,
		},
		"length below header": {
			raw:       xtest.MustParseHexString("04 00 0004 00000000"),
			assertErr: assert.Error,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			var h oflayers.Header
			err := h.DecodeFromBytes(tc.raw, gopacket.NilDecodeFeedback)
			tc.assertErr(t, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want.Version, h.Version)
			assert.Equal(t, tc.want.Type, h.Type)
			assert.Equal(t, tc.want.Length, h.Length)
			assert.Equal(t, tc.want.Xid, h.Xid)
			assert.Equal(t, tc.payload, h.LayerPayload())
		})
	}
}

func TestHeaderSerializeTo(t *testing.T) {
	h := &oflayers.Header{
		Version: ofver.OF13,
		Type:    14, // flow mod
		Xid:     0x1234,
	}
	body := gopacket.Payload(xtest.MustParseHexString("0102030405060708"))

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true}
	require.NoError(t, gopacket.SerializeLayers(buf, opts, h, body))

	want := xtest.MustParseHexString("04 0e 0010 00001234 0102030405060708")
	assert.Equal(t, want, buf.Bytes())
	assert.Equal(t, uint16(16), h.Length)
}

func TestHeaderSerializeUnsupportedVersion(t *testing.T) {
	h := &oflayers.Header{Version: ofver.Version(7)}
	buf := gopacket.NewSerializeBuffer()
	err := h.SerializeTo(buf, gopacket.SerializeOptions{})
	assert.ErrorIs(t, err, ofver.ErrUnsupported)
}

func TestHeaderRoundTrip(t *testing.T) {
	h := &oflayers.Header{
		Version: ofver.OF12,
		Type:    19,
		Xid:     0xcafebabe,
	}
	body := gopacket.Payload(make([]byte, 56))

	buf := gopacket.NewSerializeBuffer()
	opts := gopacket.SerializeOptions{FixLengths: true}
	require.NoError(t, gopacket.SerializeLayers(buf, opts, h, body))

	var decoded oflayers.Header
	require.NoError(t, decoded.DecodeFromBytes(buf.Bytes(), gopacket.NilDecodeFeedback))
	assert.Equal(t, h.Version, decoded.Version)
	assert.Equal(t, h.Type, decoded.Type)
	assert.Equal(t, uint16(64), decoded.Length)
	assert.Equal(t, h.Xid, decoded.Xid)
	assert.Len(t, decoded.LayerPayload(), 56)
}
