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

package ofver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ofcodec/ofwire/pkg/ofver"
)

func TestFromWire(t *testing.T) {
	testCases := map[string]struct {
		wire      byte
		assertErr assert.ErrorAssertionFunc
		want      ofver.Version
	}{
		"1.0":           {wire: 1, assertErr: assert.NoError, want: ofver.OF10},
		"1.1":           {wire: 2, assertErr: assert.NoError, want: ofver.OF11},
		"1.2":           {wire: 3, assertErr: assert.NoError, want: ofver.OF12},
		"1.3":           {wire: 4, assertErr: assert.NoError, want: ofver.OF13},
		"zero":          {wire: 0, assertErr: assert.Error},
		"beyond newest": {wire: 5, assertErr: assert.Error},
		"garbage":       {wire: 0xff, assertErr: assert.Error},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			v, err := ofver.FromWire(tc.wire)
			tc.assertErr(t, err)
			if err != nil {
				assert.ErrorIs(t, err, ofver.ErrUnsupported)
				return
			}
			assert.Equal(t, tc.want, v)
			assert.True(t, v.Supported())
			require.NoError(t, v.Check())
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "1.0", ofver.OF10.String())
	assert.Equal(t, "1.3", ofver.OF13.String())
	assert.Equal(t, "unknown(9)", ofver.Version(9).String())
}

func TestAll(t *testing.T) {
	assert.Equal(t, []ofver.Version{ofver.OF10, ofver.OF11, ofver.OF12, ofver.OF13},
		ofver.All)
	for _, v := range ofver.All {
		assert.True(t, v.Supported())
	}
}
