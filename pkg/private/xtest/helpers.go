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

// Package xtest contains helpers for tests.
package xtest

import (
	"encoding/hex"
	"regexp"
)

var whitespace = regexp.MustCompile(`\s+`)

// MustParseHexString parses s, ignoring any whitespace, and returns the
// corresponding byte slice. It panics if the decoding fails.
func MustParseHexString(s string) []byte {
	decoded, err := hex.DecodeString(whitespace.ReplaceAllString(s, ""))
	if err != nil {
		panic(err)
	}
	return decoded
}
