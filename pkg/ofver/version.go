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

// Package ofver defines the OpenFlow wire protocol versions understood by
// this library. The version set is closed: every switch over a Version must
// handle all four members and treat anything else as an error, never as a
// silent fallthrough.
package ofver

import (
	"errors"
	"strconv"

	"github.com/ofcodec/ofwire/pkg/private/serrors"
)

// Version is an OpenFlow wire protocol version. The numeric values are the
// on-the-wire version octets of the message header.
type Version uint8

// The supported wire versions.
const (
	OF10 Version = 1 // OpenFlow 1.0
	OF11 Version = 2 // OpenFlow 1.1
	OF12 Version = 3 // OpenFlow 1.2
	OF13 Version = 4 // OpenFlow 1.3
)

// ErrUnsupported indicates a version outside the supported set. Hitting it
// is a caller bug: the version of a message is established when the message
// is parsed, before any field access.
var ErrUnsupported = errors.New("unsupported OpenFlow version")

// All lists the supported versions in wire order.
var All = []Version{OF10, OF11, OF12, OF13}

// FromWire converts a version octet from a message header into a Version.
func FromWire(b byte) (Version, error) {
	v := Version(b)
	if !v.Supported() {
		return 0, serrors.JoinNoStack(ErrUnsupported, nil, "wire", b)
	}
	return v, nil
}

// Supported indicates whether the version is in the supported set.
func (v Version) Supported() bool {
	return v >= OF10 && v <= OF13
}

// Check returns an error unless the version is in the supported set.
func (v Version) Check() error {
	if !v.Supported() {
		return serrors.JoinNoStack(ErrUnsupported, nil, "version", uint8(v))
	}
	return nil
}

func (v Version) String() string {
	switch v {
	case OF10:
		return "1.0"
	case OF11:
		return "1.1"
	case OF12:
		return "1.2"
	case OF13:
		return "1.3"
	default:
		return "unknown(" + strconv.Itoa(int(v)) + ")"
	}
}
