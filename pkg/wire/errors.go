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

import "errors"

// The sentinel errors of the package. Errors returned by this package can be
// matched against them with errors.Is.
var (
	// ErrBounds indicates an access beyond the used extent of a buffer, a
	// grow target beyond its capacity, or a splice that would exceed its
	// capacity. It always signals a caller bug: offsets into wire data are
	// known from the layout tables before any access. No partial write is
	// ever performed; the check precedes every mutation.
	ErrBounds = errors.New("wire buffer access out of bounds")
	// ErrAllocation indicates that buffer storage could not be obtained.
	// Unlike ErrBounds it is a resource exhaustion condition and
	// recoverable; retrying is caller policy.
	ErrAllocation = errors.New("wire buffer allocation failed")
	// ErrReleased indicates an operation on a buffer or store whose storage
	// has been destroyed or stolen.
	ErrReleased = errors.New("wire buffer storage released")
	// ErrUnimplemented is returned by the structured-field codec hooks
	// (generic match, port description) that have no implementation.
	ErrUnimplemented = errors.New("structured field codec not implemented")
)
