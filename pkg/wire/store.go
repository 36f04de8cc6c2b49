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
	"github.com/ofcodec/ofwire/pkg/private/serrors"
)

const (
	// MinAlloc is the floor for fresh allocations. Requests below it are
	// rounded up so that small objects can grow a few fields without a new
	// store.
	MinAlloc = 128

	// maxAlloc caps a single allocation. A request above it does not come
	// from any valid message layout; typically it means a corrupted length
	// field was fed into a size computation.
	maxAlloc = 1 << 24
)

// ReleaseFunc releases externally bound storage when its Store is destroyed.
type ReleaseFunc func([]byte)

// Store is the raw storage behind a Buffer. It either owns its bytes
// (created by Allocate) or wraps caller memory (created by Bind). A Store is
// destroyed exactly once by the Buffer owning it; all operations after
// Destroy or Steal return ErrReleased.
type Store struct {
	buf     []byte
	release ReleaseFunc
}

// Allocate returns a new Store with zero-initialized storage of capacity
// max(bytes, MinAlloc). It returns ErrAllocation if the request is negative
// or exceeds the allocation cap.
func Allocate(bytes int) (*Store, error) {
	if bytes < 0 || bytes > maxAlloc {
		return nil, serrors.JoinNoStack(ErrAllocation, nil, "bytes", bytes)
	}
	if bytes < MinAlloc {
		bytes = MinAlloc
	}
	return &Store{buf: make([]byte, bytes)}, nil
}

// Bind returns a Store wrapping caller memory. If release is non-nil it is
// invoked exactly once when the Store is destroyed. A nil release means the
// caller retains ownership and Destroy leaves the bytes untouched.
func Bind(buf []byte, release ReleaseFunc) *Store {
	return &Store{buf: buf, release: release}
}

// Capacity returns the allocated storage size. Capacity is always exactly
// the length of the underlying byte slice.
func (s *Store) Capacity() int {
	if s == nil {
		return 0
	}
	return len(s.buf)
}

// Destroy releases the storage, invoking the release function for bound
// stores that have one. It is idempotent.
func (s *Store) Destroy() {
	if s == nil || s.buf == nil {
		return
	}
	if s.release != nil {
		s.release(s.buf)
	}
	s.buf = nil
	s.release = nil
}

// Steal moves the raw bytes out of the store without releasing them,
// transferring ownership to the caller. The store is invalidated: any later
// operation on it, including Steal, returns ErrReleased.
func (s *Store) Steal() ([]byte, error) {
	if s == nil || s.buf == nil {
		return nil, serrors.JoinNoStack(ErrReleased, nil, "op", "steal")
	}
	buf := s.buf
	s.buf = nil
	s.release = nil
	return buf, nil
}

func (s *Store) valid() bool {
	return s != nil && s.buf != nil
}
