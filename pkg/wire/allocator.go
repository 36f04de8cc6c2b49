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
	"github.com/ofcodec/ofwire/pkg/metrics"
)

// AllocatorMetrics contains the metrics an Allocator can report. Any field
// may be nil.
type AllocatorMetrics struct {
	// Allocations counts fresh buffer allocations.
	Allocations metrics.Counter
	// AllocatedBytes counts the capacity of fresh allocations.
	AllocatedBytes metrics.Counter
	// Binds counts buffers bound to external memory.
	Binds metrics.Counter
	// AllocationErrors counts failed allocations.
	AllocationErrors metrics.Counter
}

// Allocator creates wire buffers and records allocation metrics. The zero
// value is a valid allocator that reports nothing; the package-level
// constructors are shorthands for it.
type Allocator struct {
	Metrics AllocatorMetrics
}

// New returns an empty Buffer with capacity at least bytes.
func (a Allocator) New(bytes int) (*Buffer, error) {
	b, err := New(bytes)
	if err != nil {
		metrics.CounterInc(a.Metrics.AllocationErrors)
		return nil, err
	}
	metrics.CounterInc(a.Metrics.Allocations)
	metrics.CounterAdd(a.Metrics.AllocatedBytes, float64(b.Capacity()))
	return b, nil
}

// NewMessage returns an empty Buffer sized for a maximum-length message.
func (a Allocator) NewMessage() (*Buffer, error) {
	return a.New(MaxMessageBytes)
}

// NewBind returns a Buffer over caller memory.
func (a Allocator) NewBind(raw []byte, release ReleaseFunc) *Buffer {
	metrics.CounterInc(a.Metrics.Binds)
	return NewBind(raw, release)
}
