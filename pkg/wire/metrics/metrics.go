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

// Package metrics defines default initializers for the metrics structs used
// in the wire package.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ofcodec/ofwire/pkg/metrics"
	"github.com/ofcodec/ofwire/pkg/wire"
)

type Option func(*option)

// WithRegistry specifies the registerer used to create the metrics.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(o *option) {
		o.registry = registry
	}
}

type option struct {
	registry prometheus.Registerer
}

func apply(opts []Option) option {
	o := option{registry: prometheus.DefaultRegisterer}
	for _, option := range opts {
		option(&o)
	}
	return o
}

// NewAllocatorMetrics creates the prometheus-backed metrics for a wire
// buffer allocator.
func NewAllocatorMetrics(opts ...Option) wire.AllocatorMetrics {
	o := apply(opts)
	auto := promauto.With(o.registry)

	return wire.AllocatorMetrics{
		Allocations: metrics.NewCounter(auto.NewCounter(prometheus.CounterOpts{
			Name: "lib_wire_allocations_total",
			Help: "Total number of fresh wire buffer allocations."})),
		AllocatedBytes: metrics.NewCounter(auto.NewCounter(prometheus.CounterOpts{
			Name: "lib_wire_allocated_total_bytes",
			Help: "Total capacity of fresh wire buffer allocations."})),
		Binds: metrics.NewCounter(auto.NewCounter(prometheus.CounterOpts{
			Name: "lib_wire_binds_total",
			Help: "Total number of wire buffers bound to external memory."})),
		AllocationErrors: metrics.NewCounter(auto.NewCounter(prometheus.CounterOpts{
			Name: "lib_wire_allocation_errors_total",
			Help: "Total number of failed wire buffer allocations."})),
	}
}
