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

// Package metrics defines the metric primitives used by ofwire packages.
// Instrumented code depends on the small interfaces in this package instead
// of a concrete metrics implementation; the prometheus-backed constructors
// live alongside them. All helpers tolerate nil metrics, so instrumentation
// is optional for callers that do not care.
package metrics

// Counter describes a metric that accumulates values monotonically.
type Counter interface {
	Add(delta float64)
}

// CounterAdd increases the passed counter by the amount. If the counter is
// nil, nothing happens.
func CounterAdd(c Counter, delta float64) {
	if c != nil {
		c.Add(delta)
	}
}

// CounterInc increases the passed counter by one. If the counter is nil,
// nothing happens.
func CounterInc(c Counter) {
	CounterAdd(c, 1)
}
