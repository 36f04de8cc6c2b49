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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// NewCounter wraps a prometheus counter as a Counter. Returns nil if c is
// nil.
func NewCounter(c prometheus.Counter) Counter {
	if c == nil {
		return nil
	}
	return promCounter{c: c}
}

type promCounter struct {
	c prometheus.Counter
}

func (p promCounter) Add(delta float64) {
	p.c.Add(delta)
}
