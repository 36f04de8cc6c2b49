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

// Package wire implements the byte-level buffer underneath the OpenFlow
// object layer. A Buffer holds one message worth of wire data and tracks how
// much of its allocated storage is in use; Slices address nested structures
// inside it without copying; the scalar accessors read and write big-endian
// fixed-width fields with a bounds check in front of every access; Splice
// edits variable-length substructures in place by relocating the trailing
// bytes.
//
// All types in this package are single-writer. A Buffer and the Slices
// referencing it form one ownership domain that must not be mutated from two
// goroutines at once; callers needing concurrency supply their own
// synchronization, typically by never sharing an in-flight message.
package wire
