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

package serrors

import (
	"runtime"
	"strconv"

	"go.uber.org/zap/zapcore"
)

// Frame is a single program counter of a stack frame.
type Frame uintptr

// StackTrace is a stack of Frames from innermost (newest) to outermost
// (oldest).
type StackTrace []Frame

func (f Frame) pc() uintptr { return uintptr(f) - 1 }

// MarshalText renders the frame as "function file:line".
func (f Frame) MarshalText() ([]byte, error) {
	fn := runtime.FuncForPC(f.pc())
	if fn == nil {
		return []byte("unknown"), nil
	}
	file, line := fn.FileLine(f.pc())
	return []byte(fn.Name() + " " + file + ":" + strconv.Itoa(line)), nil
}

func (f Frame) String() string {
	t, _ := f.MarshalText()
	return string(t)
}

type stack []uintptr

func (s *stack) StackTrace() StackTrace {
	f := make([]Frame, len(*s))
	for i := 0; i < len(f); i++ {
		f[i] = Frame((*s)[i])
	}
	return f
}

// MarshalLogArray implements zapcore.ArrayMarshaler.
func (s *stack) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for i := 0; i < len(*s); i++ {
		f := Frame((*s)[i])
		t, err := f.MarshalText()
		if err != nil {
			return err
		}
		enc.AppendByteString(t)
	}
	return nil
}

func callers() *stack {
	const depth = 32
	var pcs [depth]uintptr
	// Skip runtime.Callers, this function, and the serrors constructor.
	n := runtime.Callers(3, pcs[:])
	var st stack = pcs[0:n]
	return &st
}
