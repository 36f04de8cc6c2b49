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

// Package serrors provides enhanced errors. Errors created with serrors can
// carry additional log context in the form of key value pairs. The package
// provides wrapping constructors; the returned errors support the standard
// errors.Is and errors.As functionality. For any error err returned by this
// package that wraps a cause, errors.Is(err, cause) is true.
package serrors

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ctxPair is one item of context info.
type ctxPair struct {
	Key   string
	Value any
}

// errorInfo carries the parts shared by the basic and joined implementations.
type errorInfo struct {
	ctx   []ctxPair
	cause error
	stack *stack
}

func (e errorInfo) error() string {
	var buf bytes.Buffer
	if len(e.ctx) != 0 {
		fmt.Fprint(&buf, " ")
		encodeContext(&buf, e.ctx)
	}
	if e.cause != nil {
		fmt.Fprintf(&buf, ": %s", e.cause)
	}
	return buf.String()
}

func (e errorInfo) marshalLogObject(enc zapcore.ObjectEncoder) error {
	if e.cause != nil {
		if m, ok := e.cause.(zapcore.ObjectMarshaler); ok {
			if err := enc.AddObject("cause", m); err != nil {
				return err
			}
		} else {
			enc.AddString("cause", e.cause.Error())
		}
	}
	if e.stack != nil {
		if err := enc.AddArray("stacktrace", e.stack); err != nil {
			return err
		}
	}
	for _, pair := range e.ctx {
		zap.Any(pair.Key, pair.Value).AddTo(enc)
	}
	return nil
}

// StackTrace returns the attached stack trace if there is any.
func (e errorInfo) StackTrace() StackTrace {
	if e.stack == nil {
		return nil
	}
	return e.stack.StackTrace()
}

// IsTimeout returns whether err is or is caused by a timeout error.
func IsTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}

// IsTemporary returns whether err is or is caused by a temporary error.
func IsTemporary(err error) bool {
	var t interface{ Temporary() bool }
	return errors.As(err, &t) && t.Temporary()
}

func mkErrorInfo(cause error, addStack bool, errCtx ...any) errorInfo {
	np := len(errCtx) / 2
	ctx := make([]ctxPair, np)
	for i := 0; i < np; i++ {
		ctx[i] = ctxPair{Key: fmt.Sprint(errCtx[2*i]), Value: errCtx[2*i+1]}
	}
	sort.Slice(ctx, func(a, b int) bool {
		return ctx[a].Key < ctx[b].Key
	})

	r := errorInfo{
		cause: cause,
		ctx:   ctx,
	}
	if !addStack {
		return r
	}

	var (
		t1 basicError
		t2 *basicError
		t3 joinedError
		t4 *joinedError
	)
	// Attach a stack trace only if no wrapped serrors error carries one
	// already. Checking only the cause keeps every constructor from paying
	// for a walk over the whole chain.
	if cause == nil || !(errors.As(cause, &t1) || errors.As(cause, &t2) ||
		errors.As(cause, &t3) || errors.As(cause, &t4)) {

		r.stack = callers()
	}
	return r
}

// basicError is an error implementation around a plain message string.
type basicError struct {
	errorInfo
	msg string
}

func (e basicError) Error() string {
	var buf bytes.Buffer
	buf.WriteString(e.msg)
	buf.WriteString(e.errorInfo.error())
	return buf.String()
}

func (e basicError) Unwrap() error {
	return e.cause
}

// MarshalLogObject implements zapcore.ObjectMarshaler to have a nicer log
// representation.
func (e basicError) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("msg", e.msg)
	return e.errorInfo.marshalLogObject(enc)
}

// New creates a new error with the given message and context, plus a stack
// dump. Avoid using this in performance-critical code: it is the most
// expensive variant. To make sentinel errors, errors.New() should be
// preferred.
func New(msg string, errCtx ...any) error {
	return &basicError{
		errorInfo: mkErrorInfo(nil, true, errCtx...),
		msg:       msg,
	}
}

// Wrap returns an error that associates the given message with the given
// cause (an underlying error) unless nil, and the given context.
//
// A stack dump is added unless cause already carries one. The returned error
// supports Is; Is(cause) returns true.
func Wrap(msg string, cause error, errCtx ...any) error {
	return basicError{
		errorInfo: mkErrorInfo(cause, true, errCtx...),
		msg:       msg,
	}
}

// WrapNoStack is like Wrap but never attaches a stack dump of its own. If
// cause carries a stack dump, that dump is preserved.
func WrapNoStack(msg string, cause error, errCtx ...any) error {
	return basicError{
		errorInfo: mkErrorInfo(cause, false, errCtx...),
		msg:       msg,
	}
}

// joinedError aggregates context and an optional cause around an existing
// base error, typically a unique sentinel.
type joinedError struct {
	errorInfo
	error error
}

func (e joinedError) Error() string {
	var buf bytes.Buffer
	buf.WriteString(e.error.Error())
	buf.WriteString(e.errorInfo.error())
	return buf.String()
}

func (e joinedError) Unwrap() []error {
	return []error{e.error, e.cause}
}

// MarshalLogObject implements zapcore.ObjectMarshaler to have a nicer log
// representation. The base error is treated as a most generic error.
func (e joinedError) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("msg", e.error.Error())
	return e.errorInfo.marshalLogObject(enc)
}

// Join returns an error that associates the given error, with the given
// cause (an underlying error) unless nil, and the given context.
//
// A stack dump is added unless cause already carries one. The returned error
// supports Is. Is(err) returns true; if cause isn't nil, Is(cause) returns
// true as well.
func Join(err, cause error, errCtx ...any) error {
	if err == nil && cause == nil {
		return nil
	}
	return joinedError{
		errorInfo: mkErrorInfo(cause, true, errCtx...),
		error:     err,
	}
}

// JoinNoStack is like Join but never attaches a stack dump of its own. If
// cause carries a stack dump, that dump is preserved.
func JoinNoStack(err, cause error, errCtx ...any) error {
	if err == nil && cause == nil {
		return nil
	}
	return joinedError{
		errorInfo: mkErrorInfo(cause, false, errCtx...),
		error:     err,
	}
}

// List is a slice of errors.
type List []error

// Error implements the error interface.
func (e List) Error() string {
	s := make([]string, 0, len(e))
	for _, err := range e {
		s = append(s, err.Error())
	}
	return fmt.Sprintf("[ %s ]", strings.Join(s, "; "))
}

// ToError returns the object as error interface implementation.
func (e List) ToError() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// MarshalLogArray implements zapcore.ArrayMarshaler for nicer logging format
// of error lists.
func (e List) MarshalLogArray(ae zapcore.ArrayEncoder) error {
	for _, err := range e {
		if m, ok := err.(zapcore.ObjectMarshaler); ok {
			if err := ae.AppendObject(m); err != nil {
				return err
			}
		} else {
			ae.AppendString(err.Error())
		}
	}
	return nil
}

func encodeContext(buf io.Writer, pairs []ctxPair) {
	fmt.Fprint(buf, "{")
	for i, p := range pairs {
		fmt.Fprintf(buf, "%s=%v", p.Key, p.Value)
		if i != len(pairs)-1 {
			fmt.Fprint(buf, "; ")
		}
	}
	fmt.Fprintf(buf, "}")
}
