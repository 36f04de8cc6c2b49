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

// Package log provides a thin structured logging layer on top of zap. Log
// calls take a message and a list of alternating key/value context pairs,
// matching the convention used by the serrors package.
package log

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ofcodec/ofwire/pkg/private/serrors"
)

// Logger describes the logger interface.
type Logger interface {
	// New returns a child logger with the given context attached to every
	// entry.
	New(ctx ...any) Logger
	Debug(msg string, ctx ...any)
	Info(msg string, ctx ...any)
	Error(msg string, ctx ...any)
	Enabled(lvl Level) bool
}

// Level is the log level.
type Level = zapcore.Level

// The supported log levels.
const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	ErrorLevel = zapcore.ErrorLevel
)

// Config configures the process-wide logger installed by Setup.
type Config struct {
	// Level of the logging entries. Defaults to info.
	Level string
	// Console forces the human-readable console encoder instead of JSON.
	Console bool
}

// Setup configures the process-wide root logger. It must be called before
// the first use of Root.
func Setup(cfg Config) error {
	lvl := zap.InfoLevel
	if cfg.Level != "" {
		if err := lvl.UnmarshalText([]byte(cfg.Level)); err != nil {
			return serrors.Wrap("parsing log level", err, "level", cfg.Level)
		}
	}
	zCfg := zap.NewProductionConfig()
	zCfg.Level = zap.NewAtomicLevelAt(lvl)
	zCfg.DisableCaller = true
	zCfg.DisableStacktrace = true
	if cfg.Console {
		zCfg.Encoding = "console"
		zCfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	logger, err := zCfg.Build()
	if err != nil {
		return serrors.Wrap("creating logger", err)
	}
	zap.ReplaceGlobals(logger)
	return nil
}

// New creates a logger with the given context on top of the root logger.
func New(ctx ...any) Logger {
	return &logger{logger: zap.L().With(convertCtx(ctx)...)}
}

// Root returns the root logger. It never returns nil.
func Root() Logger {
	return &logger{logger: zap.L()}
}

// Debug logs at debug level on the root logger.
func Debug(msg string, ctx ...any) { Root().Debug(msg, ctx...) }

// Info logs at info level on the root logger.
func Info(msg string, ctx ...any) { Root().Info(msg, ctx...) }

// Error logs at error level on the root logger.
func Error(msg string, ctx ...any) { Root().Error(msg, ctx...) }

// Flush writes buffered log entries out.
func Flush() error {
	return zap.L().Sync()
}

type logger struct {
	logger *zap.Logger
}

func (l *logger) New(ctx ...any) Logger {
	return &logger{logger: l.logger.With(convertCtx(ctx)...)}
}

func (l *logger) Debug(msg string, ctx ...any) {
	l.logger.Debug(msg, convertCtx(ctx)...)
}

func (l *logger) Info(msg string, ctx ...any) {
	l.logger.Info(msg, convertCtx(ctx)...)
}

func (l *logger) Error(msg string, ctx ...any) {
	l.logger.Error(msg, convertCtx(ctx)...)
}

func (l *logger) Enabled(lvl Level) bool {
	return l.logger.Core().Enabled(lvl)
}

func convertCtx(ctx []any) []zap.Field {
	fields := make([]zap.Field, 0, len(ctx)/2)
	for i := 0; i+1 < len(ctx); i += 2 {
		fields = append(fields, zap.Any(ctx[i].(string), ctx[i+1]))
	}
	return fields
}
