// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Oleg Khapkin

// Package logger wraps zerolog.Logger with the constructors and context
// helpers the rest of go-match-sync uses.
//
// Logger embeds zerolog.Logger, so the full zerolog API (Debug, Info, Warn,
// Error, Fatal, ...) is available on *Logger directly. Operation-scoped
// loggers travel through context and come back out via FromContext.
package logger

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger. The wrapper exists so the
// application can grow helper methods without touching the upstream type.
type Logger struct {
	zerolog.Logger
}

// NewLogger builds a JSON logger on stdout for the given role label
// (e.g. "client", "sync-job"). Every entry carries the role, a timestamp,
// and a "func" field with the fully-qualified caller name.
func NewLogger(role string) *Logger {
	return newRoleLogger(role, os.Stdout)
}

// NewClientLogger is NewLogger writing to a "logs" file next to the
// executable, so log output stays off the terminal the client runs in.
// Falls back to stdout when the file cannot be opened.
func NewClientLogger(role string) *Logger {
	var sink io.Writer = os.Stdout

	execPath, err := os.Executable()
	if err == nil {
		logPath := filepath.Join(filepath.Dir(execPath), "logs")
		if f, openErr := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); openErr == nil {
			sink = f
		}
	}

	return newRoleLogger(role, sink)
}

func newRoleLogger(role string, sink io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}

	l := zerolog.New(sink).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// Nop returns a *Logger that discards everything. For tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger inheriting all of the receiver's
// fields; the child can be enriched without affecting the parent.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromContext extracts the zerolog.Logger attached to ctx (via zerolog's
// log.Ctx) as a *Logger. zerolog falls back to its global logger when none
// is attached, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
