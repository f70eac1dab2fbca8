// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and
// context helpers used by the gate server and the envelope CLI.
//
// Logger embeds zerolog.Logger, so Debug, Info, Warn, Error and the rest of
// the zerolog API are available directly on *Logger. Request handlers obtain
// their trace-scoped logger through FromRequest or FromContext.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

func configureGlobals() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"
}

// NewLogger returns a JSON logger writing to os.Stdout. Every entry
// carries the role label, a timestamp and the calling function name.
func NewLogger(role string) *Logger {
	configureGlobals()
	logger := zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewCLILogger returns a human-readable logger for the envelope CLI. Output
// goes to w, normally os.Stderr, so it never mixes with envelope text written
// to stdout.
func NewCLILogger(role string, w io.Writer) *Logger {
	configureGlobals()
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	logger := zerolog.New(console).With().
		Str("role", role).
		Timestamp().
		Logger().
		Level(zerolog.InfoLevel)

	return &Logger{logger}
}

// Nop returns a *Logger that discards all output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l that can be enriched with fields
// without affecting l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context by the
// trace-id middleware.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext returns the logger attached to ctx. When none is attached
// zerolog falls back to its default logger, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
