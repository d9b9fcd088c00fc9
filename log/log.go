// Copyright (c) 2026 The Aurum developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

// Package log provides the structured logger shared by all components,
// backed by log/slog.
package log

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

// Logger writes key/value structured records.
type Logger interface {
	// With returns a logger that includes the given attributes in each output.
	With(ctx ...any) Logger

	Debug(msg string, ctx ...any)
	Info(msg string, ctx ...any)
	Warn(msg string, ctx ...any)
	Error(msg string, ctx ...any)
}

type logger struct {
	inner *slog.Logger
}

func (l *logger) With(ctx ...any) Logger {
	return &logger{l.inner.With(ctx...)}
}

func (l *logger) Debug(msg string, ctx ...any) { l.inner.Debug(msg, ctx...) }
func (l *logger) Info(msg string, ctx ...any)  { l.inner.Info(msg, ctx...) }
func (l *logger) Warn(msg string, ctx ...any)  { l.inner.Warn(msg, ctx...) }
func (l *logger) Error(msg string, ctx ...any) { l.inner.Error(msg, ctx...) }

var root atomic.Value

func init() {
	root.Store(Logger(&logger{slog.New(NewTerminalHandler(os.Stderr, false))}))
}

// SetRootHandler replaces the handler of the root logger.
func SetRootHandler(h slog.Handler) {
	root.Store(Logger(&logger{slog.New(h)}))
}

// Root returns the process-wide root logger.
func Root() Logger {
	return root.Load().(Logger)
}

// WithContext returns a root-derived logger carrying the given attributes.
func WithContext(ctx ...any) Logger {
	return Root().With(ctx...)
}

// New creates a logger over the given handler.
func New(h slog.Handler) Logger {
	return &logger{slog.New(h)}
}

// DiscardHandler returns a no-op handler.
func DiscardHandler() slog.Handler {
	return &discardHandler{}
}

type discardHandler struct{}

func (h *discardHandler) Handle(_ context.Context, _ slog.Record) error { return nil }
func (h *discardHandler) Enabled(_ context.Context, _ slog.Level) bool  { return false }
func (h *discardHandler) WithGroup(_ string) slog.Handler               { return h }
func (h *discardHandler) WithAttrs(_ []slog.Attr) slog.Handler          { return h }
