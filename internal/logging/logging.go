// Package logging holds the logger shared by graphic and its sub-packages.
//
// The root package exposes it through graphic.SetLogger; raster, curve,
// sphere and recording log through Logger so that a single configuration
// reaches every package without import cycles.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler silently discards all log records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// Logger returns the active logger. It never returns nil.
func Logger() *slog.Logger { return loggerPtr.Load() }

// Set replaces the active logger. A nil logger restores silent output.
func Set(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}
