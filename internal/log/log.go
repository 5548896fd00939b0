// Package log holds the shared logger used across btxt packages.
//
// By default the logger discards everything. The public entry point
// to enable logging is btxt.SetLogger; this package only exists so
// that subpackages can reach the same logger without import cycles.
package log

import "context"
import "log/slog"
import "sync/atomic"

// nopHandler discards all records. Enabled returns false so callers
// skip message formatting entirely, keeping disabled logging free.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// Returns the active logger. Never nil.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// Replaces the active logger. Passing nil restores the default
// silent logger.
func SetLogger(logger *slog.Logger) {
	if logger == nil { logger = slog.New(nopHandler{}) }
	loggerPtr.Store(logger)
}
