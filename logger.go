package btxt

import "log/slog"

import "github.com/ekelse/btxt/internal/log"

// Configures the logger for btxt and all its subpackages. By
// default, btxt produces no log output; call SetLogger to enable
// logging. Pass nil to restore the default silent behavior.
//
// SetLogger is safe for concurrent use: the logger is stored
// atomically.
//
// btxt only logs at [slog.LevelDebug], for font registration and
// similar setup events. The layout and drawing hot paths never log.
func SetLogger(logger *slog.Logger) {
	log.SetLogger(logger)
}
