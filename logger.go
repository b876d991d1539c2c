package graphic

import (
	"log/slog"

	"github.com/zyfsa/graphic/internal/logging"
)

// SetLogger configures the logger for graphic and all its sub-packages.
// By default, graphic produces no log output. Call SetLogger to enable
// logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by graphic:
//   - [slog.LevelDebug]: per-element replay and sphere shading diagnostics
//   - [slog.LevelInfo]: redraws and exports
//   - [slog.LevelWarn]: skipped elements of unknown kind
//
// Example:
//
//	graphic.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by graphic.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
