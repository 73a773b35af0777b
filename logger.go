package sld

import (
	"log/slog"
	"sync/atomic"
)

// silent discards every record; Enabled is false at all levels, so
// disabled calls skip attribute formatting.
var silent = slog.New(slog.DiscardHandler)

var current atomic.Pointer[slog.Logger]

func init() { current.Store(silent) }

// SetLogger routes the advisory messages of sld and its sub-packages to
// l. A nil l restores the default, which discards everything. It is safe
// to call while other goroutines log.
//
// The model never logs on its success path. Levels used:
//   - [slog.LevelDebug]: a cast dropped a value it could not translate
//     (foreign node, unknown overlap behavior, image outline, algorithm)
//   - [slog.LevelWarn]: deprecated feature type names, vendor option keys
//     unknown to a contrast method
//
// Example:
//
//	sld.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger installed by SetLogger.
func Logger() *slog.Logger { return current.Load() }
