package easel

import (
	"io"

	"github.com/charmbracelet/log"
)

// logger is the package logger. It discards everything until SetLogger is
// called.
var logger = newNopLogger()

func newNopLogger() *log.Logger { return log.New(io.Discard) }

// SetLogger sets the logger used by easel. Pass nil to silence logging again.
//
// Levels used:
//   - Debug: shader builds, surface resizes, per-frame stats in debug mode
//   - Info: canvas creation, screenshots written
//   - Warn: unbalanced transform stack at the end of a debug frame
//   - Error: screenshot and test-script failures
//
// Example:
//
//	easel.SetLogger(log.NewWithOptions(os.Stderr, log.Options{
//	    Level:  log.DebugLevel,
//	    Prefix: "easel",
//	}))
//
// Like the rest of the package, SetLogger must be called from the render
// goroutine.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	logger = l
}

// Logger returns the logger in use.
func Logger() *log.Logger {
	return logger
}
