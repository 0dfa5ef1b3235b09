// Package simonlog provides a zerolog-based logger for the cmd/simonctl
// demonstration tool, in the shape of n2n-go/pkg/log (a package-level
// logger, a SetStd bring-up, and thin Debug/Info/Warn/Error accessors) but
// without that package's SQLite sink, which has no equivalent need here:
// simonctl is a short-lived CLI invocation, not a long-running daemon.
package simonlog

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu        sync.RWMutex
	pkgLogger = zerolog.Nop()
)

// SetStd points the package logger at a human-readable console writer on
// stderr. Call it once during CLI startup.
func SetStd(debug bool) {
	mu.Lock()
	defer mu.Unlock()

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	pkgLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

func logger() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return pkgLogger
}

func Debug() *zerolog.Event { l := logger(); return l.Debug() }
func Info() *zerolog.Event  { l := logger(); return l.Info() }
func Warn() *zerolog.Event  { l := logger(); return l.Warn() }
func Error() *zerolog.Event { l := logger(); return l.Error() }
func Fatal() *zerolog.Event { l := logger(); return l.Fatal() }
