package tap

import (
	"sync/atomic"

	"go.uber.org/zap"
)

// loggerPtr stores the package logger. Accessed atomically so SetLogger can
// race with taps being pulled on other goroutines.
var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// SetLogger installs l as the package logger used by taps created without
// WithLogger. Pass nil to restore the silent default.
// Safe for concurrent use.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}

// Logger returns the current package logger. Safe for concurrent use.
func Logger() *zap.Logger {
	return loggerPtr.Load()
}
