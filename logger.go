package centurion

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var loggerPtr atomic.Pointer[zap.Logger]

func init() {
	loggerPtr.Store(zap.NewNop())
}

// Logger returns the diagnostics logger shared by every centurion package.
// It is a no-op logger until SetLogger is called.
func Logger() *zap.Logger {
	return loggerPtr.Load()
}

// SetLogger replaces the diagnostics logger.  Passing nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	loggerPtr.Store(l)
}
