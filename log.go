package pi

import "go.uber.org/zap"

// Zap logger to use in this package; default is a no-op logger.
var logger = zap.NewNop()

// SetLogger changes the Zap logger instance used by this package.
// A nil logger is ignored.
// SetLogger is not safe for concurrent use with calculations in progress.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}
