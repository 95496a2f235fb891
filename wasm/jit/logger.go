package jit

import "go.uber.org/zap"

// logger is a no-op by default; embedders opt into diagnostics via SetLogger.
var logger = zap.NewNop()

// SetLogger replaces the package logger. Passing nil restores the no-op
// default. Compilation and execution are single-threaded, so no
// synchronization is needed around the swap.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
