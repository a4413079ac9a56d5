// Package dycg holds the module-wide logging override point: every other
// package in this module traces through Logger() instead of calling
// log/slog directly, so a host application can redirect or silence it
// with a single SetLogger call.
package dycg

import "log/slog"

var logger = slog.Default()

// SetLogger overrides the logger used by graph and hardware/cpu for
// their debug and allocation traces.
func SetLogger(l *slog.Logger) {
	logger = l
}

// Logger returns the current package-wide logger.
func Logger() *slog.Logger {
	return logger
}
