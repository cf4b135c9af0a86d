package oxidecompat

import "log/slog"

// Option configures a Checker.
type Option func(*Checker)

// WithLogger sets a structured logger for check diagnostics. If not
// set, logging is disabled (silent mode).
//
// The library uses log/slog so any backend can be plugged in via slog
// handlers:
//
//	checker := NewChecker(core, WithLogger(slog.Default()))
func WithLogger(l *slog.Logger) Option {
	return func(c *Checker) {
		c.logger = logger{l: l}
	}
}

// logger is a nil-safe wrapper so check paths can log unconditionally.
type logger struct {
	l *slog.Logger
}

func (lg logger) debug(msg string, args ...any) {
	if lg.l != nil {
		lg.l.Debug(msg, args...)
	}
}
