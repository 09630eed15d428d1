//go:build !debug

package log

import "log/slog"

// Debug is a no-op unless built with the debug tag.
func Debug(_ string, _ ...any) {}

// SetHandler sets the default logger's handler to the one given.
func SetHandler(h Handler) {
	defaultLogger = slog.New(h)
}
