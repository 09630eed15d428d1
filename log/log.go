// Package log wraps [log/slog] with a process-wide default logger and a
// [Level] type usable as a config value and command-line flag.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

type (
	Attr    = slog.Attr
	Handler = slog.Handler
)

var DiscardHandler = slog.DiscardHandler

var (
	level         = new(slog.LevelVar)
	defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
)

// SetLogLevel sets the minimum level logged by the default logger.
func SetLogLevel(l Level) {
	level.Set(slog.Level(l))
}

// SetTextHandler sets the default logger to write text to w.
func SetTextHandler(w io.Writer) {
	SetHandler(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetJSONHandler sets the default logger to write JSON to w.
func SetJSONHandler(w io.Writer) {
	SetHandler(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetOutput redirects the default logger's output to w, keeping the
// current format.
func SetOutput(w io.Writer) {
	SetTextHandler(w)
}

// Error logs msg at [LevelError]. A non-nil err is attached as the
// "cause" attribute.
func Error(msg string, err error, args ...any) {
	if err != nil {
		args = append([]any{"cause", err}, args...)
	}

	defaultLogger.Error(msg, args...)
}

// Warn logs msg at [LevelWarn].
func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

// Info logs msg at [LevelInfo].
func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

func Println(v ...any) {
	defaultLogger.Info(fmt.Sprintln(v...))
}

func Printf(format string, v ...any) {
	defaultLogger.Info(fmt.Sprintf(format, v...))
}
