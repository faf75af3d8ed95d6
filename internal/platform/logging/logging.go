// Package logging provides structured logger construction using the
// standard library slog package.
//
// Logger construction:
//
//	logger := logging.New("warn", "text", os.Stderr)
//
// Error logging convention for application services:
//
//	logger.ErrorContext(ctx, "failed to update task",
//	    slog.String("operation", "EditTask"),
//	    slog.Int64("task_id", id),
//	    slog.Any("error", err),
//	)
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New creates a configured *slog.Logger.
//
// The level parameter sets the minimum log level. Valid values are "debug",
// "info", "warn", and "error". Unrecognized values default to info.
//
// The format parameter selects the output handler. "json" uses
// slog.NewJSONHandler; all other values (including "text") use
// slog.NewTextHandler.
//
// When level is "debug", source code location is included in log output.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// parseLevel converts a level string to slog.Level.
// Unrecognized values default to slog.LevelInfo.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
