package defs

import (
	"io"
	"log/slog"
)

// LogLevel represents different log levels which can be configured.
type LogLevel string

// Supported log levels (based on slog).
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// ParseLogLevelStr parses a string into a LogLevel (case-insensitive).
func ParseLogLevelStr(level string) (LogLevel, error) {
	return parseEnumCaseInsensitive(level, LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError)
}

// Slog returns the slog level matching l. Unknown levels fall back to info.
func (l LogLevel) Slog() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogHandler represents different log handler types which can be configured.
type LogHandler string

// Supported handler types (based on slog).
const (
	JSONHandler LogHandler = "json"
	TextHandler LogHandler = "text"
)

// ParseHandlerTypeStr parses a string into a LogHandler (case-insensitive).
func ParseHandlerTypeStr(handlerType string) (LogHandler, error) {
	return parseEnumCaseInsensitive(handlerType, JSONHandler, TextHandler)
}

// NewLogger builds a logger writing records of at least the given level to w.
func NewLogger(level LogLevel, handler LogHandler, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level.Slog()}

	if handler == JSONHandler {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
