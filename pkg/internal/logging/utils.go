package logging

import (
	"log/slog"
)

const (
	ComponentKey = "component"
	ErrorKey     = "error"
)

// Child returns a new logger with the given component name added to the logger attrs.
func Child(logger *slog.Logger, component string) *slog.Logger {
	return DefaultIfNil(logger).With(
		slog.String(ComponentKey, component),
	)
}

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(ErrorKey, "<nil>")
	}
	return slog.String(ErrorKey, err.Error())
}

// DefaultIfNil returns the default logger if the given logger is nil.
func DefaultIfNil(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
