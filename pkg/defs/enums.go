package defs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedValue is returned when a configured value is not one of the allowed options.
var ErrUnsupportedValue = errors.New("unsupported value")

func parseEnumCaseInsensitive[T ~string](value string, allowed ...T) (T, error) {
	for _, option := range allowed {
		if strings.EqualFold(strings.TrimSpace(value), string(option)) {
			return option, nil
		}
	}

	var zero T
	return zero, fmt.Errorf("%w %q, allowed values: %v", ErrUnsupportedValue, value, allowed)
}
