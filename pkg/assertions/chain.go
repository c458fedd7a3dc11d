package assertions

import (
	"log/slog"

	"github.com/botspec/go-botspec/pkg/failure"
	"github.com/botspec/go-botspec/pkg/internal/logging"
	"github.com/botspec/go-botspec/pkg/match"
)

// chain is the outcome of the assertions made so far.
// Every step returns a new chain; the receiver is never modified.
type chain struct {
	logger *slog.Logger
	err    error
	groups []string
}

// Err returns the first failed assertion of the chain, or nil when every assertion held.
// A failed match is a *failure.Error; an unusable pattern is returned as match.ErrInvalidPattern.
func (c chain) Err() error {
	return c.err
}

// Groups returns the texts captured by the latest ...Capturing assertion.
// It is nil when nothing was captured or when an assertion of the chain failed.
func (c chain) Groups() []string {
	return c.groups
}

func (c chain) failed() bool {
	return c.err != nil
}

func (c chain) fail(err error) chain {
	return chain{logger: c.logger, err: err}
}

func (c chain) check(kind failure.Kind, property string, value *string, pattern string) chain {
	if c.failed() {
		return c
	}

	matched, err := match.Field(value, pattern)
	if err != nil {
		c.logInvalid(kind, property, err)
		return c.fail(err)
	}

	c.log(kind, property, pattern, matched)
	if !matched {
		return c.fail(failure.NoMatch(kind, property, pattern))
	}
	return c
}

func (c chain) capture(kind failure.Kind, property string, value *string, pattern, groupPattern string) chain {
	if c.failed() {
		return c
	}

	result, err := match.FieldWithGroups(value, pattern, groupPattern)
	if err != nil {
		c.logInvalid(kind, property, err)
		return c.fail(err)
	}

	c.log(kind, property, pattern, result.Matched, slog.String("groupPattern", groupPattern), slog.Int("groups", len(result.Groups)))
	if !result.Matched {
		return c.fail(failure.NoMatch(kind, property, pattern))
	}
	return chain{logger: c.logger, groups: result.Groups}
}

func (c chain) checkAny(kind failure.Kind, property string, values []*string, pattern string) chain {
	if c.failed() {
		return c
	}

	matched, err := match.Any(values, pattern)
	if err != nil {
		c.logInvalid(kind, property, err)
		return c.fail(err)
	}

	c.log(kind, property, pattern, matched, slog.Int("cards", len(values)))
	if !matched {
		return c.fail(failure.NoneMatch(kind, property, pattern))
	}
	return c
}

func (c chain) captureAny(kind failure.Kind, property string, values []*string, pattern, groupPattern string) chain {
	if c.failed() {
		return c
	}

	result, err := match.AnyWithGroups(values, pattern, groupPattern)
	if err != nil {
		c.logInvalid(kind, property, err)
		return c.fail(err)
	}

	c.log(kind, property, pattern, result.Matched,
		slog.Int("cards", len(values)), slog.String("groupPattern", groupPattern), slog.Int("groups", len(result.Groups)))
	if !result.Matched {
		return c.fail(failure.NoneMatch(kind, property, pattern))
	}
	return chain{logger: c.logger, groups: result.Groups}
}

func (c chain) log(kind failure.Kind, property, pattern string, matched bool, attrs ...any) {
	args := append([]any{
		slog.String("kind", string(kind)),
		slog.String("property", property),
		slog.String("pattern", pattern),
		slog.Bool("matched", matched),
	}, attrs...)
	c.logger.Debug("evaluated card property", args...)
}

func (c chain) logInvalid(kind failure.Kind, property string, err error) {
	c.logger.Debug("cannot evaluate card property",
		slog.String("kind", string(kind)),
		slog.String("property", property),
		logging.Error(err),
	)
}

// field reads a text field of item, treating a missing item as a missing field.
func field[T any](item *T, get func(*T) *string) *string {
	if item == nil {
		return nil
	}
	return get(item)
}

// fields projects every item onto one of its text fields.
func fields[T any](items []*T, get func(*T) *string) []*string {
	return match.Values(items, func(item *T) *string {
		return field(item, get)
	})
}

func pointers[T any](items []T) []*T {
	result := make([]*T, 0, len(items))
	for i := range items {
		result = append(result, &items[i])
	}
	return result
}
