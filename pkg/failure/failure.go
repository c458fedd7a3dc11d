// Package failure describes why a card assertion did not hold.
package failure

import (
	"errors"
	"fmt"
)

// ErrAssertionFailed matches every assertion failure regardless of its kind.
var ErrAssertionFailed = errors.New("card assertion failed")

// Kind tells which kind of card (or card component) an assertion was made about.
type Kind string

// Supported kinds.
const (
	KindHeroCard      Kind = "hero card"
	KindThumbnailCard Kind = "thumbnail card"
	KindReceiptCard   Kind = "receipt card"
	KindSigninCard    Kind = "signin card"
	KindCardImage     Kind = "card image"
	KindCardAction    Kind = "card action"
	KindFact          Kind = "fact"
	KindReceiptItem   Kind = "receipt item"
)

// Error is returned when a card property does not match the expected pattern.
type Error struct {
	Kind     Kind
	Property string
	Pattern  string
	Message  string
}

// NoMatch builds the failure for a single card whose property did not match pattern.
func NoMatch(kind Kind, property, pattern string) *Error {
	return &Error{
		Kind:     kind,
		Property: property,
		Pattern:  pattern,
		Message:  fmt.Sprintf("expected %s to have property %s matching %s but regex test failed", kind, property, pattern),
	}
}

// NoneMatch builds the failure for a set of cards where no card's property matched pattern.
func NoneMatch(kind Kind, property, pattern string) *Error {
	return &Error{
		Kind:     kind,
		Property: property,
		Pattern:  pattern,
		Message:  fmt.Sprintf("expected at least one %s to have property %s matching %s but regex test failed", kind, property, pattern),
	}
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is ErrAssertionFailed or a failure of the same kind.
// A target with an empty Property or Pattern matches any property or pattern.
func (e *Error) Is(target error) bool {
	if target == ErrAssertionFailed {
		return true
	}

	other, ok := target.(*Error)
	if !ok {
		return false
	}

	return other.Kind == e.Kind &&
		(other.Property == "" || other.Property == e.Property) &&
		(other.Pattern == "" || other.Pattern == e.Pattern)
}

// KindOf returns the kind of the assertion failure found in err's chain.
func KindOf(err error) (Kind, bool) {
	var failure *Error
	if errors.As(err, &failure) {
		return failure.Kind, true
	}
	return "", false
}

// Of returns a target for errors.Is that matches any failure of the given kind.
func Of(kind Kind) error {
	return &Error{Kind: kind}
}
