// Package cardtest turns the outcome of card assertions into test failures.
//
//	cardtest.Then(t).
//		Passes(assertions.ForHeroCards(reply.Hero).TitleCapturing(".*pizza.*", `(\d+)"`)).
//		Captured("12")
package cardtest

import (
	"testing"

	"github.com/botspec/go-botspec/pkg/failure"
	"github.com/botspec/go-botspec/pkg/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Outcome is the result of a chain of card assertions.
type Outcome interface {
	Err() error
	Groups() []string
}

type Assertion interface {
	Passes(outcome Outcome) PassedAssertion
	Fails(outcome Outcome) FailedAssertion
}

type PassedAssertion interface {
	Captured(groups ...string) PassedAssertion
	CapturedNothing() PassedAssertion
}

type FailedAssertion interface {
	WithKind(kind failure.Kind) FailedAssertion
	OnProperty(property string) FailedAssertion
	WithMessage(message string) FailedAssertion
	WithInvalidPattern() FailedAssertion
}

func Then(t testing.TB) Assertion {
	return &assertion{TB: t}
}

type assertion struct {
	testing.TB
}

func (a *assertion) Passes(outcome Outcome) PassedAssertion {
	a.Helper()
	require.NotNil(a, outcome, "outcome of card assertions should not be nil")
	require.NoError(a, outcome.Err(), "card assertions should pass")

	return &passedAssertion{TB: a.TB, outcome: outcome}
}

func (a *assertion) Fails(outcome Outcome) FailedAssertion {
	a.Helper()
	require.NotNil(a, outcome, "outcome of card assertions should not be nil")
	require.Error(a, outcome.Err(), "card assertions should fail")
	assert.Empty(a, outcome.Groups(), "failed card assertions should not capture anything")

	return &failedAssertion{TB: a.TB, err: outcome.Err()}
}

type passedAssertion struct {
	testing.TB

	outcome Outcome
}

func (a *passedAssertion) Captured(groups ...string) PassedAssertion {
	a.Helper()
	assert.Equal(a, groups, a.outcome.Groups(), "captured groups should match")
	return a
}

func (a *passedAssertion) CapturedNothing() PassedAssertion {
	a.Helper()
	assert.Empty(a, a.outcome.Groups(), "nothing should be captured")
	return a
}

type failedAssertion struct {
	testing.TB

	err error
}

func (a *failedAssertion) WithKind(kind failure.Kind) FailedAssertion {
	a.Helper()
	actual, ok := failure.KindOf(a.err)
	if assert.Truef(a, ok, "expected %s failure, got %v", kind, a.err) {
		assert.Equal(a, kind, actual, "failure kind should match")
	}
	return a
}

func (a *failedAssertion) OnProperty(property string) FailedAssertion {
	a.Helper()
	var failed *failure.Error
	if assert.ErrorAsf(a, a.err, &failed, "expected failure on property %s", property) {
		assert.Equal(a, property, failed.Property, "failed property should match")
	}
	return a
}

func (a *failedAssertion) WithMessage(message string) FailedAssertion {
	a.Helper()
	assert.EqualError(a, a.err, message)
	return a
}

func (a *failedAssertion) WithInvalidPattern() FailedAssertion {
	a.Helper()
	assert.ErrorIs(a, a.err, match.ErrInvalidPattern)
	return a
}
