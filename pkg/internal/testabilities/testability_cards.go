package testabilities

import (
	"log/slog"
	"testing"

	"github.com/botspec/go-botspec/pkg/assertions"
	"github.com/botspec/go-botspec/pkg/cards"
	"github.com/botspec/go-botspec/pkg/cardtest"
	"github.com/go-softwarelab/common/pkg/slogx"
	"github.com/go-softwarelab/common/pkg/to"
)

// Options configures the logger that fixtures hand over to card assertions.
type Options struct {
	logger *slog.Logger
}

// WithLogger sends assertion logs to logger instead of the test output.
func WithLogger(logger *slog.Logger) func(*Options) {
	return func(options *Options) {
		if logger != nil {
			options.logger = logger
		}
	}
}

// WithoutLogging drops assertion logs, for tests that inspect the default logger.
func WithoutLogging() func(*Options) {
	return WithLogger(slog.New(slog.DiscardHandler))
}

type CardsFixture interface {
	Logger() *slog.Logger
	AssertionOptions() []assertions.Option
	HeroCards() HeroCardsFixture
	ReceiptCards() ReceiptCardsFixture
}

func New(t testing.TB, opts ...func(*Options)) (CardsFixture, cardtest.Assertion) {
	return Given(t, opts...), Then(t)
}

func Given(t testing.TB, opts ...func(*Options)) CardsFixture {
	f := &cardsFixture{
		TB: t,
	}

	options := to.OptionsWithDefault(Options{
		logger: slogx.NewTestLogger(f),
	}, opts...)

	f.logger = options.logger

	return f
}

func Then(t testing.TB) cardtest.Assertion {
	return cardtest.Then(t)
}

type cardsFixture struct {
	testing.TB
	logger *slog.Logger
}

func (f *cardsFixture) Logger() *slog.Logger {
	return f.logger
}

func (f *cardsFixture) AssertionOptions() []assertions.Option {
	return []assertions.Option{assertions.WithLogger(f.logger)}
}

func (f *cardsFixture) HeroCards() HeroCardsFixture {
	return &heroCardsFixture{TB: f.TB}
}

func (f *cardsFixture) ReceiptCards() ReceiptCardsFixture {
	return &receiptCardsFixture{TB: f.TB}
}

// text converts fixture strings into card text fields, keeping nil for absent fields.
func text(value *string) *string {
	if value == nil {
		return nil
	}
	return cards.String(*value)
}
