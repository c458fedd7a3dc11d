package testabilities

import (
	"testing"

	"github.com/botspec/go-botspec/pkg/cards"
	"github.com/botspec/go-botspec/pkg/internal/testabilities/testcards"
)

type HeroCardsFixture interface {
	// WithTitles returns one hero card per title; a nil title leaves the card without one.
	WithTitles(titles ...*string) []cards.HeroCard
	// Menu returns the hero cards of a pizzeria menu reply.
	Menu() []cards.HeroCard
	Empty() *cards.HeroCard
}

type heroCardsFixture struct {
	testing.TB
}

func (f *heroCardsFixture) WithTitles(titles ...*string) []cards.HeroCard {
	f.Helper()
	result := make([]cards.HeroCard, 0, len(titles))
	for _, title := range titles {
		result = append(result, cards.HeroCard{Title: text(title)})
	}
	return result
}

func (f *heroCardsFixture) Menu() []cards.HeroCard {
	return []cards.HeroCard{testcards.Margherita(), testcards.Pepperoni()}
}

func (f *heroCardsFixture) Empty() *cards.HeroCard {
	return &cards.HeroCard{}
}
