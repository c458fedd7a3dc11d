package assertions_test

import (
	"testing"

	"github.com/botspec/go-botspec/pkg/assertions"
	"github.com/botspec/go-botspec/pkg/cards"
	"github.com/botspec/go-botspec/pkg/failure"
	"github.com/botspec/go-botspec/pkg/internal/testabilities"
	"github.com/go-softwarelab/common/pkg/to"
)

func TestHeroCardAssertions(t *testing.T) {
	t.Run("pass when title matches whole text ignoring case", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		menu := given.HeroCards().Menu()

		// when:
		result := assertions.ForHeroCard(&menu[0], given.AssertionOptions()...).TitleMatching("margherita.*")

		// then:
		then.Passes(result).CapturedNothing()
	})

	t.Run("fail when pattern matches only part of the title", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		menu := given.HeroCards().Menu()

		// when:
		result := assertions.ForHeroCard(&menu[0], given.AssertionOptions()...).TitleMatching("margherita")

		// then:
		then.Fails(result).
			WithKind(failure.KindHeroCard).
			OnProperty("Title").
			WithMessage("expected hero card to have property Title matching margherita but regex test failed")
	})

	t.Run("capture groups of the text", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		menu := given.HeroCards().Menu()

		// when:
		result := assertions.ForHeroCard(&menu[0], given.AssertionOptions()...).
			TextCapturing(`price: \$.*`, `\$(\d+)\.(\d+)`)

		// then:
		then.Passes(result).Captured("9", "50")
	})

	t.Run("fail on missing subtitle", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		menu := given.HeroCards().Menu()

		// when:
		result := assertions.ForHeroCard(&menu[1], given.AssertionOptions()...).SubtitleMatching(".*")

		// then:
		then.Fails(result).WithKind(failure.KindHeroCard).OnProperty("Subtitle")
	})

	t.Run("treat nil card as card without properties", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)

		// when:
		result := assertions.ForHeroCard(nil, given.AssertionOptions()...).TitleMatching(".*")

		// then:
		then.Fails(result).WithKind(failure.KindHeroCard)
	})

	t.Run("fail on card without properties", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		card := assertions.ForHeroCard(given.HeroCards().Empty(), given.AssertionOptions()...)

		// then:
		then.Fails(card.TitleMatching(".*")).WithKind(failure.KindHeroCard).OnProperty("Title")
		then.Fails(card.SubtitleMatching("")).WithKind(failure.KindHeroCard).OnProperty("Subtitle")
		then.Fails(card.WithButtonsThat().TitleMatching(".*")).WithKind(failure.KindCardAction)
		then.Fails(card.WithImageThat().URLMatching(".*")).WithKind(failure.KindCardImage)
	})

	t.Run("match empty title with pattern accepting empty text", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		card := &cards.HeroCard{Title: to.Ptr("")}

		// when:
		result := assertions.ForHeroCard(card, given.AssertionOptions()...).TitleMatching(".*")

		// then:
		then.Passes(result)
	})

	t.Run("navigate to buttons", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		menu := given.HeroCards().Menu()

		// when:
		result := assertions.ForHeroCard(&menu[0], given.AssertionOptions()...).
			TitleMatching("margherita.*").
			WithButtonsThat().
			TitleMatching("details")

		// then:
		then.Passes(result)
	})

	t.Run("fail on button with kind of card action", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		menu := given.HeroCards().Menu()

		// when:
		result := assertions.ForHeroCard(&menu[1], given.AssertionOptions()...).
			WithButtonsThat().
			TypeMatching("openUrl")

		// then:
		then.Fails(result).
			WithKind(failure.KindCardAction).
			WithMessage("expected at least one card action to have property Type matching openUrl but regex test failed")
	})

	t.Run("navigate to tap action and images", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		menu := given.HeroCards().Menu()
		card := assertions.ForHeroCard(&menu[0], given.AssertionOptions()...)

		// when:
		tap := card.WithTapActionThat().ValueMatching("margherita")
		image := card.WithImageThat().AltMatching("margherita").WithTapActionThat().TypeMatching("openurl")

		// then:
		then.Passes(tap)
		then.Passes(image)
	})

	t.Run("fail on missing tap action", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		menu := given.HeroCards().Menu()

		// when:
		result := assertions.ForHeroCard(&menu[1], given.AssertionOptions()...).WithTapActionThat().TypeMatching(".*")

		// then:
		then.Fails(result).WithKind(failure.KindCardAction).OnProperty("Type")
	})

	t.Run("return invalid pattern error", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		menu := given.HeroCards().Menu()

		// when:
		result := assertions.ForHeroCard(&menu[0], given.AssertionOptions()...).TitleCapturing(".*", "[a-")

		// then:
		then.Fails(result).WithInvalidPattern()
	})
}

func TestHeroCardSetAssertions(t *testing.T) {
	t.Run("pass when any card matches", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		heroes := given.HeroCards().WithTitles(to.Ptr("random"), nil, to.Ptr("some text"))

		// when:
		result := assertions.ForHeroCards(heroes, given.AssertionOptions()...).TitleMatching("some text")

		// then:
		then.Passes(result)
	})

	t.Run("collect groups of every matching card", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		heroes := given.HeroCards().WithTitles(to.Ptr("random"), to.Ptr("some text"), to.Ptr("same text"))

		// when:
		result := assertions.ForHeroCards(heroes, given.AssertionOptions()...).
			TitleCapturing(".*", "(s[oa]me) (text)")

		// then:
		then.Passes(result).Captured("some", "text", "same", "text")
	})

	t.Run("fail when no card matches", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		heroes := given.HeroCards().WithTitles(to.Ptr("random"), nil)

		// when:
		result := assertions.ForHeroCards(heroes, given.AssertionOptions()...).TitleMatching("some text")

		// then:
		then.Fails(result).
			WithKind(failure.KindHeroCard).
			WithMessage("expected at least one hero card to have property Title matching some text but regex test failed")
	})

	t.Run("fail on empty set", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)

		// when:
		result := assertions.ForHeroCards(nil, given.AssertionOptions()...).TextMatching(".*")

		// then:
		then.Fails(result).WithKind(failure.KindHeroCard).OnProperty("Text")
	})

	t.Run("return invalid pattern error for empty set", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)

		// when:
		result := assertions.ForHeroCards(nil, given.AssertionOptions()...).TextMatching(")(")

		// then:
		then.Fails(result).WithInvalidPattern()
	})

	t.Run("navigate to buttons of all cards", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		menu := given.HeroCards().Menu()

		// when:
		result := assertions.ForHeroCards(menu, given.AssertionOptions()...).
			WithButtonsThat().
			ValueCapturing("order .*", "order (.*)")

		// then:
		then.Passes(result).Captured("margherita", "pepperoni")
	})

	t.Run("navigate to tap actions of all cards", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		menu := given.HeroCards().Menu()

		// when:
		result := assertions.ForHeroCards(menu, given.AssertionOptions()...).WithTapActionThat().ValueMatching("margherita")

		// then:
		then.Passes(result)
	})

	t.Run("navigate to images of all cards", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		menu := given.HeroCards().Menu()

		// when:
		result := assertions.ForHeroCards(menu, given.AssertionOptions()...).
			WithImageThat().
			URLCapturing(`https://.*\.png`, `img/(\w+)\.png`)

		// then:
		then.Passes(result).Captured("margherita")
	})
}
