package assertions_test

import (
	"testing"

	"github.com/botspec/go-botspec/pkg/assertions"
	"github.com/botspec/go-botspec/pkg/cards"
	"github.com/botspec/go-botspec/pkg/failure"
	"github.com/botspec/go-botspec/pkg/internal/testabilities"
	"github.com/botspec/go-botspec/pkg/internal/testabilities/testcards"
)

func TestThumbnailCardAssertions(t *testing.T) {
	t.Run("pass on matching thumbnail", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		forecast := testcards.Forecast()

		// when:
		result := assertions.ForThumbnailCard(&forecast, given.AssertionOptions()...).
			TitleMatching("seattle").
			SubtitleCapturing("rain, .*", `(-?\d+)°C`)

		// then:
		then.Passes(result).Captured("12")
	})

	t.Run("fail with kind of thumbnail card", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		forecast := testcards.Forecast()

		// when:
		result := assertions.ForThumbnailCard(&forecast, given.AssertionOptions()...).TextMatching(".*")

		// then:
		then.Fails(result).
			WithKind(failure.KindThumbnailCard).
			WithMessage("expected thumbnail card to have property Text matching .* but regex test failed")
	})

	t.Run("navigate to image and tap action", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		forecast := testcards.Forecast()
		card := assertions.ForThumbnailCard(&forecast, given.AssertionOptions()...)

		// then:
		then.Passes(card.WithImageThat().AltMatching("rain"))
		then.Passes(card.WithTapActionThat().ValueMatching(".*/seattle"))
		then.Fails(card.WithButtonsThat().TitleMatching(".*")).WithKind(failure.KindCardAction)
	})

	t.Run("pass when any thumbnail of the set matches", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		set := []cards.ThumbnailCard{{}, testcards.Forecast()}

		// when:
		result := assertions.ForThumbnailCards(set, given.AssertionOptions()...).
			TitleMatching("seattle").
			WithImageThat().
			URLMatching(".*/rain.png")

		// then:
		then.Passes(result)
	})

	t.Run("fail when no thumbnail of the set matches", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		set := []cards.ThumbnailCard{{}, testcards.Forecast()}

		// when:
		result := assertions.ForThumbnailCards(set, given.AssertionOptions()...).TitleMatching("portland")

		// then:
		then.Fails(result).WithKind(failure.KindThumbnailCard).OnProperty("Title")
	})
}

func TestSigninCardAssertions(t *testing.T) {
	t.Run("pass on matching text and button", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		login := testcards.Login()

		// when:
		result := assertions.ForSigninCard(&login, given.AssertionOptions()...).
			TextMatching("please sign in.*").
			WithButtonsThat().
			TypeMatching("signin").
			ValueCapturing("https://.*", `https://([^/]+)/`)

		// then:
		then.Passes(result).Captured("login.example.com")
	})

	t.Run("fail with kind of signin card", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)

		// when:
		result := assertions.ForSigninCard(nil, given.AssertionOptions()...).TextMatching(".*")

		// then:
		then.Fails(result).WithKind(failure.KindSigninCard)
	})

	t.Run("check sign-in cards of a reply", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		set := []cards.SigninCard{testcards.Login(), {Text: cards.String("Sign in again")}}

		// when:
		text := assertions.ForSigninCards(set, given.AssertionOptions()...).TextCapturing("sign.*", "(sign in)")
		buttons := assertions.ForSigninCards(set, given.AssertionOptions()...).WithButtonsThat().TitleMatching("sign in")

		// then:
		then.Passes(text).Captured("Sign in")
		then.Passes(buttons)
	})
}

func TestComponentAssertions(t *testing.T) {
	t.Run("check a single card action", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		action := &cards.CardAction{Type: cards.String("imBack"), Title: cards.String("Order"), Image: cards.String("https://example.com/icon.png")}

		// when:
		result := assertions.ForCardAction(action, given.AssertionOptions()...).
			TypeMatching("imback").
			TitleMatching("order").
			ImageCapturing(".*", `/(\w+)\.png`)

		// then:
		then.Passes(result).Captured("icon")
	})

	t.Run("fail on missing action value", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)

		// when:
		result := assertions.ForCardAction(&cards.CardAction{}, given.AssertionOptions()...).ValueMatching(".*")

		// then:
		then.Fails(result).WithKind(failure.KindCardAction).OnProperty("Value")
	})

	t.Run("check a set of card actions", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		actions := testcards.Margherita().Buttons

		// when:
		result := assertions.ForCardActions(actions, given.AssertionOptions()...).
			TypeCapturing("(imBack|openUrl)", "(.*)").
			ImageMatching(".*")

		// then:
		then.Fails(result).WithKind(failure.KindCardAction).OnProperty("Image")
	})

	t.Run("check a single card image", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		image := &testcards.Margherita().Images[0]

		// when:
		result := assertions.ForCardImage(image, given.AssertionOptions()...).
			URLCapturing("https://.*", `https://([\w.]+)/`).
			AltMatching("margherita").
			WithTapActionThat().
			TypeMatching("openurl")

		// then:
		then.Passes(result).Captured("example.com")
	})

	t.Run("fail on nil card image", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)

		// when:
		result := assertions.ForCardImage(nil, given.AssertionOptions()...).WithTapActionThat().TypeMatching(".*")

		// then:
		then.Fails(result).WithKind(failure.KindCardAction)
	})

	t.Run("check a set of card images", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		images := []cards.CardImage{{URL: cards.String("a.png")}, {URL: cards.String("b.png"), Alt: cards.String("b")}}

		// when:
		result := assertions.ForCardImages(images, given.AssertionOptions()...).
			AltCapturing(".*", "(.*)").
			URLMatching(`\w\.png`)

		// then:
		then.Passes(result).Captured("b")
	})

	t.Run("check a set of facts", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		facts := testcards.OrderReceipt().Facts

		// when:
		result := assertions.ForFacts(facts, given.AssertionOptions()...).KeyCapturing("order .*", "order (.*)")

		// then:
		then.Passes(result).Captured("Number")
	})

	t.Run("check a set of receipt items", func(t *testing.T) {
		// given:
		given, then := testabilities.New(t)
		items := testcards.OrderReceipt().Items

		// when:
		result := assertions.ForReceiptItems(items, given.AssertionOptions()...).
			TitleCapturing("pep.*", "(pep)").
			TextMatching(".*")

		// then:
		then.Fails(result).WithKind(failure.KindReceiptItem).OnProperty("Text")
	})
}
