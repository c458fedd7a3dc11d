package assertions

import (
	"github.com/botspec/go-botspec/pkg/cards"
	"github.com/botspec/go-botspec/pkg/failure"
)

func heroTitle(c *cards.HeroCard) *string    { return c.Title }
func heroSubtitle(c *cards.HeroCard) *string { return c.Subtitle }
func heroText(c *cards.HeroCard) *string     { return c.Text }

// HeroCardAssertions checks a single hero card.
type HeroCardAssertions struct {
	chain
	card *cards.HeroCard
}

// ForHeroCard starts assertions on card. A nil card has no properties and fails every assertion.
func ForHeroCard(card *cards.HeroCard, opts ...Option) HeroCardAssertions {
	return HeroCardAssertions{chain: newChain(opts), card: card}
}

func (a HeroCardAssertions) TitleMatching(regex string) HeroCardAssertions {
	a.chain = a.check(failure.KindHeroCard, "Title", field(a.card, heroTitle), regex)
	return a
}

func (a HeroCardAssertions) TitleCapturing(regex, groupRegex string) HeroCardAssertions {
	a.chain = a.capture(failure.KindHeroCard, "Title", field(a.card, heroTitle), regex, groupRegex)
	return a
}

func (a HeroCardAssertions) SubtitleMatching(regex string) HeroCardAssertions {
	a.chain = a.check(failure.KindHeroCard, "Subtitle", field(a.card, heroSubtitle), regex)
	return a
}

func (a HeroCardAssertions) SubtitleCapturing(regex, groupRegex string) HeroCardAssertions {
	a.chain = a.capture(failure.KindHeroCard, "Subtitle", field(a.card, heroSubtitle), regex, groupRegex)
	return a
}

func (a HeroCardAssertions) TextMatching(regex string) HeroCardAssertions {
	a.chain = a.check(failure.KindHeroCard, "Text", field(a.card, heroText), regex)
	return a
}

func (a HeroCardAssertions) TextCapturing(regex, groupRegex string) HeroCardAssertions {
	a.chain = a.capture(failure.KindHeroCard, "Text", field(a.card, heroText), regex, groupRegex)
	return a
}

// WithButtonsThat moves on to the buttons of the card.
func (a HeroCardAssertions) WithButtonsThat() CardActionSetAssertions {
	var buttons []*cards.CardAction
	if a.card != nil {
		buttons = pointers(a.card.Buttons)
	}
	return CardActionSetAssertions{chain: a.chain, actions: buttons}
}

// WithTapActionThat moves on to the action triggered by tapping the card.
func (a HeroCardAssertions) WithTapActionThat() CardActionAssertions {
	var tap *cards.CardAction
	if a.card != nil {
		tap = a.card.Tap
	}
	return CardActionAssertions{chain: a.chain, action: tap}
}

// WithImageThat moves on to the images of the card.
func (a HeroCardAssertions) WithImageThat() CardImageSetAssertions {
	var images []*cards.CardImage
	if a.card != nil {
		images = pointers(a.card.Images)
	}
	return CardImageSetAssertions{chain: a.chain, images: images}
}

// HeroCardSetAssertions checks that at least one hero card of a reply has a matching property.
// Captured groups are collected from every card whose property matched.
type HeroCardSetAssertions struct {
	chain
	set []*cards.HeroCard
}

// ForHeroCards starts assertions on the hero cards of a reply.
func ForHeroCards(set []cards.HeroCard, opts ...Option) HeroCardSetAssertions {
	return HeroCardSetAssertions{chain: newChain(opts), set: pointers(set)}
}

func (a HeroCardSetAssertions) TitleMatching(regex string) HeroCardSetAssertions {
	a.chain = a.checkAny(failure.KindHeroCard, "Title", fields(a.set, heroTitle), regex)
	return a
}

func (a HeroCardSetAssertions) TitleCapturing(regex, groupRegex string) HeroCardSetAssertions {
	a.chain = a.captureAny(failure.KindHeroCard, "Title", fields(a.set, heroTitle), regex, groupRegex)
	return a
}

func (a HeroCardSetAssertions) SubtitleMatching(regex string) HeroCardSetAssertions {
	a.chain = a.checkAny(failure.KindHeroCard, "Subtitle", fields(a.set, heroSubtitle), regex)
	return a
}

func (a HeroCardSetAssertions) SubtitleCapturing(regex, groupRegex string) HeroCardSetAssertions {
	a.chain = a.captureAny(failure.KindHeroCard, "Subtitle", fields(a.set, heroSubtitle), regex, groupRegex)
	return a
}

func (a HeroCardSetAssertions) TextMatching(regex string) HeroCardSetAssertions {
	a.chain = a.checkAny(failure.KindHeroCard, "Text", fields(a.set, heroText), regex)
	return a
}

func (a HeroCardSetAssertions) TextCapturing(regex, groupRegex string) HeroCardSetAssertions {
	a.chain = a.captureAny(failure.KindHeroCard, "Text", fields(a.set, heroText), regex, groupRegex)
	return a
}

// WithButtonsThat moves on to the buttons of all cards in the set.
func (a HeroCardSetAssertions) WithButtonsThat() CardActionSetAssertions {
	var buttons []*cards.CardAction
	for _, card := range a.set {
		buttons = append(buttons, pointers(card.Buttons)...)
	}
	return CardActionSetAssertions{chain: a.chain, actions: buttons}
}

// WithTapActionThat moves on to the tap actions of all cards in the set.
func (a HeroCardSetAssertions) WithTapActionThat() CardActionSetAssertions {
	taps := make([]*cards.CardAction, 0, len(a.set))
	for _, card := range a.set {
		taps = append(taps, card.Tap)
	}
	return CardActionSetAssertions{chain: a.chain, actions: taps}
}

// WithImageThat moves on to the images of all cards in the set.
func (a HeroCardSetAssertions) WithImageThat() CardImageSetAssertions {
	var images []*cards.CardImage
	for _, card := range a.set {
		images = append(images, pointers(card.Images)...)
	}
	return CardImageSetAssertions{chain: a.chain, images: images}
}
