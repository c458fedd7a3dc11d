package assertions

import (
	"github.com/botspec/go-botspec/pkg/cards"
	"github.com/botspec/go-botspec/pkg/failure"
)

func thumbnailTitle(c *cards.ThumbnailCard) *string    { return c.Title }
func thumbnailSubtitle(c *cards.ThumbnailCard) *string { return c.Subtitle }
func thumbnailText(c *cards.ThumbnailCard) *string     { return c.Text }

// ThumbnailCardAssertions checks a single thumbnail card.
type ThumbnailCardAssertions struct {
	chain
	card *cards.ThumbnailCard
}

// ForThumbnailCard starts assertions on card. A nil card has no properties and fails every assertion.
func ForThumbnailCard(card *cards.ThumbnailCard, opts ...Option) ThumbnailCardAssertions {
	return ThumbnailCardAssertions{chain: newChain(opts), card: card}
}

func (a ThumbnailCardAssertions) TitleMatching(regex string) ThumbnailCardAssertions {
	a.chain = a.check(failure.KindThumbnailCard, "Title", field(a.card, thumbnailTitle), regex)
	return a
}

func (a ThumbnailCardAssertions) TitleCapturing(regex, groupRegex string) ThumbnailCardAssertions {
	a.chain = a.capture(failure.KindThumbnailCard, "Title", field(a.card, thumbnailTitle), regex, groupRegex)
	return a
}

func (a ThumbnailCardAssertions) SubtitleMatching(regex string) ThumbnailCardAssertions {
	a.chain = a.check(failure.KindThumbnailCard, "Subtitle", field(a.card, thumbnailSubtitle), regex)
	return a
}

func (a ThumbnailCardAssertions) SubtitleCapturing(regex, groupRegex string) ThumbnailCardAssertions {
	a.chain = a.capture(failure.KindThumbnailCard, "Subtitle", field(a.card, thumbnailSubtitle), regex, groupRegex)
	return a
}

func (a ThumbnailCardAssertions) TextMatching(regex string) ThumbnailCardAssertions {
	a.chain = a.check(failure.KindThumbnailCard, "Text", field(a.card, thumbnailText), regex)
	return a
}

func (a ThumbnailCardAssertions) TextCapturing(regex, groupRegex string) ThumbnailCardAssertions {
	a.chain = a.capture(failure.KindThumbnailCard, "Text", field(a.card, thumbnailText), regex, groupRegex)
	return a
}

// WithButtonsThat moves on to the buttons of the card.
func (a ThumbnailCardAssertions) WithButtonsThat() CardActionSetAssertions {
	var buttons []*cards.CardAction
	if a.card != nil {
		buttons = pointers(a.card.Buttons)
	}
	return CardActionSetAssertions{chain: a.chain, actions: buttons}
}

// WithTapActionThat moves on to the action triggered by tapping the card.
func (a ThumbnailCardAssertions) WithTapActionThat() CardActionAssertions {
	var tap *cards.CardAction
	if a.card != nil {
		tap = a.card.Tap
	}
	return CardActionAssertions{chain: a.chain, action: tap}
}

// WithImageThat moves on to the images of the card.
func (a ThumbnailCardAssertions) WithImageThat() CardImageSetAssertions {
	var images []*cards.CardImage
	if a.card != nil {
		images = pointers(a.card.Images)
	}
	return CardImageSetAssertions{chain: a.chain, images: images}
}

// ThumbnailCardSetAssertions checks that at least one thumbnail card of a reply has a matching property.
type ThumbnailCardSetAssertions struct {
	chain
	set []*cards.ThumbnailCard
}

// ForThumbnailCards starts assertions on the thumbnail cards of a reply.
func ForThumbnailCards(set []cards.ThumbnailCard, opts ...Option) ThumbnailCardSetAssertions {
	return ThumbnailCardSetAssertions{chain: newChain(opts), set: pointers(set)}
}

func (a ThumbnailCardSetAssertions) TitleMatching(regex string) ThumbnailCardSetAssertions {
	a.chain = a.checkAny(failure.KindThumbnailCard, "Title", fields(a.set, thumbnailTitle), regex)
	return a
}

func (a ThumbnailCardSetAssertions) TitleCapturing(regex, groupRegex string) ThumbnailCardSetAssertions {
	a.chain = a.captureAny(failure.KindThumbnailCard, "Title", fields(a.set, thumbnailTitle), regex, groupRegex)
	return a
}

func (a ThumbnailCardSetAssertions) SubtitleMatching(regex string) ThumbnailCardSetAssertions {
	a.chain = a.checkAny(failure.KindThumbnailCard, "Subtitle", fields(a.set, thumbnailSubtitle), regex)
	return a
}

func (a ThumbnailCardSetAssertions) SubtitleCapturing(regex, groupRegex string) ThumbnailCardSetAssertions {
	a.chain = a.captureAny(failure.KindThumbnailCard, "Subtitle", fields(a.set, thumbnailSubtitle), regex, groupRegex)
	return a
}

func (a ThumbnailCardSetAssertions) TextMatching(regex string) ThumbnailCardSetAssertions {
	a.chain = a.checkAny(failure.KindThumbnailCard, "Text", fields(a.set, thumbnailText), regex)
	return a
}

func (a ThumbnailCardSetAssertions) TextCapturing(regex, groupRegex string) ThumbnailCardSetAssertions {
	a.chain = a.captureAny(failure.KindThumbnailCard, "Text", fields(a.set, thumbnailText), regex, groupRegex)
	return a
}

// WithButtonsThat moves on to the buttons of all cards in the set.
func (a ThumbnailCardSetAssertions) WithButtonsThat() CardActionSetAssertions {
	var buttons []*cards.CardAction
	for _, card := range a.set {
		buttons = append(buttons, pointers(card.Buttons)...)
	}
	return CardActionSetAssertions{chain: a.chain, actions: buttons}
}

// WithTapActionThat moves on to the tap actions of all cards in the set.
func (a ThumbnailCardSetAssertions) WithTapActionThat() CardActionSetAssertions {
	taps := make([]*cards.CardAction, 0, len(a.set))
	for _, card := range a.set {
		taps = append(taps, card.Tap)
	}
	return CardActionSetAssertions{chain: a.chain, actions: taps}
}

// WithImageThat moves on to the images of all cards in the set.
func (a ThumbnailCardSetAssertions) WithImageThat() CardImageSetAssertions {
	var images []*cards.CardImage
	for _, card := range a.set {
		images = append(images, pointers(card.Images)...)
	}
	return CardImageSetAssertions{chain: a.chain, images: images}
}
