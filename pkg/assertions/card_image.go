package assertions

import (
	"github.com/botspec/go-botspec/pkg/cards"
	"github.com/botspec/go-botspec/pkg/failure"
)

func imageURL(i *cards.CardImage) *string { return i.URL }
func imageAlt(i *cards.CardImage) *string { return i.Alt }

// CardImageAssertions checks a single card image.
type CardImageAssertions struct {
	chain
	image *cards.CardImage
}

// ForCardImage starts assertions on image. A nil image fails every assertion.
func ForCardImage(image *cards.CardImage, opts ...Option) CardImageAssertions {
	return CardImageAssertions{chain: newChain(opts), image: image}
}

func (a CardImageAssertions) URLMatching(regex string) CardImageAssertions {
	a.chain = a.check(failure.KindCardImage, "URL", field(a.image, imageURL), regex)
	return a
}

func (a CardImageAssertions) URLCapturing(regex, groupRegex string) CardImageAssertions {
	a.chain = a.capture(failure.KindCardImage, "URL", field(a.image, imageURL), regex, groupRegex)
	return a
}

func (a CardImageAssertions) AltMatching(regex string) CardImageAssertions {
	a.chain = a.check(failure.KindCardImage, "Alt", field(a.image, imageAlt), regex)
	return a
}

func (a CardImageAssertions) AltCapturing(regex, groupRegex string) CardImageAssertions {
	a.chain = a.capture(failure.KindCardImage, "Alt", field(a.image, imageAlt), regex, groupRegex)
	return a
}

// WithTapActionThat moves on to the action triggered by tapping the image.
func (a CardImageAssertions) WithTapActionThat() CardActionAssertions {
	var tap *cards.CardAction
	if a.image != nil {
		tap = a.image.Tap
	}
	return CardActionAssertions{chain: a.chain, action: tap}
}

// CardImageSetAssertions checks that at least one image of a set has a matching property.
type CardImageSetAssertions struct {
	chain
	images []*cards.CardImage
}

// ForCardImages starts assertions on a set of images.
func ForCardImages(images []cards.CardImage, opts ...Option) CardImageSetAssertions {
	return CardImageSetAssertions{chain: newChain(opts), images: pointers(images)}
}

func (a CardImageSetAssertions) URLMatching(regex string) CardImageSetAssertions {
	a.chain = a.checkAny(failure.KindCardImage, "URL", fields(a.images, imageURL), regex)
	return a
}

func (a CardImageSetAssertions) URLCapturing(regex, groupRegex string) CardImageSetAssertions {
	a.chain = a.captureAny(failure.KindCardImage, "URL", fields(a.images, imageURL), regex, groupRegex)
	return a
}

func (a CardImageSetAssertions) AltMatching(regex string) CardImageSetAssertions {
	a.chain = a.checkAny(failure.KindCardImage, "Alt", fields(a.images, imageAlt), regex)
	return a
}

func (a CardImageSetAssertions) AltCapturing(regex, groupRegex string) CardImageSetAssertions {
	a.chain = a.captureAny(failure.KindCardImage, "Alt", fields(a.images, imageAlt), regex, groupRegex)
	return a
}

// WithTapActionThat moves on to the tap actions of every image in the set.
func (a CardImageSetAssertions) WithTapActionThat() CardActionSetAssertions {
	taps := make([]*cards.CardAction, 0, len(a.images))
	for _, image := range a.images {
		taps = append(taps, image.Tap)
	}
	return CardActionSetAssertions{chain: a.chain, actions: taps}
}
