package cmd

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/botspec/go-botspec/pkg/assertions"
	"github.com/botspec/go-botspec/pkg/cards"
)

var errUnknownProperty = errors.New("unknown card property")

type outcome interface {
	Err() error
	Groups() []string
}

type property[A outcome] struct {
	matching  func(A, string) A
	capturing func(A, string, string) A
}

// properties maps lower-cased property names to the assertions checking them.
type properties[A outcome] map[string]property[A]

func (p properties[A]) run(a A, req matchRequest) (outcome, error) {
	prop, ok := p[strings.ToLower(strings.TrimSpace(req.property))]
	if !ok {
		return nil, fmt.Errorf("%w %q of %s card, available: %s",
			errUnknownProperty, req.property, req.cardType, strings.Join(slices.Sorted(maps.Keys(p)), ", "))
	}

	if req.groups == nil {
		return prop.matching(a, req.pattern), nil
	}
	return prop.capturing(a, req.pattern, *req.groups), nil
}

var heroCard = properties[assertions.HeroCardAssertions]{
	"title":    {assertions.HeroCardAssertions.TitleMatching, assertions.HeroCardAssertions.TitleCapturing},
	"subtitle": {assertions.HeroCardAssertions.SubtitleMatching, assertions.HeroCardAssertions.SubtitleCapturing},
	"text":     {assertions.HeroCardAssertions.TextMatching, assertions.HeroCardAssertions.TextCapturing},
}

var heroCards = properties[assertions.HeroCardSetAssertions]{
	"title":    {assertions.HeroCardSetAssertions.TitleMatching, assertions.HeroCardSetAssertions.TitleCapturing},
	"subtitle": {assertions.HeroCardSetAssertions.SubtitleMatching, assertions.HeroCardSetAssertions.SubtitleCapturing},
	"text":     {assertions.HeroCardSetAssertions.TextMatching, assertions.HeroCardSetAssertions.TextCapturing},
}

var thumbnailCard = properties[assertions.ThumbnailCardAssertions]{
	"title":    {assertions.ThumbnailCardAssertions.TitleMatching, assertions.ThumbnailCardAssertions.TitleCapturing},
	"subtitle": {assertions.ThumbnailCardAssertions.SubtitleMatching, assertions.ThumbnailCardAssertions.SubtitleCapturing},
	"text":     {assertions.ThumbnailCardAssertions.TextMatching, assertions.ThumbnailCardAssertions.TextCapturing},
}

var thumbnailCards = properties[assertions.ThumbnailCardSetAssertions]{
	"title":    {assertions.ThumbnailCardSetAssertions.TitleMatching, assertions.ThumbnailCardSetAssertions.TitleCapturing},
	"subtitle": {assertions.ThumbnailCardSetAssertions.SubtitleMatching, assertions.ThumbnailCardSetAssertions.SubtitleCapturing},
	"text":     {assertions.ThumbnailCardSetAssertions.TextMatching, assertions.ThumbnailCardSetAssertions.TextCapturing},
}

var receiptCard = properties[assertions.ReceiptCardAssertions]{
	"title": {assertions.ReceiptCardAssertions.TitleMatching, assertions.ReceiptCardAssertions.TitleCapturing},
	"total": {assertions.ReceiptCardAssertions.TotalMatching, assertions.ReceiptCardAssertions.TotalCapturing},
	"tax":   {assertions.ReceiptCardAssertions.TaxMatching, assertions.ReceiptCardAssertions.TaxCapturing},
	"vat":   {assertions.ReceiptCardAssertions.VatMatching, assertions.ReceiptCardAssertions.VatCapturing},
}

var receiptCards = properties[assertions.ReceiptCardSetAssertions]{
	"title": {assertions.ReceiptCardSetAssertions.TitleMatching, assertions.ReceiptCardSetAssertions.TitleCapturing},
	"total": {assertions.ReceiptCardSetAssertions.TotalMatching, assertions.ReceiptCardSetAssertions.TotalCapturing},
	"tax":   {assertions.ReceiptCardSetAssertions.TaxMatching, assertions.ReceiptCardSetAssertions.TaxCapturing},
	"vat":   {assertions.ReceiptCardSetAssertions.VatMatching, assertions.ReceiptCardSetAssertions.VatCapturing},
}

var signinCard = properties[assertions.SigninCardAssertions]{
	"text": {assertions.SigninCardAssertions.TextMatching, assertions.SigninCardAssertions.TextCapturing},
}

var signinCards = properties[assertions.SigninCardSetAssertions]{
	"text": {assertions.SigninCardSetAssertions.TextMatching, assertions.SigninCardSetAssertions.TextCapturing},
}

// evaluate checks one property of the cards of the requested type; of a single card when an index is given.
func evaluate(deck *cards.Deck, req matchRequest, opts ...assertions.Option) (outcome, error) {
	if req.index != nil {
		if err := deck.CheckIndex(req.cardType, *req.index); err != nil {
			return nil, err
		}
	}

	switch req.cardType {
	case cards.TypeHero:
		if req.index != nil {
			return heroCard.run(assertions.ForHeroCard(&deck.Hero[*req.index], opts...), req)
		}
		return heroCards.run(assertions.ForHeroCards(deck.Hero, opts...), req)
	case cards.TypeThumbnail:
		if req.index != nil {
			return thumbnailCard.run(assertions.ForThumbnailCard(&deck.Thumbnail[*req.index], opts...), req)
		}
		return thumbnailCards.run(assertions.ForThumbnailCards(deck.Thumbnail, opts...), req)
	case cards.TypeReceipt:
		if req.index != nil {
			return receiptCard.run(assertions.ForReceiptCard(&deck.Receipt[*req.index], opts...), req)
		}
		return receiptCards.run(assertions.ForReceiptCards(deck.Receipt, opts...), req)
	case cards.TypeSignin:
		if req.index != nil {
			return signinCard.run(assertions.ForSigninCard(&deck.Signin[*req.index], opts...), req)
		}
		return signinCards.run(assertions.ForSigninCards(deck.Signin, opts...), req)
	default:
		return nil, fmt.Errorf("%w: %q", cards.ErrUnknownCardType, req.cardType)
	}
}
