package assertions

import (
	"github.com/botspec/go-botspec/pkg/cards"
	"github.com/botspec/go-botspec/pkg/failure"
)

func itemTitle(i *cards.ReceiptItem) *string    { return i.Title }
func itemSubtitle(i *cards.ReceiptItem) *string { return i.Subtitle }
func itemText(i *cards.ReceiptItem) *string     { return i.Text }
func itemPrice(i *cards.ReceiptItem) *string    { return i.Price }
func itemQuantity(i *cards.ReceiptItem) *string { return i.Quantity }

// ReceiptItemSetAssertions checks that at least one line of a receipt has a matching property.
type ReceiptItemSetAssertions struct {
	chain
	items []*cards.ReceiptItem
}

// ForReceiptItems starts assertions on a set of receipt items.
func ForReceiptItems(items []cards.ReceiptItem, opts ...Option) ReceiptItemSetAssertions {
	return ReceiptItemSetAssertions{chain: newChain(opts), items: pointers(items)}
}

func (a ReceiptItemSetAssertions) TitleMatching(regex string) ReceiptItemSetAssertions {
	a.chain = a.checkAny(failure.KindReceiptItem, "Title", fields(a.items, itemTitle), regex)
	return a
}

func (a ReceiptItemSetAssertions) TitleCapturing(regex, groupRegex string) ReceiptItemSetAssertions {
	a.chain = a.captureAny(failure.KindReceiptItem, "Title", fields(a.items, itemTitle), regex, groupRegex)
	return a
}

func (a ReceiptItemSetAssertions) SubtitleMatching(regex string) ReceiptItemSetAssertions {
	a.chain = a.checkAny(failure.KindReceiptItem, "Subtitle", fields(a.items, itemSubtitle), regex)
	return a
}

func (a ReceiptItemSetAssertions) SubtitleCapturing(regex, groupRegex string) ReceiptItemSetAssertions {
	a.chain = a.captureAny(failure.KindReceiptItem, "Subtitle", fields(a.items, itemSubtitle), regex, groupRegex)
	return a
}

func (a ReceiptItemSetAssertions) TextMatching(regex string) ReceiptItemSetAssertions {
	a.chain = a.checkAny(failure.KindReceiptItem, "Text", fields(a.items, itemText), regex)
	return a
}

func (a ReceiptItemSetAssertions) TextCapturing(regex, groupRegex string) ReceiptItemSetAssertions {
	a.chain = a.captureAny(failure.KindReceiptItem, "Text", fields(a.items, itemText), regex, groupRegex)
	return a
}

func (a ReceiptItemSetAssertions) PriceMatching(regex string) ReceiptItemSetAssertions {
	a.chain = a.checkAny(failure.KindReceiptItem, "Price", fields(a.items, itemPrice), regex)
	return a
}

func (a ReceiptItemSetAssertions) PriceCapturing(regex, groupRegex string) ReceiptItemSetAssertions {
	a.chain = a.captureAny(failure.KindReceiptItem, "Price", fields(a.items, itemPrice), regex, groupRegex)
	return a
}

func (a ReceiptItemSetAssertions) QuantityMatching(regex string) ReceiptItemSetAssertions {
	a.chain = a.checkAny(failure.KindReceiptItem, "Quantity", fields(a.items, itemQuantity), regex)
	return a
}

func (a ReceiptItemSetAssertions) QuantityCapturing(regex, groupRegex string) ReceiptItemSetAssertions {
	a.chain = a.captureAny(failure.KindReceiptItem, "Quantity", fields(a.items, itemQuantity), regex, groupRegex)
	return a
}

// WithImageThat moves on to the images of every item in the set.
func (a ReceiptItemSetAssertions) WithImageThat() CardImageSetAssertions {
	images := make([]*cards.CardImage, 0, len(a.items))
	for _, item := range a.items {
		images = append(images, item.Image)
	}
	return CardImageSetAssertions{chain: a.chain, images: images}
}

// WithTapActionThat moves on to the tap actions of every item in the set.
func (a ReceiptItemSetAssertions) WithTapActionThat() CardActionSetAssertions {
	taps := make([]*cards.CardAction, 0, len(a.items))
	for _, item := range a.items {
		taps = append(taps, item.Tap)
	}
	return CardActionSetAssertions{chain: a.chain, actions: taps}
}
