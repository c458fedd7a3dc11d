package assertions

import (
	"github.com/botspec/go-botspec/pkg/cards"
	"github.com/botspec/go-botspec/pkg/failure"
)

func receiptTitle(c *cards.ReceiptCard) *string { return c.Title }
func receiptTotal(c *cards.ReceiptCard) *string { return c.Total }
func receiptTax(c *cards.ReceiptCard) *string   { return c.Tax }
func receiptVat(c *cards.ReceiptCard) *string   { return c.Vat }

// ReceiptCardAssertions checks a single receipt card.
type ReceiptCardAssertions struct {
	chain
	card *cards.ReceiptCard
}

// ForReceiptCard starts assertions on card. A nil card has no properties and fails every assertion.
func ForReceiptCard(card *cards.ReceiptCard, opts ...Option) ReceiptCardAssertions {
	return ReceiptCardAssertions{chain: newChain(opts), card: card}
}

func (a ReceiptCardAssertions) TitleMatching(regex string) ReceiptCardAssertions {
	a.chain = a.check(failure.KindReceiptCard, "Title", field(a.card, receiptTitle), regex)
	return a
}

func (a ReceiptCardAssertions) TitleCapturing(regex, groupRegex string) ReceiptCardAssertions {
	a.chain = a.capture(failure.KindReceiptCard, "Title", field(a.card, receiptTitle), regex, groupRegex)
	return a
}

func (a ReceiptCardAssertions) TotalMatching(regex string) ReceiptCardAssertions {
	a.chain = a.check(failure.KindReceiptCard, "Total", field(a.card, receiptTotal), regex)
	return a
}

func (a ReceiptCardAssertions) TotalCapturing(regex, groupRegex string) ReceiptCardAssertions {
	a.chain = a.capture(failure.KindReceiptCard, "Total", field(a.card, receiptTotal), regex, groupRegex)
	return a
}

func (a ReceiptCardAssertions) TaxMatching(regex string) ReceiptCardAssertions {
	a.chain = a.check(failure.KindReceiptCard, "Tax", field(a.card, receiptTax), regex)
	return a
}

func (a ReceiptCardAssertions) TaxCapturing(regex, groupRegex string) ReceiptCardAssertions {
	a.chain = a.capture(failure.KindReceiptCard, "Tax", field(a.card, receiptTax), regex, groupRegex)
	return a
}

func (a ReceiptCardAssertions) VatMatching(regex string) ReceiptCardAssertions {
	a.chain = a.check(failure.KindReceiptCard, "Vat", field(a.card, receiptVat), regex)
	return a
}

func (a ReceiptCardAssertions) VatCapturing(regex, groupRegex string) ReceiptCardAssertions {
	a.chain = a.capture(failure.KindReceiptCard, "Vat", field(a.card, receiptVat), regex, groupRegex)
	return a
}

// WithButtonsThat moves on to the buttons of the receipt.
func (a ReceiptCardAssertions) WithButtonsThat() CardActionSetAssertions {
	var buttons []*cards.CardAction
	if a.card != nil {
		buttons = pointers(a.card.Buttons)
	}
	return CardActionSetAssertions{chain: a.chain, actions: buttons}
}

// WithTapActionThat moves on to the action triggered by tapping the receipt.
func (a ReceiptCardAssertions) WithTapActionThat() CardActionAssertions {
	var tap *cards.CardAction
	if a.card != nil {
		tap = a.card.Tap
	}
	return CardActionAssertions{chain: a.chain, action: tap}
}

// WithFactThat moves on to the facts listed on the receipt.
func (a ReceiptCardAssertions) WithFactThat() FactSetAssertions {
	var facts []*cards.Fact
	if a.card != nil {
		facts = pointers(a.card.Facts)
	}
	return FactSetAssertions{chain: a.chain, facts: facts}
}

// WithReceiptItemThat moves on to the lines of the receipt.
func (a ReceiptCardAssertions) WithReceiptItemThat() ReceiptItemSetAssertions {
	var items []*cards.ReceiptItem
	if a.card != nil {
		items = pointers(a.card.Items)
	}
	return ReceiptItemSetAssertions{chain: a.chain, items: items}
}

// ReceiptCardSetAssertions checks that at least one receipt of a reply has a matching property.
type ReceiptCardSetAssertions struct {
	chain
	set []*cards.ReceiptCard
}

// ForReceiptCards starts assertions on the receipt cards of a reply.
func ForReceiptCards(set []cards.ReceiptCard, opts ...Option) ReceiptCardSetAssertions {
	return ReceiptCardSetAssertions{chain: newChain(opts), set: pointers(set)}
}

func (a ReceiptCardSetAssertions) TitleMatching(regex string) ReceiptCardSetAssertions {
	a.chain = a.checkAny(failure.KindReceiptCard, "Title", fields(a.set, receiptTitle), regex)
	return a
}

func (a ReceiptCardSetAssertions) TitleCapturing(regex, groupRegex string) ReceiptCardSetAssertions {
	a.chain = a.captureAny(failure.KindReceiptCard, "Title", fields(a.set, receiptTitle), regex, groupRegex)
	return a
}

func (a ReceiptCardSetAssertions) TotalMatching(regex string) ReceiptCardSetAssertions {
	a.chain = a.checkAny(failure.KindReceiptCard, "Total", fields(a.set, receiptTotal), regex)
	return a
}

func (a ReceiptCardSetAssertions) TotalCapturing(regex, groupRegex string) ReceiptCardSetAssertions {
	a.chain = a.captureAny(failure.KindReceiptCard, "Total", fields(a.set, receiptTotal), regex, groupRegex)
	return a
}

func (a ReceiptCardSetAssertions) TaxMatching(regex string) ReceiptCardSetAssertions {
	a.chain = a.checkAny(failure.KindReceiptCard, "Tax", fields(a.set, receiptTax), regex)
	return a
}

func (a ReceiptCardSetAssertions) TaxCapturing(regex, groupRegex string) ReceiptCardSetAssertions {
	a.chain = a.captureAny(failure.KindReceiptCard, "Tax", fields(a.set, receiptTax), regex, groupRegex)
	return a
}

func (a ReceiptCardSetAssertions) VatMatching(regex string) ReceiptCardSetAssertions {
	a.chain = a.checkAny(failure.KindReceiptCard, "Vat", fields(a.set, receiptVat), regex)
	return a
}

func (a ReceiptCardSetAssertions) VatCapturing(regex, groupRegex string) ReceiptCardSetAssertions {
	a.chain = a.captureAny(failure.KindReceiptCard, "Vat", fields(a.set, receiptVat), regex, groupRegex)
	return a
}

// WithButtonsThat moves on to the buttons of all receipts in the set.
func (a ReceiptCardSetAssertions) WithButtonsThat() CardActionSetAssertions {
	var buttons []*cards.CardAction
	for _, card := range a.set {
		buttons = append(buttons, pointers(card.Buttons)...)
	}
	return CardActionSetAssertions{chain: a.chain, actions: buttons}
}

// WithTapActionThat moves on to the tap actions of all receipts in the set.
func (a ReceiptCardSetAssertions) WithTapActionThat() CardActionSetAssertions {
	taps := make([]*cards.CardAction, 0, len(a.set))
	for _, card := range a.set {
		taps = append(taps, card.Tap)
	}
	return CardActionSetAssertions{chain: a.chain, actions: taps}
}

// WithFactThat moves on to the facts of all receipts in the set.
func (a ReceiptCardSetAssertions) WithFactThat() FactSetAssertions {
	var facts []*cards.Fact
	for _, card := range a.set {
		facts = append(facts, pointers(card.Facts)...)
	}
	return FactSetAssertions{chain: a.chain, facts: facts}
}

// WithReceiptItemThat moves on to the lines of all receipts in the set.
func (a ReceiptCardSetAssertions) WithReceiptItemThat() ReceiptItemSetAssertions {
	var items []*cards.ReceiptItem
	for _, card := range a.set {
		items = append(items, pointers(card.Items)...)
	}
	return ReceiptItemSetAssertions{chain: a.chain, items: items}
}
