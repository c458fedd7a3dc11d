package assertions

import (
	"github.com/botspec/go-botspec/pkg/cards"
	"github.com/botspec/go-botspec/pkg/failure"
)

func actionType(a *cards.CardAction) *string  { return a.Type }
func actionTitle(a *cards.CardAction) *string { return a.Title }
func actionValue(a *cards.CardAction) *string { return a.Value }
func actionImage(a *cards.CardAction) *string { return a.Image }

// CardActionAssertions checks a single card action, such as the tap action of a card.
type CardActionAssertions struct {
	chain
	action *cards.CardAction
}

// ForCardAction starts assertions on action. A nil action has no properties and fails every assertion.
func ForCardAction(action *cards.CardAction, opts ...Option) CardActionAssertions {
	return CardActionAssertions{chain: newChain(opts), action: action}
}

func (a CardActionAssertions) TypeMatching(regex string) CardActionAssertions {
	a.chain = a.check(failure.KindCardAction, "Type", field(a.action, actionType), regex)
	return a
}

func (a CardActionAssertions) TypeCapturing(regex, groupRegex string) CardActionAssertions {
	a.chain = a.capture(failure.KindCardAction, "Type", field(a.action, actionType), regex, groupRegex)
	return a
}

func (a CardActionAssertions) TitleMatching(regex string) CardActionAssertions {
	a.chain = a.check(failure.KindCardAction, "Title", field(a.action, actionTitle), regex)
	return a
}

func (a CardActionAssertions) TitleCapturing(regex, groupRegex string) CardActionAssertions {
	a.chain = a.capture(failure.KindCardAction, "Title", field(a.action, actionTitle), regex, groupRegex)
	return a
}

func (a CardActionAssertions) ValueMatching(regex string) CardActionAssertions {
	a.chain = a.check(failure.KindCardAction, "Value", field(a.action, actionValue), regex)
	return a
}

func (a CardActionAssertions) ValueCapturing(regex, groupRegex string) CardActionAssertions {
	a.chain = a.capture(failure.KindCardAction, "Value", field(a.action, actionValue), regex, groupRegex)
	return a
}

func (a CardActionAssertions) ImageMatching(regex string) CardActionAssertions {
	a.chain = a.check(failure.KindCardAction, "Image", field(a.action, actionImage), regex)
	return a
}

func (a CardActionAssertions) ImageCapturing(regex, groupRegex string) CardActionAssertions {
	a.chain = a.capture(failure.KindCardAction, "Image", field(a.action, actionImage), regex, groupRegex)
	return a
}

// CardActionSetAssertions checks that at least one action of a set, such as the buttons of a card,
// has a matching property.
type CardActionSetAssertions struct {
	chain
	actions []*cards.CardAction
}

// ForCardActions starts assertions on a set of actions.
func ForCardActions(actions []cards.CardAction, opts ...Option) CardActionSetAssertions {
	return CardActionSetAssertions{chain: newChain(opts), actions: pointers(actions)}
}

func (a CardActionSetAssertions) TypeMatching(regex string) CardActionSetAssertions {
	a.chain = a.checkAny(failure.KindCardAction, "Type", fields(a.actions, actionType), regex)
	return a
}

func (a CardActionSetAssertions) TypeCapturing(regex, groupRegex string) CardActionSetAssertions {
	a.chain = a.captureAny(failure.KindCardAction, "Type", fields(a.actions, actionType), regex, groupRegex)
	return a
}

func (a CardActionSetAssertions) TitleMatching(regex string) CardActionSetAssertions {
	a.chain = a.checkAny(failure.KindCardAction, "Title", fields(a.actions, actionTitle), regex)
	return a
}

func (a CardActionSetAssertions) TitleCapturing(regex, groupRegex string) CardActionSetAssertions {
	a.chain = a.captureAny(failure.KindCardAction, "Title", fields(a.actions, actionTitle), regex, groupRegex)
	return a
}

func (a CardActionSetAssertions) ValueMatching(regex string) CardActionSetAssertions {
	a.chain = a.checkAny(failure.KindCardAction, "Value", fields(a.actions, actionValue), regex)
	return a
}

func (a CardActionSetAssertions) ValueCapturing(regex, groupRegex string) CardActionSetAssertions {
	a.chain = a.captureAny(failure.KindCardAction, "Value", fields(a.actions, actionValue), regex, groupRegex)
	return a
}

func (a CardActionSetAssertions) ImageMatching(regex string) CardActionSetAssertions {
	a.chain = a.checkAny(failure.KindCardAction, "Image", fields(a.actions, actionImage), regex)
	return a
}

func (a CardActionSetAssertions) ImageCapturing(regex, groupRegex string) CardActionSetAssertions {
	a.chain = a.captureAny(failure.KindCardAction, "Image", fields(a.actions, actionImage), regex, groupRegex)
	return a
}
