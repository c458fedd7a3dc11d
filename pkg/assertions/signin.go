package assertions

import (
	"github.com/botspec/go-botspec/pkg/cards"
	"github.com/botspec/go-botspec/pkg/failure"
)

func signinText(c *cards.SigninCard) *string { return c.Text }

// SigninCardAssertions checks a single sign-in card.
type SigninCardAssertions struct {
	chain
	card *cards.SigninCard
}

// ForSigninCard starts assertions on card. A nil card has no properties and fails every assertion.
func ForSigninCard(card *cards.SigninCard, opts ...Option) SigninCardAssertions {
	return SigninCardAssertions{chain: newChain(opts), card: card}
}

func (a SigninCardAssertions) TextMatching(regex string) SigninCardAssertions {
	a.chain = a.check(failure.KindSigninCard, "Text", field(a.card, signinText), regex)
	return a
}

func (a SigninCardAssertions) TextCapturing(regex, groupRegex string) SigninCardAssertions {
	a.chain = a.capture(failure.KindSigninCard, "Text", field(a.card, signinText), regex, groupRegex)
	return a
}

// WithButtonsThat moves on to the sign-in buttons.
func (a SigninCardAssertions) WithButtonsThat() CardActionSetAssertions {
	var buttons []*cards.CardAction
	if a.card != nil {
		buttons = pointers(a.card.Buttons)
	}
	return CardActionSetAssertions{chain: a.chain, actions: buttons}
}

type SigninCardSetAssertions struct {
	chain
	set []*cards.SigninCard
}

func ForSigninCards(set []cards.SigninCard, opts ...Option) SigninCardSetAssertions {
	return SigninCardSetAssertions{chain: newChain(opts), set: pointers(set)}
}

func (a SigninCardSetAssertions) TextMatching(regex string) SigninCardSetAssertions {
	a.chain = a.checkAny(failure.KindSigninCard, "Text", fields(a.set, signinText), regex)
	return a
}

func (a SigninCardSetAssertions) TextCapturing(regex, groupRegex string) SigninCardSetAssertions {
	a.chain = a.captureAny(failure.KindSigninCard, "Text", fields(a.set, signinText), regex, groupRegex)
	return a
}

func (a SigninCardSetAssertions) WithButtonsThat() CardActionSetAssertions {
	var buttons []*cards.CardAction
	for _, card := range a.set {
		buttons = append(buttons, pointers(card.Buttons)...)
	}
	return CardActionSetAssertions{chain: a.chain, actions: buttons}
}
