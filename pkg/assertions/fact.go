package assertions

import (
	"github.com/botspec/go-botspec/pkg/cards"
	"github.com/botspec/go-botspec/pkg/failure"
)

func factKey(f *cards.Fact) *string   { return f.Key }
func factValue(f *cards.Fact) *string { return f.Value }

// FactSetAssertions checks that at least one fact of a receipt has a matching property.
type FactSetAssertions struct {
	chain
	facts []*cards.Fact
}

// ForFacts starts assertions on a set of facts.
func ForFacts(facts []cards.Fact, opts ...Option) FactSetAssertions {
	return FactSetAssertions{chain: newChain(opts), facts: pointers(facts)}
}

func (a FactSetAssertions) KeyMatching(regex string) FactSetAssertions {
	a.chain = a.checkAny(failure.KindFact, "Key", fields(a.facts, factKey), regex)
	return a
}

func (a FactSetAssertions) KeyCapturing(regex, groupRegex string) FactSetAssertions {
	a.chain = a.captureAny(failure.KindFact, "Key", fields(a.facts, factKey), regex, groupRegex)
	return a
}

func (a FactSetAssertions) ValueMatching(regex string) FactSetAssertions {
	a.chain = a.checkAny(failure.KindFact, "Value", fields(a.facts, factValue), regex)
	return a
}

func (a FactSetAssertions) ValueCapturing(regex, groupRegex string) FactSetAssertions {
	a.chain = a.captureAny(failure.KindFact, "Value", fields(a.facts, factValue), regex, groupRegex)
	return a
}
