package testabilities

import (
	"testing"

	"github.com/botspec/go-botspec/pkg/cards"
	"github.com/botspec/go-botspec/pkg/internal/testabilities/testcards"
)

type ReceiptCardsFixture interface {
	// Order returns the receipt of a pizza order.
	Order() *cards.ReceiptCard
	// WithTotals returns one receipt per total; a nil total leaves the receipt without one.
	WithTotals(totals ...*string) []cards.ReceiptCard
}

type receiptCardsFixture struct {
	testing.TB
}

func (f *receiptCardsFixture) Order() *cards.ReceiptCard {
	receipt := testcards.OrderReceipt()
	return &receipt
}

func (f *receiptCardsFixture) WithTotals(totals ...*string) []cards.ReceiptCard {
	f.Helper()
	result := make([]cards.ReceiptCard, 0, len(totals))
	for _, total := range totals {
		result = append(result, cards.ReceiptCard{Total: text(total)})
	}
	return result
}
