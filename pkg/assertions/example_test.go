package assertions_test

import (
	"fmt"

	"github.com/botspec/go-botspec/pkg/assertions"
	"github.com/botspec/go-botspec/pkg/cards"
)

func ExampleForHeroCards() {
	reply := []cards.HeroCard{
		{Title: cards.String("Margherita 12 inch")},
		{Title: cards.String("Pepperoni 16 inch")},
	}

	result := assertions.ForHeroCards(reply, assertions.WithoutLogging()).
		TitleCapturing(".* inch", `(\d+) inch`)

	fmt.Println(result.Err(), result.Groups())
	// Output: <nil> [12 16]
}

func ExampleForReceiptCard() {
	receipt := &cards.ReceiptCard{Total: cards.String("$10.00")}

	result := assertions.ForReceiptCard(receipt, assertions.WithoutLogging()).
		TotalMatching(`\$20\.00`).
		WithFactThat().
		KeyMatching("order number")

	fmt.Println(result.Err())
	// Output: expected receipt card to have property Total matching \$20\.00 but regex test failed
}
