package testcards

import "github.com/botspec/go-botspec/pkg/cards"

// Margherita is a hero card with a tap action, one image and two buttons.
func Margherita() cards.HeroCard {
	return cards.HeroCard{
		Title:    cards.String("Margherita 12 inch"),
		Subtitle: cards.String("Tomato, mozzarella, basil"),
		Text:     cards.String("Price: $9.50"),
		Images: []cards.CardImage{{
			URL: cards.String("https://example.com/img/margherita.png"),
			Alt: cards.String("margherita"),
			Tap: &cards.CardAction{Type: cards.String("openUrl"), Value: cards.String("https://example.com/margherita")},
		}},
		Buttons: []cards.CardAction{
			{Type: cards.String("imBack"), Title: cards.String("Order"), Value: cards.String("order margherita")},
			{Type: cards.String("openUrl"), Title: cards.String("Details"), Value: cards.String("https://example.com/margherita")},
		},
		Tap: &cards.CardAction{Type: cards.String("imBack"), Value: cards.String("margherita")},
	}
}

// Pepperoni is a hero card without subtitle, images and tap action.
func Pepperoni() cards.HeroCard {
	return cards.HeroCard{
		Title: cards.String("Pepperoni 16 inch"),
		Text:  cards.String("Price: $12.00"),
		Buttons: []cards.CardAction{
			{Type: cards.String("imBack"), Title: cards.String("Order"), Value: cards.String("order pepperoni")},
		},
	}
}

// OrderReceipt is a receipt for one Margherita and two Pepperoni pizzas.
func OrderReceipt() cards.ReceiptCard {
	return cards.ReceiptCard{
		Title: cards.String("Order #1042"),
		Facts: []cards.Fact{
			{Key: cards.String("Order Number"), Value: cards.String("1042")},
			{Key: cards.String("Payment Method"), Value: cards.String("VISA 4111-****")},
		},
		Items: []cards.ReceiptItem{
			{
				Title:    cards.String("Margherita"),
				Price:    cards.String("$9.50"),
				Quantity: cards.String("1"),
				Image:    &cards.CardImage{URL: cards.String("https://example.com/img/margherita.png")},
			},
			{
				Title:    cards.String("Pepperoni"),
				Subtitle: cards.String("extra cheese"),
				Price:    cards.String("$24.00"),
				Quantity: cards.String("2"),
				Tap:      &cards.CardAction{Type: cards.String("openUrl"), Value: cards.String("https://example.com/pepperoni")},
			},
		},
		Total: cards.String("$33.50"),
		Tax:   cards.String("$2.68"),
		Buttons: []cards.CardAction{
			{Type: cards.String("openUrl"), Title: cards.String("Track order"), Value: cards.String("https://example.com/track/1042")},
		},
	}
}

// Login is a sign-in card with a single sign-in button.
func Login() cards.SigninCard {
	return cards.SigninCard{
		Text: cards.String("Please sign in to continue"),
		Buttons: []cards.CardAction{
			{Type: cards.String("signin"), Title: cards.String("Sign in"), Value: cards.String("https://login.example.com/oauth")},
		},
	}
}

// Forecast is a thumbnail card of a weather bot.
func Forecast() cards.ThumbnailCard {
	return cards.ThumbnailCard{
		Title:    cards.String("Seattle"),
		Subtitle: cards.String("Rain, 12°C"),
		Images:   []cards.CardImage{{URL: cards.String("https://example.com/img/rain.png"), Alt: cards.String("rain")}},
		Tap:      &cards.CardAction{Type: cards.String("openUrl"), Value: cards.String("https://example.com/forecast/seattle")},
	}
}
