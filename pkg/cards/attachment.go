package cards

import (
	"encoding/json"
	"fmt"
)

// Attachment is a message attachment as sent by a bot.
type Attachment struct {
	ContentType string          `json:"contentType"`
	Content     json.RawMessage `json:"content,omitempty"`
	Name        string          `json:"name,omitempty"`
}

// DecodeAttachments sorts card attachments into a deck, keeping their order within each type.
// Attachments that are not cards are skipped; their number is returned alongside the deck.
func DecodeAttachments(attachments []Attachment) (*Deck, int, error) {
	deck := &Deck{}
	skipped := 0

	for i, attachment := range attachments {
		var err error
		switch attachment.ContentType {
		case HeroCardContentType:
			deck.Hero, err = appendDecoded(deck.Hero, attachment.Content)
		case ThumbnailCardContentType:
			deck.Thumbnail, err = appendDecoded(deck.Thumbnail, attachment.Content)
		case ReceiptCardContentType:
			deck.Receipt, err = appendDecoded(deck.Receipt, attachment.Content)
		case SigninCardContentType:
			deck.Signin, err = appendDecoded(deck.Signin, attachment.Content)
		default:
			skipped++
		}
		if err != nil {
			return nil, skipped, fmt.Errorf("error decoding attachment %d (%s): %w", i, attachment.ContentType, err)
		}
	}

	return deck, skipped, nil
}

func appendDecoded[T any](cards []T, content json.RawMessage) ([]T, error) {
	var card T
	if len(content) > 0 {
		if err := json.Unmarshal(content, &card); err != nil {
			return cards, err
		}
	}
	return append(cards, card), nil
}
