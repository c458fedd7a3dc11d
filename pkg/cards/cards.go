// Package cards holds the card payloads a bot sends as message attachments.
//
// Text fields are pointers: a nil field was not sent by the bot, which is different from an empty text.
package cards

import "github.com/go-softwarelab/common/pkg/to"

// Content types of card attachments.
const (
	HeroCardContentType      = "application/vnd.microsoft.card.hero"
	ThumbnailCardContentType = "application/vnd.microsoft.card.thumbnail"
	ReceiptCardContentType   = "application/vnd.microsoft.card.receipt"
	SigninCardContentType    = "application/vnd.microsoft.card.signin"
)

// String returns a text field holding s.
func String(s string) *string {
	return to.Ptr(s)
}

// HeroCard is a card with a single, large image.
type HeroCard struct {
	Title    *string      `json:"title,omitempty" toml:"title" yaml:"title,omitempty"`
	Subtitle *string      `json:"subtitle,omitempty" toml:"subtitle" yaml:"subtitle,omitempty"`
	Text     *string      `json:"text,omitempty" toml:"text" yaml:"text,omitempty"`
	Images   []CardImage  `json:"images,omitempty" toml:"images" yaml:"images,omitempty"`
	Buttons  []CardAction `json:"buttons,omitempty" toml:"buttons" yaml:"buttons,omitempty"`
	Tap      *CardAction  `json:"tap,omitempty" toml:"tap" yaml:"tap,omitempty"`
}

// ThumbnailCard is a card with a single, small thumbnail image.
type ThumbnailCard struct {
	Title    *string      `json:"title,omitempty" toml:"title" yaml:"title,omitempty"`
	Subtitle *string      `json:"subtitle,omitempty" toml:"subtitle" yaml:"subtitle,omitempty"`
	Text     *string      `json:"text,omitempty" toml:"text" yaml:"text,omitempty"`
	Images   []CardImage  `json:"images,omitempty" toml:"images" yaml:"images,omitempty"`
	Buttons  []CardAction `json:"buttons,omitempty" toml:"buttons" yaml:"buttons,omitempty"`
	Tap      *CardAction  `json:"tap,omitempty" toml:"tap" yaml:"tap,omitempty"`
}

// ReceiptCard is a card summarising a purchase.
type ReceiptCard struct {
	Title   *string       `json:"title,omitempty" toml:"title" yaml:"title,omitempty"`
	Facts   []Fact        `json:"facts,omitempty" toml:"facts" yaml:"facts,omitempty"`
	Items   []ReceiptItem `json:"items,omitempty" toml:"items" yaml:"items,omitempty"`
	Tap     *CardAction   `json:"tap,omitempty" toml:"tap" yaml:"tap,omitempty"`
	Total   *string       `json:"total,omitempty" toml:"total" yaml:"total,omitempty"`
	Tax     *string       `json:"tax,omitempty" toml:"tax" yaml:"tax,omitempty"`
	Vat     *string       `json:"vat,omitempty" toml:"vat" yaml:"vat,omitempty"`
	Buttons []CardAction  `json:"buttons,omitempty" toml:"buttons" yaml:"buttons,omitempty"`
}

// SigninCard asks the user to sign in.
type SigninCard struct {
	Text    *string      `json:"text,omitempty" toml:"text" yaml:"text,omitempty"`
	Buttons []CardAction `json:"buttons,omitempty" toml:"buttons" yaml:"buttons,omitempty"`
}

// CardImage is an image shown on a card.
type CardImage struct {
	URL *string     `json:"url,omitempty" toml:"url" yaml:"url,omitempty"`
	Alt *string     `json:"alt,omitempty" toml:"alt" yaml:"alt,omitempty"`
	Tap *CardAction `json:"tap,omitempty" toml:"tap" yaml:"tap,omitempty"`
}

// CardAction is a clickable action: a button or the tap target of a card.
type CardAction struct {
	Type  *string `json:"type,omitempty" toml:"type" yaml:"type,omitempty"`
	Title *string `json:"title,omitempty" toml:"title" yaml:"title,omitempty"`
	Image *string `json:"image,omitempty" toml:"image" yaml:"image,omitempty"`
	Value *string `json:"value,omitempty" toml:"value" yaml:"value,omitempty"`
}

// Fact is a key-value pair shown on a receipt card.
type Fact struct {
	Key   *string `json:"key,omitempty" toml:"key" yaml:"key,omitempty"`
	Value *string `json:"value,omitempty" toml:"value" yaml:"value,omitempty"`
}

// ReceiptItem is a line on a receipt card.
type ReceiptItem struct {
	Title    *string     `json:"title,omitempty" toml:"title" yaml:"title,omitempty"`
	Subtitle *string     `json:"subtitle,omitempty" toml:"subtitle" yaml:"subtitle,omitempty"`
	Text     *string     `json:"text,omitempty" toml:"text" yaml:"text,omitempty"`
	Image    *CardImage  `json:"image,omitempty" toml:"image" yaml:"image,omitempty"`
	Price    *string     `json:"price,omitempty" toml:"price" yaml:"price,omitempty"`
	Quantity *string     `json:"quantity,omitempty" toml:"quantity" yaml:"quantity,omitempty"`
	Tap      *CardAction `json:"tap,omitempty" toml:"tap" yaml:"tap,omitempty"`
}
