package cards

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnsupportedFormat is returned for card files that are neither JSON, TOML nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported card file format")

	// ErrUnknownCardType is returned when a card type name is not recognised.
	ErrUnknownCardType = errors.New("unknown card type")

	// ErrTrailingContent is returned for JSON card files holding more than one document.
	ErrTrailingContent = errors.New("unexpected content after card document")

	// ErrIndexOutOfRange is returned when a deck has no card at the requested position.
	ErrIndexOutOfRange = errors.New("card index out of range")
)

// Type names a kind of card.
type Type string

// Supported card types.
const (
	TypeHero      Type = "hero"
	TypeThumbnail Type = "thumbnail"
	TypeReceipt   Type = "receipt"
	TypeSignin    Type = "signin"
)

// Types lists the supported card types.
var Types = []Type{TypeHero, TypeThumbnail, TypeReceipt, TypeSignin}

// ParseType parses a card type name (case-insensitive).
func ParseType(name string) (Type, error) {
	for _, t := range Types {
		if strings.EqualFold(string(t), strings.TrimSpace(name)) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q (supported: hero, thumbnail, receipt, signin)", ErrUnknownCardType, name)
}

// ContentType returns the attachment content type of cards of type t.
func (t Type) ContentType() string {
	switch t {
	case TypeHero:
		return HeroCardContentType
	case TypeThumbnail:
		return ThumbnailCardContentType
	case TypeReceipt:
		return ReceiptCardContentType
	case TypeSignin:
		return SigninCardContentType
	default:
		return ""
	}
}

// Format is the encoding of a card file.
type Format string

// Supported card file formats.
const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf picks the format of a card file from its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// Deck is a collection of cards grouped by type, in the order they were received.
type Deck struct {
	Hero      []HeroCard      `json:"hero,omitempty" toml:"hero" yaml:"hero,omitempty"`
	Thumbnail []ThumbnailCard `json:"thumbnail,omitempty" toml:"thumbnail" yaml:"thumbnail,omitempty"`
	Receipt   []ReceiptCard   `json:"receipt,omitempty" toml:"receipt" yaml:"receipt,omitempty"`
	Signin    []SigninCard    `json:"signin,omitempty" toml:"signin" yaml:"signin,omitempty"`
}

// Count returns the number of cards of type t in the deck.
func (d *Deck) Count(t Type) int {
	switch t {
	case TypeHero:
		return len(d.Hero)
	case TypeThumbnail:
		return len(d.Thumbnail)
	case TypeReceipt:
		return len(d.Receipt)
	case TypeSignin:
		return len(d.Signin)
	default:
		return 0
	}
}

// CheckIndex returns ErrIndexOutOfRange when the deck has no card of type t at index.
func (d *Deck) CheckIndex(t Type, index int) error {
	if count := d.Count(t); index < 0 || index >= count {
		return fmt.Errorf("%w: %s card #%d requested, deck has %d", ErrIndexOutOfRange, t, index, count)
	}
	return nil
}

// Load reads a deck from a JSON, TOML or YAML file.
func Load(path string) (*Deck, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening card file: %w", err)
	}
	defer func() { _ = file.Close() }()

	deck, err := Decode(file, format)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	return deck, nil
}

// Decode reads a deck encoded in the given format.
func Decode(r io.Reader, format Format) (*Deck, error) {
	var deck Deck

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		if err := dec.Decode(&deck); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("error decoding json: %w", err)
		}
		if _, err := dec.Token(); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("error decoding json: %w", ErrTrailingContent)
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&deck); err != nil {
			return nil, fmt.Errorf("error decoding toml: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&deck); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("error decoding yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return &deck, nil
}
