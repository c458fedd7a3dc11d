package cards_test

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/botspec/go-botspec/pkg/cards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("load toml card file", func(t *testing.T) {
		// when:
		deck, err := cards.Load(filepath.Join("testdata", "deck.toml"))

		// then:
		require.NoError(t, err)
		require.Len(t, deck.Hero, 2)
		require.Len(t, deck.Receipt, 1)
		require.Len(t, deck.Signin, 1)
		assert.Empty(t, deck.Thumbnail)

		// and:
		hero := deck.Hero[0]
		assert.Equal(t, "Seattle Center Monorail", *hero.Title)
		require.Len(t, hero.Images, 1)
		assert.Equal(t, "monorail", *hero.Images[0].Alt)
		require.Len(t, hero.Buttons, 1)
		assert.Equal(t, "openUrl", *hero.Buttons[0].Type)
		assert.Nil(t, hero.Tap)

		// and: fields missing from the file stay absent
		assert.Nil(t, deck.Hero[1].Subtitle)
		assert.Nil(t, deck.Hero[1].Text)

		// and:
		receipt := deck.Receipt[0]
		assert.Equal(t, "$7.50", *receipt.Tax)
		require.Len(t, receipt.Facts, 2)
		assert.Equal(t, "Payment Method", *receipt.Facts[1].Key)
		require.Len(t, receipt.Items, 2)
		require.NotNil(t, receipt.Items[0].Image)
		assert.Equal(t, "https://example.com/traffic-manager.png", *receipt.Items[0].Image.URL)
		assert.Nil(t, receipt.Items[1].Image)
	})

	t.Run("load yaml card file", func(t *testing.T) {
		// when:
		deck, err := cards.Load(filepath.Join("testdata", "deck.yaml"))

		// then:
		require.NoError(t, err)
		require.Len(t, deck.Thumbnail, 2)
		assert.Equal(t, "BotFramework Thumbnail Card", *deck.Thumbnail[0].Title)
		assert.Equal(t, "Get Started", *deck.Thumbnail[0].Buttons[0].Title)
		assert.Nil(t, deck.Thumbnail[1].Title)
	})

	t.Run("load json card file", func(t *testing.T) {
		// when:
		deck, err := cards.Load(filepath.Join("testdata", "deck.json"))

		// then:
		require.NoError(t, err)
		require.Len(t, deck.Hero, 2)
		require.NotNil(t, deck.Hero[0].Tap)
		assert.Equal(t, "imBack", *deck.Hero[0].Tap.Type)

		// and: empty text is kept apart from absent text
		require.NotNil(t, deck.Hero[1].Text)
		assert.Empty(t, *deck.Hero[1].Text)
		assert.Nil(t, deck.Hero[0].Text)
	})

	t.Run("reject unsupported extension", func(t *testing.T) {
		// when:
		_, err := cards.Load(filepath.Join("testdata", "deck.xml"))

		// then:
		require.ErrorIs(t, err, cards.ErrUnsupportedFormat)
	})

	t.Run("return error for missing file", func(t *testing.T) {
		// when:
		_, err := cards.Load(filepath.Join("testdata", "missing.json"))

		// then:
		require.Error(t, err)
	})
}

func TestDecode(t *testing.T) {
	t.Run("decode empty documents", func(t *testing.T) {
		for _, format := range []cards.Format{cards.FormatJSON, cards.FormatTOML, cards.FormatYAML} {
			// when:
			deck, err := cards.Decode(strings.NewReader(""), format)

			// then:
			require.NoError(t, err, "format %s", format)
			assert.Zero(t, deck.Count(cards.TypeHero))
		}
	})

	t.Run("return error for malformed document", func(t *testing.T) {
		// when:
		_, err := cards.Decode(strings.NewReader("hero = ["), cards.FormatTOML)

		// then:
		require.Error(t, err)
	})

	t.Run("reject json with trailing content", func(t *testing.T) {
		for name, document := range map[string]string{
			"second document": `{"hero": [{"title": "a"}]} {"hero": []}`,
			"stray brace":     `{"hero": [{"title": "a"}]}}`,
			"stray text":      `{"hero": []} hero`,
		} {
			t.Run(name, func(t *testing.T) {
				// when:
				_, err := cards.Decode(strings.NewReader(document), cards.FormatJSON)

				// then:
				require.ErrorIs(t, err, cards.ErrTrailingContent)
			})
		}
	})

	t.Run("accept json followed by whitespace", func(t *testing.T) {
		// when:
		deck, err := cards.Decode(strings.NewReader("{\"hero\": [{\"title\": \"a\"}]}\n\n"), cards.FormatJSON)

		// then:
		require.NoError(t, err)
		assert.Equal(t, 1, deck.Count(cards.TypeHero))
	})

	t.Run("reject unknown format", func(t *testing.T) {
		// when:
		_, err := cards.Decode(strings.NewReader(""), cards.Format("xml"))

		// then:
		require.ErrorIs(t, err, cards.ErrUnsupportedFormat)
	})
}

func TestParseType(t *testing.T) {
	t.Run("parse names ignoring case", func(t *testing.T) {
		for input, expected := range map[string]cards.Type{
			"hero":      cards.TypeHero,
			"Thumbnail": cards.TypeThumbnail,
			" RECEIPT ": cards.TypeReceipt,
			"signin":    cards.TypeSignin,
		} {
			// when:
			parsed, err := cards.ParseType(input)

			// then:
			require.NoError(t, err)
			assert.Equal(t, expected, parsed)
		}
	})

	t.Run("reject unknown name", func(t *testing.T) {
		// when:
		_, err := cards.ParseType("animation")

		// then:
		require.ErrorIs(t, err, cards.ErrUnknownCardType)
	})
}

func TestDecodeAttachments(t *testing.T) {
	// given:
	attachments := []cards.Attachment{
		{ContentType: cards.HeroCardContentType, Content: json.RawMessage(`{"title":"first"}`)},
		{ContentType: "image/png", Name: "picture.png"},
		{ContentType: cards.ReceiptCardContentType, Content: json.RawMessage(`{"total":"$1.00"}`)},
		{ContentType: cards.HeroCardContentType, Content: json.RawMessage(`{"title":"second"}`)},
		{ContentType: cards.SigninCardContentType},
	}

	// when:
	deck, skipped, err := cards.DecodeAttachments(attachments)

	// then:
	require.NoError(t, err)
	assert.Equal(t, 1, skipped)

	// and:
	require.Len(t, deck.Hero, 2)
	assert.Equal(t, "first", *deck.Hero[0].Title)
	assert.Equal(t, "second", *deck.Hero[1].Title)
	require.Len(t, deck.Receipt, 1)
	assert.Equal(t, "$1.00", *deck.Receipt[0].Total)
	require.Len(t, deck.Signin, 1)
	assert.Nil(t, deck.Signin[0].Text)

	t.Run("return error for malformed card content", func(t *testing.T) {
		// when:
		_, _, err := cards.DecodeAttachments([]cards.Attachment{
			{ContentType: cards.HeroCardContentType, Content: json.RawMessage(`{"title":1}`)},
		})

		// then:
		require.Error(t, err)
	})
}

func TestTypeContentType(t *testing.T) {
	assert.Equal(t, cards.HeroCardContentType, cards.TypeHero.ContentType())
	assert.Equal(t, cards.ReceiptCardContentType, cards.TypeReceipt.ContentType())
	assert.Empty(t, cards.Type("animation").ContentType())
}

func TestDeckCheckIndex(t *testing.T) {
	// given:
	deck := &cards.Deck{Hero: []cards.HeroCard{{}, {}}}

	t.Run("accept index of existing card", func(t *testing.T) {
		require.NoError(t, deck.CheckIndex(cards.TypeHero, 1))
	})

	t.Run("reject index past the last card", func(t *testing.T) {
		require.ErrorIs(t, deck.CheckIndex(cards.TypeHero, 2), cards.ErrIndexOutOfRange)
	})

	t.Run("reject negative index", func(t *testing.T) {
		require.ErrorIs(t, deck.CheckIndex(cards.TypeHero, -1), cards.ErrIndexOutOfRange)
	})

	t.Run("reject index in empty type", func(t *testing.T) {
		require.ErrorIs(t, deck.CheckIndex(cards.TypeSignin, 0), cards.ErrIndexOutOfRange)
	})
}
