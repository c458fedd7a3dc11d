package cmd

import (
	"fmt"
	"io"

	"github.com/botspec/go-botspec/pkg/cards"
	"github.com/fatih/color"
	"github.com/go-softwarelab/common/pkg/to"
	"github.com/spf13/cobra"
)

func newInspectCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [file]",
		Short: "List the cards of a file with their text properties",
		Long: `Inspect prints every card of a file grouped by type, with the position to pass to
'botspec match --index' and the properties that can be matched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deck, err := root.loadDeck(args[0])
			if err != nil {
				return err
			}

			printDeck(cmd.OutOrStdout(), deck)
			return nil
		},
	}
}

type line struct {
	name  string
	value *string
}

func printDeck(w io.Writer, deck *cards.Deck) {
	for _, t := range cards.Types {
		count := deck.Count(t)
		if count == 0 {
			continue
		}
		_, _ = fmt.Fprintln(w, color.CyanString("%s cards (%d)", t, count))

		for i := range count {
			_, _ = fmt.Fprintln(w, color.HiWhiteString("  #%d", i))
			for _, l := range cardLines(deck, t, i) {
				_, _ = fmt.Fprintf(w, "    %-9s %s\n", l.name+":", describe(l.value))
			}
		}
	}
}

func cardLines(deck *cards.Deck, t cards.Type, i int) []line {
	switch t {
	case cards.TypeHero:
		c := deck.Hero[i]
		return richCardLines(c.Title, c.Subtitle, c.Text, len(c.Images), len(c.Buttons))
	case cards.TypeThumbnail:
		c := deck.Thumbnail[i]
		return richCardLines(c.Title, c.Subtitle, c.Text, len(c.Images), len(c.Buttons))
	case cards.TypeReceipt:
		c := deck.Receipt[i]
		return []line{
			{"title", c.Title},
			{"total", c.Total},
			{"tax", c.Tax},
			{"vat", c.Vat},
			{"facts", cards.String(fmt.Sprint(len(c.Facts)))},
			{"items", cards.String(fmt.Sprint(len(c.Items)))},
			{"buttons", cards.String(fmt.Sprint(len(c.Buttons)))},
		}
	case cards.TypeSignin:
		c := deck.Signin[i]
		return []line{
			{"text", c.Text},
			{"buttons", cards.String(fmt.Sprint(len(c.Buttons)))},
		}
	default:
		return nil
	}
}

func richCardLines(title, subtitle, text *string, images, buttons int) []line {
	return []line{
		{"title", title},
		{"subtitle", subtitle},
		{"text", text},
		{"images", cards.String(fmt.Sprint(images))},
		{"buttons", cards.String(fmt.Sprint(buttons))},
	}
}

// describe quotes a text field; absent fields are shown as a dash.
func describe(value *string) string {
	if value == nil {
		return color.HiBlackString("-")
	}
	return fmt.Sprintf("%q", to.Value(value))
}
