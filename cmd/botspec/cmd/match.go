package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/botspec/go-botspec/pkg/assertions"
	"github.com/botspec/go-botspec/pkg/cards"
	"github.com/botspec/go-botspec/pkg/match"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var errNoMatch = errors.New("cards do not match")

type matchRequest struct {
	cardType cards.Type
	property string
	pattern  string
	groups   *string
	index    *int
}

func newMatchCmd(root *rootOptions) *cobra.Command {
	var (
		cardType string
		req      matchRequest
		groups   string
		index    int
	)

	cmd := &cobra.Command{
		Use:   "match [file]",
		Short: "Check that a card property matches a regular expression",
		Long: `Match checks that at least one card of the given type has a property matching the pattern,
or that the card at --index does. The whole property text must match; case is ignored.

With --groups, texts captured by the groups of that second pattern are printed,
collected from every card whose property matched.

Examples:
  botspec match reply.toml --type hero --property title --pattern "seattle.*"
  botspec match reply.yaml --type receipt --property total --pattern '\$.*' --groups '(\d+)\.(\d+)'
  botspec match reply.json --type hero --index 1 --property text --pattern ""`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := cards.ParseType(cardType)
			if err != nil {
				return err
			}
			req.cardType = t
			if cmd.Flags().Changed("groups") {
				req.groups = &groups
			}
			if cmd.Flags().Changed("index") {
				req.index = &index
			}

			deck, err := root.loadDeck(args[0])
			if err != nil {
				return err
			}

			result, err := evaluate(deck, req, assertions.WithLogger(root.logger))
			if err != nil {
				return err
			}

			return report(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVarP(&cardType, "type", "t", string(cards.TypeHero), "card type: hero, thumbnail, receipt or signin")
	cmd.Flags().StringVarP(&req.property, "property", "p", "title", "card property to check")
	cmd.Flags().StringVar(&req.pattern, "pattern", "", "regular expression the whole property must match")
	cmd.Flags().StringVarP(&groups, "groups", "g", "", "regular expression whose groups are captured from matching properties")
	cmd.Flags().IntVarP(&index, "index", "i", 0, "check only the card at this position")
	_ = cmd.MarkFlagRequired("pattern")

	return cmd
}

func report(w io.Writer, result outcome) error {
	err := result.Err()
	switch {
	case err == nil:
		_, _ = color.New(color.FgGreen, color.Bold).Fprint(w, "PASS")
		_, _ = fmt.Fprintln(w)
	case errors.Is(err, match.ErrInvalidPattern):
		return err
	default:
		_, _ = color.New(color.FgRed, color.Bold).Fprint(w, "FAIL")
		_, _ = fmt.Fprintf(w, " %s\n", err)
		return fmt.Errorf("%w: %w", errNoMatch, err)
	}

	if groups := result.Groups(); len(groups) > 0 {
		_, _ = fmt.Fprintln(w, color.CyanString("groups:"), strings.Join(quote(groups), " "))
	}
	return nil
}

func quote(texts []string) []string {
	quoted := make([]string, 0, len(texts))
	for _, text := range texts {
		quoted = append(quoted, fmt.Sprintf("%q", text))
	}
	return quoted
}
