package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/botspec/go-botspec/pkg/cards"
	"github.com/botspec/go-botspec/pkg/defs"
	"github.com/go-softwarelab/common/pkg/is"
	"github.com/spf13/cobra"
)

var errBlankPath = errors.New("card file path must not be blank")

type rootOptions struct {
	logLevel    string
	logFormat   string
	attachments bool

	logger *slog.Logger
}

// NewRootCmd builds the botspec command with all its subcommands.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "botspec",
		Short: "Check the cards a chat bot replies with",
		Long: `Botspec checks hero, thumbnail, receipt and sign-in cards against regular expressions.
Cards are read from JSON, TOML or YAML files, or from a JSON array of bot message attachments.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := defs.ParseLogLevelStr(opts.logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
			format, err := defs.ParseHandlerTypeStr(opts.logFormat)
			if err != nil {
				return fmt.Errorf("invalid --log-format: %w", err)
			}

			opts.logger = defs.NewLogger(level, format, cmd.ErrOrStderr())
			return nil
		},
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", string(defs.LogLevelWarn), "log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", string(defs.TextHandler), "log format: text or json")
	root.PersistentFlags().BoolVarP(&opts.attachments, "attachments", "a", false, "read the file as a JSON array of bot message attachments")

	root.AddCommand(newMatchCmd(opts))
	root.AddCommand(newInspectCmd(opts))

	return root
}

// Execute runs the botspec command with the process arguments.
func Execute() error {
	return NewRootCmd().Execute()
}

func (o *rootOptions) loadDeck(path string) (*cards.Deck, error) {
	if is.BlankString(path) {
		return nil, errBlankPath
	}

	if !o.attachments {
		deck, err := cards.Load(path)
		if err != nil {
			return nil, err
		}
		o.logger.Debug("loaded card file", slog.String("path", path))
		return deck, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading attachments file: %w", err)
	}

	var attachments []cards.Attachment
	if err := json.Unmarshal(content, &attachments); err != nil {
		return nil, fmt.Errorf("error parsing attachments of %s: %w", path, err)
	}

	deck, skipped, err := cards.DecodeAttachments(attachments)
	if err != nil {
		return nil, err
	}
	if skipped > 0 {
		o.logger.Info("skipped attachments that are not cards", slog.String("path", path), slog.Int("skipped", skipped))
	}

	return deck, nil
}
