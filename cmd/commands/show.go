package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pluqqy/showcase/internal/cli"
	"github.com/pluqqy/showcase/pkg/models"
)

// ShowResult is a single card with its content as a JSON value.
type ShowResult struct {
	Index   int             `json:"index" yaml:"index"`
	Type    string          `json:"type" yaml:"type"`
	Shape   string          `json:"shape" yaml:"shape"`
	Content json.RawMessage `json:"content" yaml:"-"`
	Text    string          `json:"-" yaml:"content"`
}

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <index> [document.json]",
		Short: "Display the content of one card",
		Long: `Display the content of the card at index. Card 0 is the profile.

Examples:
  # Show the profile
  showcase show 0

  # Show card 3 of another document as JSON
  showcase show 3 photos.json -o json`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runShow,
	}
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext(cmd)
	if err != nil {
		return err
	}
	doc, _, err := ctx.LoadDocument(ctx.DocumentPath(args[1:]))
	if err != nil {
		return err
	}

	index, card, err := cardAt(doc, args[0])
	if err != nil {
		return err
	}

	format := outputFormat(cmd)
	if format == string(cli.FormatText) {
		fmt.Fprintf(cmd.OutOrStdout(), "# %d %s (%s)\n%s\n", index, card.Title, card.Shape, card.Content())
		return nil
	}
	return cli.OutputResults(cmd.OutOrStdout(), format, ShowResult{
		Index:   index,
		Type:    card.Title,
		Shape:   card.Shape,
		Content: json.RawMessage(card.Content()),
		Text:    card.Content(),
	})
}

// cardAt resolves a card index argument.
func cardAt(doc *models.Document, arg string) (int, models.Card, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return 0, models.Card{}, fmt.Errorf("invalid card index %q", arg)
	}
	card, ok := doc.Card(index)
	if !ok {
		return 0, models.Card{}, fmt.Errorf("%w: card %d of %d", models.ErrIndexOutOfRange, index, doc.Len())
	}
	return index, card, nil
}
