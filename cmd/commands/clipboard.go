package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/pluqqy/showcase/internal/cli"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// NewClipboardCommand creates the clipboard command
func NewClipboardCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clipboard <index> [document.json]",
		Short: "Copy the content of one card to the clipboard",
		Long: `Copy the JSON content of the card at index to the system clipboard, the
same text the editor copies with 'y'.

Examples:
  # Copy the profile
  showcase clipboard 0

  # Copy card 2 of another document
  showcase copy 2 photos.json`,
		Args:    cobra.RangeArgs(1, 2),
		Aliases: []string{"clip", "copy"},
		RunE:    runClipboard,
	}
}

func runClipboard(cmd *cobra.Command, args []string) error {
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

	if err := writeClipboard(card.Content()); err != nil {
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}
	cli.PrintSuccess("Copied card %d (%s) to clipboard", index, card.Title)
	return nil
}
