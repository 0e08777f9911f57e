package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/showcase/internal/cli"
	"github.com/pluqqy/showcase/pkg/files"
	"github.com/pluqqy/showcase/pkg/models"
	"github.com/pluqqy/showcase/pkg/schema"
)

var (
	addType  string
	addShape string
	addAfter int
)

// NewAddCommand creates the add command
func NewAddCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [document.json]",
		Short: "Add a skeleton card to a document",
		Long: `Add inserts a new card whose content maps every field of its type to an
empty string. The document is created when it does not exist yet.

Examples:
  # Append a note
  showcase add showcase.json --type Note

  # Insert a wide photo after card 2
  showcase add showcase.json --type Photo --shape 2x4 --after 2`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().StringVarP(&addType, "type", "t", "", "Card type (required)")
	cmd.Flags().StringVarP(&addShape, "shape", "s", "", "Card shape (default from catalog)")
	cmd.Flags().IntVar(&addAfter, "after", -1, "Insert after this card index (default: append)")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext(cmd)
	if err != nil {
		return err
	}
	catalog, err := ctx.Catalog()
	if err != nil {
		return err
	}

	if err := cli.ValidateCardType(catalog, addType); err != nil {
		return err
	}
	shape, err := addCardShape(catalog, addType, addShape)
	if err != nil {
		return err
	}

	path := ctx.DocumentPath(args)
	doc, err := files.LoadDocument(path, catalog)
	if errors.Is(err, os.ErrNotExist) {
		doc, err = files.NewDocument(catalog), nil
		cli.PrintInfo("Creating %s", path)
	}
	if err != nil {
		return err
	}

	lines, err := schema.Skeleton(catalog, addType)
	if err != nil {
		return err
	}

	at := doc.Len()
	if addAfter >= 0 {
		at = addAfter + 1
	}
	if err := doc.Insert(at, models.Card{Title: addType, Shape: shape, Lines: lines}); err != nil {
		return fmt.Errorf("cannot insert after card %d: %w", addAfter, err)
	}

	if err := files.SaveDocument(path, doc, catalog); err != nil {
		return err
	}

	cli.PrintSuccess("Added %s (%s) as card %d of %s", addType, shape, at, path)
	return nil
}

// addCardShape picks the shape of a new card. Full-row types ignore the
// requested shape.
func addCardShape(catalog *models.Catalog, cardType, requested string) (string, error) {
	if catalog.IsFullRow(cardType) {
		return catalog.FullRowShape, nil
	}
	if requested == "" {
		return catalog.DefaultShape, nil
	}
	if err := cli.ValidateShape(catalog, requested); err != nil {
		return "", err
	}
	return requested, nil
}
