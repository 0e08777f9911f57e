package commands

import (
	"fmt"
	"slices"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pluqqy/showcase/internal/cli"
	"github.com/pluqqy/showcase/pkg/arrange"
	"github.com/pluqqy/showcase/pkg/models"
	"github.com/pluqqy/showcase/pkg/schema"
)

// ValidationResult lists the problems found in a document.
type ValidationResult struct {
	Document string   `json:"document" yaml:"document"`
	Cards    int      `json:"cards" yaml:"cards"`
	Errors   []string `json:"errors" yaml:"errors"`
	Warnings []string `json:"warnings" yaml:"warnings"`
}

// Valid reports whether no errors were found.
func (r ValidationResult) Valid() bool { return len(r.Errors) == 0 }

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [document.json]",
		Short: "Check every card of a document against the catalog",
		Long: `Validate loads a showcase document and checks each card's content against
the required fields of its type. Cards with unknown shapes or that do not fit
the preview grid are reported as warnings.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext(cmd)
	if err != nil {
		return err
	}
	path := ctx.DocumentPath(args)

	doc, catalog, err := ctx.LoadDocument(path)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	result := validateDocument(doc, catalog, ctx.Grid())
	result.Document = path

	format := outputFormat(cmd)
	if format != string(cli.FormatText) {
		if err := cli.OutputResults(cmd.OutOrStdout(), format, result); err != nil {
			return err
		}
	} else {
		printValidation(cmd, result)
	}

	if !result.Valid() {
		return fmt.Errorf("validation failed")
	}
	return nil
}

func validateDocument(doc *models.Document, catalog *models.Catalog, grid arrange.Grid) ValidationResult {
	result := ValidationResult{Cards: doc.Len(), Errors: []string{}, Warnings: []string{}}

	for i, card := range doc.Cards {
		if err := schema.Validate(catalog, card.Title, card.Content()); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("card %d (%s): %v", i, card.Title, err))
		}
		if _, _, err := arrange.ParseShape(card.Shape); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("card %d (%s): %v", i, card.Title, err))
			continue
		}
		if i > 0 && !catalog.IsFullRow(card.Title) && !slices.Contains(catalog.Shapes, card.Shape) {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("card %d (%s): shape %s is not in the catalog", i, card.Title, card.Shape))
		}
	}

	if !result.Valid() {
		return result
	}

	items := make([]arrange.Item, 0, doc.Len())
	for _, card := range doc.Showcase() {
		items = append(items, arrange.Item{Type: card.Title, Shape: card.Shape})
	}
	placements, err := arrange.Pack(grid, items)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	placed := make(map[int]bool, len(placements))
	for _, p := range placements {
		placed[p.Index] = true
	}
	for i, item := range items {
		if !placed[i] {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("card %d (%s %s) does not fit the %dx%d preview grid", i+1, item.Type, item.Shape, grid.Rows, grid.Cols))
		}
	}

	return result
}

func printValidation(cmd *cobra.Command, result ValidationResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Validation Results:")
	fmt.Fprintln(out, "-------------------")

	if result.Valid() {
		fmt.Fprintf(out, "%s Document '%s' is valid (%d cards).\n",
			cli.Colorize(color.New(color.FgGreen), "✓"), result.Document, result.Cards)
	} else {
		fmt.Fprintf(out, "%s Document '%s' has %d validation errors:\n",
			cli.Colorize(color.New(color.FgRed), "✗"), result.Document, len(result.Errors))
		for i, e := range result.Errors {
			fmt.Fprintf(out, "%d. %s\n", i+1, e)
		}
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintln(out, "\n"+cli.Colorize(color.New(color.FgYellow), "Warnings:"))
		for i, w := range result.Warnings {
			fmt.Fprintf(out, "%d. %s\n", i+1, w)
		}
	}
}
