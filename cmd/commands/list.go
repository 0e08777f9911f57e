package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pluqqy/showcase/internal/cli"
	"github.com/pluqqy/showcase/pkg/models"
)

// ListResult represents the output structure for list command
type ListResult struct {
	Document string     `json:"document" yaml:"document"`
	Cards    []ListItem `json:"cards" yaml:"cards"`
	Count    int        `json:"count" yaml:"count"`
}

// ListItem represents a single card in the list
type ListItem struct {
	Index   int    `json:"index" yaml:"index"`
	Type    string `json:"type" yaml:"type"`
	Shape   string `json:"shape" yaml:"shape"`
	Content string `json:"content,omitempty" yaml:"content,omitempty"`
}

var listShowContent bool

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [document.json]",
		Short: "List the cards of a document",
		Long: `List the cards of a showcase document in order. Card 0 is the profile.

Examples:
  # List cards
  showcase list showcase.json

  # Include content as JSON output
  showcase list showcase.json --content -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: runList,
	}

	cmd.Flags().BoolVar(&listShowContent, "content", false, "Include card content")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext(cmd)
	if err != nil {
		return err
	}
	path := ctx.DocumentPath(args)

	doc, _, err := ctx.LoadDocument(path)
	if err != nil {
		return fmt.Errorf("failed to list cards: %w", err)
	}

	result := listCards(doc, listShowContent)
	result.Document = path

	format := outputFormat(cmd)
	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}
	return outputListText(cmd, result)
}

func listCards(doc *models.Document, withContent bool) ListResult {
	result := ListResult{Cards: make([]ListItem, 0, doc.Len())}
	for i, card := range doc.Cards {
		item := ListItem{Index: i, Type: card.Title, Shape: card.Shape}
		if withContent {
			item.Content = card.Content()
		}
		result.Cards = append(result.Cards, item)
	}
	result.Count = len(result.Cards)
	return result
}

func outputListText(cmd *cobra.Command, result ListResult) error {
	if result.Count == 0 {
		cli.PrintInfo("No cards found")
		return nil
	}

	table := cli.NewTableFormatter(cmd.OutOrStdout())
	if listShowContent {
		table.Header("#", "Type", "Shape", "Content")
	} else {
		table.Header("#", "Type", "Shape")
	}

	for _, c := range result.Cards {
		if listShowContent {
			table.Row(strconv.Itoa(c.Index), c.Type, c.Shape, cli.TruncateString(cli.OneLine(c.Content), 50))
		} else {
			table.Row(strconv.Itoa(c.Index), c.Type, c.Shape)
		}
	}
	table.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d cards\n", result.Count)
	return nil
}
