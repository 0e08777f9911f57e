package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/showcase/internal/cli"
	"github.com/pluqqy/showcase/pkg/arrange"
	"github.com/pluqqy/showcase/pkg/models"
)

// LayoutResult is the packed preview of a document.
type LayoutResult struct {
	Document   string              `json:"document" yaml:"document"`
	Grid       arrange.Grid        `json:"grid" yaml:"grid"`
	Placements []arrange.Placement `json:"placements" yaml:"placements"`
	Skipped    []int               `json:"skipped" yaml:"skipped"`
	Rows       []string            `json:"rows" yaml:"rows"`
}

var (
	layoutRows int
	layoutCols int
)

// NewLayoutCommand creates the layout command
func NewLayoutCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout [document.json]",
		Short: "Print the packed preview grid of a document",
		Long: `Layout packs the showcase cards of a document onto the preview grid and
prints the result. Each card is drawn with the digit or letter of its position
in the showcase; cards that do not fit are listed as skipped.

Examples:
  # Default 50x8 grid
  showcase layout showcase.json

  # A narrower grid as YAML
  showcase layout showcase.json --cols 4 -o yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: runLayout,
	}

	cmd.Flags().IntVar(&layoutRows, "rows", 0, "Grid rows (default from settings)")
	cmd.Flags().IntVar(&layoutCols, "cols", 0, "Grid columns (default from settings)")

	return cmd
}

func runLayout(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext(cmd)
	if err != nil {
		return err
	}
	if layoutRows > 0 {
		ctx.Settings.Preview.Rows = layoutRows
	}
	if layoutCols > 0 {
		ctx.Settings.Preview.Cols = layoutCols
	}
	grid := ctx.Grid()
	if err := cli.ValidateGrid(grid); err != nil {
		return err
	}

	path := ctx.DocumentPath(args)
	doc, _, err := ctx.LoadDocument(path)
	if err != nil {
		return err
	}

	result, err := layoutDocument(doc, grid)
	if err != nil {
		return err
	}
	result.Document = path

	format := outputFormat(cmd)
	if format != string(cli.FormatText) {
		return cli.OutputResults(cmd.OutOrStdout(), format, result)
	}
	printLayout(cmd, result)
	return nil
}

func layoutDocument(doc *models.Document, grid arrange.Grid) (LayoutResult, error) {
	showcase := doc.Showcase()
	items := make([]arrange.Item, len(showcase))
	for i, card := range showcase {
		items[i] = arrange.Item{Type: card.Title, Shape: card.Shape}
	}

	placements, err := arrange.Pack(grid, items)
	if err != nil {
		return LayoutResult{}, fmt.Errorf("failed to pack showcase: %w", err)
	}

	placed := make(map[int]bool, len(placements))
	for _, p := range placements {
		placed[p.Index] = true
	}
	skipped := []int{}
	for i := range items {
		if !placed[i] {
			skipped = append(skipped, i+1)
		}
	}

	return LayoutResult{
		Grid:       grid,
		Placements: placements,
		Skipped:    skipped,
		Rows:       arrange.Render(grid, placements),
	}, nil
}

func printLayout(cmd *cobra.Command, result LayoutResult) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "%s on a %dx%d grid\n\n", result.Document, result.Grid.Rows, result.Grid.Cols)
	for _, row := range result.Rows {
		fmt.Fprintln(out, "  "+row)
	}
	fmt.Fprintln(out)

	table := cli.NewTableFormatter(out)
	table.Header("Card", "Type", "Shape", "Row", "Col")
	for _, p := range result.Placements {
		table.Row(
			strconv.Itoa(p.Index+1),
			p.Type,
			fmt.Sprintf("%dx%d", p.Height, p.Width),
			strconv.Itoa(p.Row),
			strconv.Itoa(p.Col),
		)
	}
	table.Flush()

	if len(result.Skipped) > 0 {
		skipped := make([]string, len(result.Skipped))
		for i, s := range result.Skipped {
			skipped[i] = strconv.Itoa(s)
		}
		cli.PrintWarning("Cards that do not fit: %s", strings.Join(skipped, ", "))
	}
}
