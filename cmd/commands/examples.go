package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/showcase/internal/cli"
	"github.com/pluqqy/showcase/pkg/examples"
	"github.com/pluqqy/showcase/pkg/files"
)

func NewExamplesCommand() *cobra.Command {
	var listOnly bool
	var force bool

	cmd := &cobra.Command{
		Use:   "examples [name] [document.json]",
		Short: "Write a sample showcase document",
		Long: `Write one of the built-in sample documents. The samples use the card types
of the default catalog, so run them against it or a catalog that extends it.`,
		Example: `  # List samples
  showcase examples --list

  # Write the portfolio sample to showcase.json
  showcase examples portfolio

  # Write a sample elsewhere, replacing an existing file
  showcase examples photographer photos.json --force`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if listOnly {
				listExamples(cmd)
				return nil
			}

			name := "portfolio"
			if len(args) > 0 {
				name = args[0]
			}
			set, ok := examples.Get(name)
			if !ok {
				return fmt.Errorf("invalid example '%s'. Valid examples: %s",
					name, strings.Join(examples.Names(), ", "))
			}

			ctx, err := cli.NewCommandContext(cmd)
			if err != nil {
				return err
			}
			return installExample(ctx, set, ctx.DocumentPath(args[min(len(args), 1):]), force)
		},
	}

	cmd.Flags().BoolVarP(&listOnly, "list", "l", false, "List available examples without writing")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing document")

	return cmd
}

func listExamples(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Available examples:\n\n")
	for _, name := range examples.Names() {
		set, _ := examples.Get(name)
		fmt.Fprintf(out, "  %s\n", set.Name)
		fmt.Fprintf(out, "    %s (%d cards)\n", set.Description, len(set.Cards)+1)
	}
}

func installExample(ctx *cli.CommandContext, set examples.ExampleSet, path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%w: %s (use --force to overwrite)", files.ErrFileExists, path)
	}

	catalog, err := ctx.Catalog()
	if err != nil {
		return err
	}
	doc, err := set.Document(catalog)
	if err != nil {
		return fmt.Errorf("example %s does not match the catalog: %w", set.Name, err)
	}

	if err := files.SaveDocument(path, doc, catalog); err != nil {
		return err
	}
	cli.PrintSuccess("Wrote %s example (%d cards) to %s", set.Name, doc.Len(), path)
	return nil
}
