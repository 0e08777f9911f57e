// Package commands holds the showcase subcommands.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/pluqqy/showcase/internal/cli"
)

// AddGlobalFlags registers the flags every subcommand reads.
func AddGlobalFlags(root *cobra.Command) {
	flags := root.PersistentFlags()
	flags.String("config", "", "Card catalog file (TOML or YAML)")
	flags.String("settings", "", "Settings file (YAML)")
	flags.String("theme", "", "Catalog theme name")
	flags.StringP("output", "o", "text", "Output format: text, json or yaml")
	flags.BoolP("quiet", "q", false, "Suppress informational output")
	flags.Bool("no-color", false, "Disable colored output")
	flags.BoolP("yes", "y", false, "Answer yes to confirmations")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		quiet, _ := cmd.Flags().GetBool("quiet")
		noColor, _ := cmd.Flags().GetBool("no-color")
		yes, _ := cmd.Flags().GetBool("yes")
		cli.SetGlobalFlags(quiet, noColor, yes)

		output, _ := cmd.Flags().GetString("output")
		return cli.ValidateOutputFormat(output)
	}
}

func outputFormat(cmd *cobra.Command) string {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		return string(cli.FormatText)
	}
	return format
}
