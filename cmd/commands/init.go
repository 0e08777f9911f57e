package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/showcase/internal/cli"
	"github.com/pluqqy/showcase/pkg/files"
)

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default card catalog",
		Long: `Write the built-in card catalog (types, shapes, fields and themes) to
metadata.toml, or to the file named by --config.

Examples:
  # Create metadata.toml in the current directory
  showcase init

  # Write the catalog somewhere else
  showcase init --config cards/metadata.toml

  # Also write the current settings to settings.yaml
  showcase init --with-settings settings.yaml`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().String("with-settings", "", "Also write the effective settings as YAML to this file")
	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext(cmd)
	if err != nil {
		return err
	}
	path := ctx.Settings.Catalog.Path

	err = files.WriteDefaultCatalog(path)
	if errors.Is(err, files.ErrFileExists) {
		ok, confirmErr := cli.Confirm(fmt.Sprintf("%s already exists. Overwrite?", path), false)
		if confirmErr != nil {
			return confirmErr
		}
		if !ok {
			cli.PrintInfo("Left %s unchanged", path)
			return nil
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove %s: %w", path, err)
		}
		err = files.WriteDefaultCatalog(path)
	}
	if err != nil {
		return err
	}

	cli.PrintSuccess("Wrote card catalog to %s", path)

	settingsPath, _ := cmd.Flags().GetString("with-settings")
	if settingsPath == "" {
		return nil
	}
	if err := files.WriteSettings(settingsPath, ctx.Settings); err != nil {
		return err
	}
	cli.PrintSuccess("Wrote settings to %s", settingsPath)
	return nil
}
