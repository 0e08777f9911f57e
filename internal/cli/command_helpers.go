package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/showcase/pkg/arrange"
	"github.com/pluqqy/showcase/pkg/files"
	"github.com/pluqqy/showcase/pkg/models"
)

// CommandContext gathers the settings and catalog a command runs against.
type CommandContext struct {
	Settings *models.Settings
	catalog  *models.Catalog
}

// NewCommandContext reads the settings named by the persistent --settings flag
// and applies the --config and --theme overrides.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	settingsPath, _ := cmd.Flags().GetString("settings")
	settings, err := files.ReadSettings(settingsPath)
	if err != nil {
		return nil, err
	}

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		settings.Catalog.Path = path
	}
	if theme, _ := cmd.Flags().GetString("theme"); theme != "" {
		settings.Catalog.Theme = theme
	}

	return &CommandContext{Settings: settings}, nil
}

// Grid returns the preview grid from the settings.
func (c *CommandContext) Grid() arrange.Grid {
	return arrange.Grid{Rows: c.Settings.Preview.Rows, Cols: c.Settings.Preview.Cols}
}

// Catalog loads the schema catalog once. When the default catalog file is
// missing the built-in catalog is used; a missing file named explicitly is an
// error.
func (c *CommandContext) Catalog() (*models.Catalog, error) {
	if c.catalog != nil {
		return c.catalog, nil
	}

	path := c.Settings.Catalog.Path
	var (
		catalog *models.Catalog
		err     error
	)
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) && path == models.DefaultSettings().Catalog.Path {
		catalog, err = files.ParseCatalog(files.DefaultCatalog(), "toml", c.Settings.Catalog.Theme, c.Grid())
		if err != nil {
			return nil, fmt.Errorf("built-in catalog: %w", err)
		}
	} else {
		catalog, err = files.LoadCatalog(path, c.Settings.Catalog.Theme, c.Grid())
		if err != nil {
			return nil, err
		}
	}

	c.catalog = catalog
	return catalog, nil
}

// LoadDocument reads the document at path with the context catalog.
func (c *CommandContext) LoadDocument(path string) (*models.Document, *models.Catalog, error) {
	catalog, err := c.Catalog()
	if err != nil {
		return nil, nil, err
	}
	doc, err := files.LoadDocument(path, catalog)
	if err != nil {
		return nil, nil, err
	}
	return doc, catalog, nil
}

// DocumentPath returns the first argument, or the configured default.
func (c *CommandContext) DocumentPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}
	return c.Settings.Document.DefaultPath
}
