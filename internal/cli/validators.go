package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/pluqqy/showcase/pkg/arrange"
	"github.com/pluqqy/showcase/pkg/models"
)

// ValidateFilePath validates that a file path exists and is a file
func ValidateFilePath(path string) error {
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("path does not exist: %s", path)
		}
		return fmt.Errorf("error accessing path: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("path is a directory, expected file: %s", path)
	}

	return nil
}

// ValidateOutputFormat validates the output format flag
func ValidateOutputFormat(format string) error {
	validFormats := []string{"text", "json", "yaml"}
	if slices.Contains(validFormats, format) {
		return nil
	}
	return fmt.Errorf("invalid output format: %s (must be: text, json, or yaml)", format)
}

// ValidateCardType checks that cardType is declared in the catalog.
func ValidateCardType(catalog *models.Catalog, cardType string) error {
	if catalog.TypeIndex(cardType) >= 0 {
		return nil
	}
	return fmt.Errorf("invalid card type: %s (must be one of %v)", cardType, catalog.Types)
}

// ValidateShape checks that shape is a well-formed shape code from the catalog.
func ValidateShape(catalog *models.Catalog, shape string) error {
	if _, _, err := arrange.ParseShape(shape); err != nil {
		return err
	}
	if !slices.Contains(catalog.Shapes, shape) {
		return fmt.Errorf("invalid shape: %s (must be one of %v)", shape, catalog.Shapes)
	}
	return nil
}

// ValidateGrid rejects grids without cells.
func ValidateGrid(grid arrange.Grid) error {
	if grid.Rows < 1 || grid.Cols < 1 {
		return fmt.Errorf("invalid grid %dx%d: rows and cols must be positive", grid.Rows, grid.Cols)
	}
	return nil
}
