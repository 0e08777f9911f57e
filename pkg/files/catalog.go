package files

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/pluqqy/showcase/pkg/arrange"
	"github.com/pluqqy/showcase/pkg/models"
)

//go:embed default_metadata.toml
var defaultCatalog []byte

var (
	ErrUnknownTheme  = errors.New("unknown theme")
	ErrCatalogFormat = errors.New("unsupported catalog format")
	ErrFileExists    = errors.New("file already exists")
)

// catalogFile mirrors the on-disk catalog layout shared by TOML and YAML sources.
type catalogFile struct {
	Cards struct {
		Types        []string            `toml:"types" yaml:"types"`
		Shapes       []string            `toml:"shapes" yaml:"shapes"`
		ProfileType  string              `toml:"profile_type" yaml:"profile_type"`
		FullRowType  string              `toml:"full_row_type" yaml:"full_row_type"`
		DefaultShape string              `toml:"default_shape" yaml:"default_shape"`
		Fields       map[string][]string `toml:"Fields" yaml:"Fields"`
	} `toml:"Cards" yaml:"Cards"`
	Themes map[string][]int `toml:"Themes" yaml:"Themes"`
}

// DefaultCatalog returns the built-in catalog source in TOML.
func DefaultCatalog() []byte {
	return append([]byte(nil), defaultCatalog...)
}

// LoadCatalog reads a TOML or YAML catalog and resolves the named theme.
func LoadCatalog(path, theme string, grid arrange.Grid) (*models.Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	catalog, err := ParseCatalog(content, catalogFormat(path), theme, grid)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return catalog, nil
}

// ParseCatalog decodes catalog source in the given format ("toml" or "yaml").
func ParseCatalog(content []byte, format, theme string, grid arrange.Grid) (*models.Catalog, error) {
	var raw catalogFile

	switch format {
	case "toml":
		if _, err := toml.Decode(string(content), &raw); err != nil {
			return nil, fmt.Errorf("failed to parse catalog TOML: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal(content, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrCatalogFormat, format)
	}

	colors, ok := raw.Themes[theme]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, theme)
	}

	palette := make(map[string]string, len(raw.Cards.Types))
	for i, cardType := range raw.Cards.Types {
		if i >= len(colors) {
			break
		}
		palette[cardType] = strconv.Itoa(colors[i])
	}

	catalog := models.NewCatalog(raw.Cards.Types, raw.Cards.Shapes, raw.Cards.Fields, palette, grid)
	if raw.Cards.ProfileType != "" {
		catalog.ProfileType = raw.Cards.ProfileType
	}
	if raw.Cards.FullRowType != "" {
		catalog.FullRowType = raw.Cards.FullRowType
	}
	if raw.Cards.DefaultShape != "" {
		catalog.DefaultShape = raw.Cards.DefaultShape
	}

	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}

// WriteDefaultCatalog writes the built-in catalog to path without overwriting.
func WriteDefaultCatalog(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrFileExists, path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory for catalog: %w", err)
		}
	}

	if err := os.WriteFile(path, defaultCatalog, 0644); err != nil {
		return fmt.Errorf("failed to write catalog %s: %w", path, err)
	}
	return nil
}

func catalogFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	default:
		return "toml"
	}
}
