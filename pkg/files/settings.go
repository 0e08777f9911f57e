package files

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pluqqy/showcase/pkg/models"
)

// ReadSettings loads YAML settings from path on top of the defaults. An empty
// path returns the defaults.
func ReadSettings(path string) (*models.Settings, error) {
	settings := models.DefaultSettings()
	if path == "" {
		return settings, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML %s: %w", path, err)
	}

	return settings, nil
}

// WriteSettings saves settings as YAML.
func WriteSettings(path string, settings *models.Settings) error {
	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings to YAML: %w", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write settings %s: %w", path, err)
	}

	return nil
}
