package models

// Settings represents the application configuration
type Settings struct {
	Catalog  CatalogSettings  `yaml:"catalog"`
	Document DocumentSettings `yaml:"document"`
	Preview  PreviewSettings  `yaml:"preview"`
	UI       UISettings       `yaml:"ui"`
	Log      LogSettings      `yaml:"log"`
}

// CatalogSettings locates the card schema and picks its theme
type CatalogSettings struct {
	Path  string `yaml:"path"`  // TOML or YAML catalog file
	Theme string `yaml:"theme"` // named color theme inside the catalog
}

// DocumentSettings controls where documents are saved
type DocumentSettings struct {
	DefaultPath string `yaml:"default_path"` // save target when no document is given
}

// PreviewSettings controls the packing grid of the preview pane
type PreviewSettings struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// UISettings controls UI preferences
type UISettings struct {
	ShowPreview     bool `yaml:"show_preview"`
	ShowLineNumbers bool `yaml:"show_line_numbers"`
}

// LogSettings controls the debug log file
type LogSettings struct {
	File    string `yaml:"file"` // empty disables logging
	Verbose bool   `yaml:"verbose"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Catalog: CatalogSettings{
			Path:  "metadata.toml",
			Theme: "mondrian",
		},
		Document: DocumentSettings{
			DefaultPath: "showcase.json",
		},
		Preview: PreviewSettings{
			Rows: 50,
			Cols: 8,
		},
		UI: UISettings{
			ShowPreview:     true,
			ShowLineNumbers: true,
		},
		Log: LogSettings{
			File:    "",
			Verbose: false,
		},
	}
}
