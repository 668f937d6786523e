package internal

import (
	"log/slog"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config represents the exporter configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	Joplin JoplinConfig      `yaml:"joplin"`
	Export ExportConfig      `yaml:"export"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Joplin.Validate(); err != nil {
		return err
	}
	return c.Export.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// JoplinConfig holds connection settings for the local Data API.
type JoplinConfig struct {
	BaseURL   string `yaml:"base_url"`
	TokenFile string `yaml:"token_file"`
}

// Validate validates the Joplin configuration.
func (c *JoplinConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required),
		validation.Field(&c.TokenFile, validation.Required),
	)
}

// ExportConfig holds note selection and output settings.
//
// Tag selects the notes to export; the case-insensitive sentinel "ALL"
// exports every note regardless of tag membership.
type ExportConfig struct {
	Tag    string `yaml:"tag"`
	Output string `yaml:"output"`
}

// Validate validates the export configuration.
func (c *ExportConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Tag, validation.Required),
		validation.Field(&c.Output, validation.Required),
	)
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelInfo,
		},
		Joplin: JoplinConfig{
			BaseURL:   "http://localhost:41184",
			TokenFile: "joplin_token.txt",
		},
		Export: ExportConfig{
			Tag:    "blog",
			Output: "hexo_source",
		},
	}
}
