// Package config loads the scope1fuel command configuration.
package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Environment variables overriding the configuration file.
const (
	EnvTemplatePath  = "SCOPE1FUEL_TEMPLATE_PATH"
	EnvTemplateSheet = "SCOPE1FUEL_TEMPLATE_SHEET"
	EnvLogLevel      = "SCOPE1FUEL_LOG_LEVEL"
)

// DefaultPath is the configuration file read when none is given.
const DefaultPath = "scope1fuel.toml"

// AppConfig is the command configuration.
type AppConfig struct {
	Template TemplateConfig `toml:"template"`
	Output   OutputConfig   `toml:"output"`
	Defaults DefaultsConfig `toml:"defaults"`
	Log      LogConfig      `toml:"log"`
	Dates    DatesConfig    `toml:"dates"`
	// Profiles lists extra profile files (.toml/.yaml) to register.
	Profiles []string `toml:"profiles"`
}

// TemplateConfig locates the reference template workbook.
type TemplateConfig struct {
	Path  string `toml:"path"`
	Sheet string `toml:"sheet"`
}

// OutputConfig controls where and how results are written.
type OutputConfig struct {
	Path   string `toml:"path"`
	Sheet  string `toml:"sheet"`
	Format string `toml:"format"`
}

// DefaultsConfig controls default-fill selection.
type DefaultsConfig struct {
	// Selection is "first" or "random".
	Selection string `toml:"selection"`
	Seed      uint64 `toml:"seed"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "console" or "json"
}

// DatesConfig controls textual date parsing.
type DatesConfig struct {
	// Layouts are Go time layouts tried before the built-in ones.
	Layouts []string `toml:"layouts"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Template: TemplateConfig{
			Path:  "Fuel-Type-Sample_scope1.xlsx",
			Sheet: "Fuel Type",
		},
		Output: OutputConfig{
			Path:   "output_client.xlsx",
			Sheet:  "Sheet1",
			Format: "xlsx",
		},
		Defaults: DefaultsConfig{
			Selection: "first",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads the configuration file at path on top of the defaults, then
// applies a .env file in the working directory and environment overrides.
// A missing configuration file is not an error.
func Load(path string) (*AppConfig, error) {
	config := DefaultConfig()

	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, err
		}
	case !errors.Is(err, os.ErrNotExist):
		return nil, err
	}

	// .env is optional
	_ = godotenv.Load()

	if v := os.Getenv(EnvTemplatePath); v != "" {
		config.Template.Path = v
	}
	if v := os.Getenv(EnvTemplateSheet); v != "" {
		config.Template.Sheet = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		config.Log.Level = v
	}

	return config, nil
}

// Save writes the configuration to path as TOML. An existing file is not
// overwritten.
func Save(path string, config *AppConfig) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
