package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies a configuration file format.
type Format string

// Supported configuration file formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// Load reads a partial configuration file and resolves it over the defaults.
// The format is inferred from the file extension (.yaml/.yml or .toml).
// Environment variables in the format ${VAR_NAME} are expanded before parsing.
func Load(path string) (*Config, error) {
	overrides, err := LoadOverrides(path)
	if err != nil {
		return nil, err
	}
	return overrides.Resolve(), nil
}

// LoadOverrides reads a partial configuration file without resolving it.
func LoadOverrides(path string) (*Overrides, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open config file %s: %w", path, err)
	}

	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", cerr)
		}
	}()

	return LoadOverridesFromReader(file, formatForPath(path))
}

// LoadOverridesFromReader reads partial configuration from an io.Reader in the
// given format. Environment variables in the format ${VAR_NAME} are expanded
// before parsing.
func LoadOverridesFromReader(r io.Reader, format Format) (*Overrides, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	expanded := os.ExpandEnv(string(content))

	var overrides Overrides
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal([]byte(expanded), &overrides); err != nil {
			return nil, fmt.Errorf("failed to parse config TOML: %w", err)
		}
	default:
		if err := yaml.Unmarshal([]byte(expanded), &overrides); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	}

	return &overrides, nil
}

// formatForPath infers the config format from a file extension.
func formatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}
