// Package di wires authpipe services into a samber/do container.
package di

import (
	"fmt"
	"os"

	"github.com/samber/do/v2"

	"github.com/authpipe/authpipe/internal/config"
)

// ConfigPathKey is the named injection key for the config file path.
// An empty path resolves the built-in defaults.
const ConfigPathKey = "config.path"

// ConfigService wraps the resolved configuration. The config is immutable for
// the container's lifetime; there is deliberately no reload path.
type ConfigService struct {
	Config *config.Config
}

// NewConfig resolves the configuration from the injected path, or from the
// built-in defaults when the path is empty.
func NewConfig(i do.Injector) (*ConfigService, error) {
	path := do.MustInvokeNamed[string](i, ConfigPathKey)

	if path == "" {
		return &ConfigService{Config: config.Default()}, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file %s not readable: %w", path, err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	return &ConfigService{Config: cfg}, nil
}
