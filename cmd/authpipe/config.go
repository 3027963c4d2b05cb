package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/authpipe/authpipe/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management commands",
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration file",
	Long: `Validate the configuration file without executing any action.
Checks syntax, action methods, and endpoint settings.`,
	RunE: runConfigValidate,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved configuration",
	Long: `Print the fully resolved configuration, including defaults for every
setting the config file leaves out.`,
	RunE: runConfigShow,
}

func init() {
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigValidate(_ *cobra.Command, _ []string) error {
	configPath := cfgFile
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath == "" {
		return fmt.Errorf("no config file found (looked for ./%s and ~/.config/authpipe/%s)",
			defaultConfigFile, defaultConfigFile)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("✗ Config validation failed: %s\n", err)
		return err
	}

	if err := cfg.Validate(); err != nil {
		fmt.Printf("✗ Config validation failed: %s\n", err)
		return err
	}

	fmt.Printf("✓ %s is valid\n", configPath)

	return nil
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	fmt.Printf("base_endpoint: %s\n", cfg.BaseEndpoint)
	fmt.Printf("token key:     %s\n", cfg.Token.Key)
	fmt.Printf("errors key:    %s\n", cfg.Errors.Key)
	fmt.Printf("messages key:  %s\n", cfg.Messages.Key)

	for _, name := range config.ActionNames {
		actionCfg, err := cfg.Action(name)
		if err != nil {
			return err
		}

		fmt.Printf("\n%s:\n", name)
		fmt.Printf("  method:   %s\n", actionCfg.Method)

		if actionCfg.Endpoint == "" {
			fmt.Println("  endpoint: (local only)")
		} else {
			fmt.Printf("  endpoint: %s\n", cfg.URL(actionCfg))
		}

		if actionCfg.AlwaysFail {
			fmt.Println("  always_fail: true")
		}
	}

	return nil
}

// resolveConfig loads the config file when one is set or discoverable, and
// falls back to the built-in defaults otherwise.
func resolveConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = findConfigFile()
	}

	if path == "" {
		return config.Default(), nil
	}

	return config.Load(path)
}

// findConfigFile searches the default locations. Unlike the validate path,
// callers treat an empty result as "use built-in defaults".
func findConfigFile() string {
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return defaultConfigFile
	}

	home, err := os.UserHomeDir()
	if err == nil && home != "" {
		p := filepath.Join(home, ".config", "authpipe", defaultConfigFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}
