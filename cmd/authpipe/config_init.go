package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// defaultConfigTemplate mirrors the built-in defaults. Every key is optional;
// omitted keys inherit the default value.
const defaultConfigTemplate = `# authpipe configuration
# Every setting is optional. Anything left out keeps its built-in default.
# Values support ${ENV_VAR} expansion.

base_endpoint: /api/auth/

transport:
  # base_url is prepended to every action endpoint.
  base_url: http://localhost:3000
  timeout_ms: 10000
  # rpm: 60
  # breaker:
  #   enabled: true
  #   failure_threshold: 5
  #   open_seconds: 30

login:
  endpoint: login
  method: post
  redirect:
    success: /
    failure: ""
  default_errors:
    - "Login/Email combination is not correct, please try again."
  default_messages:
    - "You have been successfully logged in."

register:
  endpoint: register
  method: post

logout:
  # An empty endpoint makes logout a local-only action (no request is sent).
  endpoint: logout
  method: delete

request_pass:
  endpoint: request-pass
  method: post

reset_pass:
  endpoint: reset-pass
  method: put
  reset_password_token_key: reset_password_token

refresh_token:
  endpoint: refresh-token
  method: post

token:
  key: data.token

errors:
  key: data.errors

messages:
  key: data.messages

logging:
  level: info
  format: json
  output: stderr
`

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default config file",
	Long:  `Generate a default authpipe configuration file at ~/.config/authpipe/` + defaultConfigFile,
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().StringP("output", "o", "", "output path (default: ~/.config/authpipe/"+defaultConfigFile+")")
	configInitCmd.Flags().Bool("force", false, "overwrite existing config file")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return fmt.Errorf("failed to get force flag: %w", err)
	}

	if output == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		output = filepath.Join(home, ".config", "authpipe", defaultConfigFile)
	}

	if _, err := os.Stat(output); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", output)
	}

	dir := filepath.Dir(output)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(output, []byte(defaultConfigTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("✓ Config file created at %s\n", output)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Point transport.base_url at your backend")
	fmt.Println("  2. Validate with: authpipe config validate")
	fmt.Println("  3. Run an action: authpipe login --set email=user@example.com --set password=secret")

	return nil
}
