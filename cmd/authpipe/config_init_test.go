package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authpipe/authpipe/internal/config"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "init"}
	cmd.Flags().StringP("output", "o", "", "output path")
	cmd.Flags().Bool("force", false, "overwrite existing")
	return cmd
}

func TestConfigInitCustomPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "authpipe.yaml")

	cmd := newInitCmd()
	require.NoError(t, cmd.Flags().Set("output", path))

	require.NoError(t, runConfigInit(cmd, nil))

	data, err := os.ReadFile(filepath.Clean(path))
	require.NoError(t, err)
	assert.Contains(t, string(data), "base_endpoint:")
	assert.Contains(t, string(data), "transport:")
}

func TestConfigInitRefusesExistingWithoutForce(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "authpipe.yaml")
	require.NoError(t, os.WriteFile(path, []byte("existing: content"), 0o600))

	cmd := newInitCmd()
	require.NoError(t, cmd.Flags().Set("output", path))

	err := runConfigInit(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestConfigInitForceOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "authpipe.yaml")
	require.NoError(t, os.WriteFile(path, []byte("existing: content"), 0o600))

	cmd := newInitCmd()
	require.NoError(t, cmd.Flags().Set("output", path))
	require.NoError(t, cmd.Flags().Set("force", "true"))

	require.NoError(t, runConfigInit(cmd, nil))

	data, err := os.ReadFile(filepath.Clean(path))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "existing: content")
}

// The shipped template must stay parseable and resolve to a valid config.
func TestDefaultConfigTemplateResolves(t *testing.T) {
	t.Parallel()

	overrides, err := config.LoadOverridesFromReader(
		strings.NewReader(defaultConfigTemplate), config.FormatYAML)
	require.NoError(t, err)

	cfg := overrides.Resolve()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "/api/auth/", cfg.BaseEndpoint)
	assert.Equal(t, "http://localhost:3000", cfg.Transport.BaseURL)
	assert.Equal(t, "delete", cfg.Logout.Method)
	assert.Equal(t, "reset_password_token", cfg.ResetPass.ResetPasswordTokenKey)
}
