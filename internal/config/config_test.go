package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "python3", cfg.Python.Interpreter)
	assert.Equal(t, "3.11", cfg.Python.MinVersion)
	assert.Equal(t, ".venv", cfg.Venv.Dir)
	assert.NotEmpty(t, cfg.Dependencies)
	assert.NotEmpty(t, cfg.Summary.NextSteps)
}

func TestLoad_MissingOptionalFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "setup.yaml"), true)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MissingExplicitFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), false)
	assert.Error(t, err)
}

func TestLoad_PartialOverrideKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup.yaml")
	manifest := `
python:
  minVersion: "3.12"
directories: [workdir]
`
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o644))

	cfg, err := Load(path, false)
	require.NoError(t, err)

	assert.Equal(t, "3.12", cfg.Python.MinVersion)
	assert.Equal(t, []string{"workdir"}, cfg.Directories)
	// Untouched sections keep their defaults.
	assert.Equal(t, "python3", cfg.Python.Interpreter)
	assert.Equal(t, ".venv", cfg.Venv.Dir)
	assert.NotEmpty(t, cfg.Services)
}

func TestLoad_InvalidManifest(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
	}{
		{name: "bad min version", manifest: "python:\n  minVersion: \"not-a-version\"\n"},
		{name: "empty venv dir", manifest: "venv:\n  dir: \"  \"\n"},
		{name: "service without probe", manifest: "services:\n  - name: postgresql\n"},
		{name: "dependency without name", manifest: "dependencies:\n  - constraint: \">=1\"\n"},
		{name: "bad install timeout", manifest: "installTimeout: soon\n"},
		{name: "downstream without command", manifest: "downstream:\n  prompt: \"run it?\"\n  command: []\n"},
		{name: "not yaml", manifest: "{{{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "setup.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.manifest), 0o644))

			_, err := Load(path, false)
			assert.Error(t, err)
		})
	}
}

func TestInstallTimeoutOrDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 10*time.Minute, cfg.InstallTimeoutOrDefault())

	cfg.InstallTimeout = "90s"
	assert.Equal(t, 90*time.Second, cfg.InstallTimeoutOrDefault())

	cfg.InstallTimeout = "garbage"
	assert.Equal(t, 10*time.Minute, cfg.InstallTimeoutOrDefault())

	cfg.InstallTimeout = "-1m"
	assert.Equal(t, 10*time.Minute, cfg.InstallTimeoutOrDefault())
}
