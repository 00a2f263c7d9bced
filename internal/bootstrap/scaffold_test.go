package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hindu-agent/setupctl/internal/config"
)

func TestScaffoldDirectories_CreatesNestedPaths(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	cfg.Directories = []string{
		filepath.Join(root, "logs"),
		filepath.Join(root, "config", "prompts"),
	}
	b := newTestBootstrapper(t, cfg)

	outcome, _, err := b.scaffoldDirectories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, outcome)

	for _, dir := range cfg.Directories {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestScaffoldDirectories_Idempotent(t *testing.T) {
	root := t.TempDir()
	cfg := config.Default()
	cfg.Directories = []string{filepath.Join(root, "data")}
	b := newTestBootstrapper(t, cfg)

	for i := 0; i < 2; i++ {
		outcome, _, err := b.scaffoldDirectories(context.Background())
		require.NoError(t, err, "run %d", i+1)
		assert.Equal(t, OutcomeSuccess, outcome, "run %d", i+1)
	}

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no duplicate side effects")
}

func TestScaffoldDirectories_FileInTheWayFails(t *testing.T) {
	root := t.TempDir()
	blocked := filepath.Join(root, "logs")
	require.NoError(t, os.WriteFile(blocked, []byte("not a directory"), 0o644))

	cfg := config.Default()
	cfg.Directories = []string{blocked}
	b := newTestBootstrapper(t, cfg)

	outcome, detail, err := b.scaffoldDirectories(context.Background())
	assert.Equal(t, OutcomeFailure, outcome)
	assert.Error(t, err)
	assert.Contains(t, detail, "permissions")
}
