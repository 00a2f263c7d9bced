package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hindu-agent/setupctl/internal/config"
)

func TestDetectionSteps_FoundAndMissing(t *testing.T) {
	cfg := config.Default()
	b := newTestBootstrapper(t, cfg, WithLookPath(pathLookup("psql")), WithGOOS("linux"))

	steps := b.detectionSteps()
	require.Len(t, steps, len(cfg.Services))

	report := NewRunner(quietLogger()).Run(context.Background(), steps)
	require.Len(t, report.Results, 2)

	postgres := report.Results[0]
	assert.Equal(t, "detect postgresql", postgres.Name)
	assert.Equal(t, OutcomeSuccess, postgres.Outcome)
	assert.Contains(t, postgres.Detail, "/usr/bin/psql")
	assert.True(t, b.detected["postgresql"])

	redis := report.Results[1]
	assert.Equal(t, "detect redis", redis.Name)
	assert.Equal(t, OutcomeWarning, redis.Outcome)
	assert.Contains(t, redis.Detail, "sudo apt-get install redis-server")
	assert.False(t, b.detected["redis"])

	// Absence is advisory only.
	assert.True(t, report.Succeeded())
}

func TestInstallHint_UnknownPlatformFallsBack(t *testing.T) {
	cfg := config.Default()
	b := newTestBootstrapper(t, cfg, WithGOOS("plan9"))

	hint := b.installHint(cfg.Services[0])
	assert.Contains(t, hint, "install psql")
}

func TestInstallHint_PlatformSpecific(t *testing.T) {
	cfg := config.Default()

	darwin := newTestBootstrapper(t, cfg, WithGOOS("darwin")).installHint(cfg.Services[0])
	assert.Contains(t, darwin, "brew install")

	linux := newTestBootstrapper(t, cfg, WithGOOS("linux")).installHint(cfg.Services[0])
	assert.Contains(t, linux, "apt-get")
}
