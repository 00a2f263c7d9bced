package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hindu-agent/setupctl/internal/config"
)

func postgresOnly() *config.Config {
	cfg := config.Default()
	cfg.Services = cfg.Services[:1] // postgresql, which declares an init action
	return cfg
}

func TestInitializeService_NotDetectedSkipsWithoutPrompt(t *testing.T) {
	cfg := postgresOnly()
	b := newTestBootstrapper(t, cfg,
		WithLookPath(pathLookup()),
		WithConfirm(func(string) bool {
			t.Fatal("no prompt may be shown for an undetected service")
			return false
		}),
	)

	outcome, detail, err := b.initializeService(context.Background(), cfg.Services[0])
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, outcome)
	assert.Contains(t, detail, "not detected")
}

func TestInitializeService_DeclinedSkips(t *testing.T) {
	cfg := postgresOnly()
	runner := &fakeRunner{}
	b := newTestBootstrapper(t, cfg,
		WithRunner(runner),
		WithLookPath(pathLookup("psql", "createdb")),
		WithConfirm(func(string) bool { return false }),
	)
	b.detected["postgresql"] = true

	outcome, detail, err := b.initializeService(context.Background(), cfg.Services[0])
	require.NoError(t, err)
	assert.Equal(t, OutcomeSkipped, outcome)
	assert.Equal(t, "declined", detail)
	assert.Empty(t, runner.calls)
}

func TestInitializeService_ConfirmedRunsCommand(t *testing.T) {
	cfg := postgresOnly()
	runner := &fakeRunner{}
	var seenPrompt string
	b := newTestBootstrapper(t, cfg,
		WithRunner(runner),
		WithLookPath(pathLookup("psql", "createdb")),
		WithConfirm(func(prompt string) bool {
			seenPrompt = prompt
			return true
		}),
	)
	b.detected["postgresql"] = true

	outcome, _, err := b.initializeService(context.Background(), cfg.Services[0])
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, outcome)
	assert.Equal(t, cfg.Services[0].Init.Prompt, seenPrompt)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, "/usr/bin/createdb", runner.calls[0].name)
	assert.Equal(t, []string{"hindu_agent"}, runner.calls[0].args)
}

func TestInitializeService_FailureIsWarningOnly(t *testing.T) {
	cfg := postgresOnly()
	runner := &fakeRunner{errs: map[string]error{
		"/usr/bin/createdb": errors.New(`database "hindu_agent" already exists`),
	}}
	b := newTestBootstrapper(t, cfg,
		WithRunner(runner),
		WithLookPath(pathLookup("psql", "createdb")),
		WithConfirm(func(string) bool { return true }),
	)
	b.detected["postgresql"] = true

	outcome, detail, err := b.initializeService(context.Background(), cfg.Services[0])
	assert.Equal(t, OutcomeWarning, outcome)
	assert.Error(t, err)
	assert.Contains(t, detail, "already exist")
}

func TestInitializerSteps_OnlyForServicesWithInitAction(t *testing.T) {
	cfg := config.Default()
	b := newTestBootstrapper(t, cfg)

	steps := b.initializerSteps()
	require.Len(t, steps, 1, "only postgresql declares an init action")
	assert.Equal(t, "initialize postgresql", steps[0].Name)
	assert.Equal(t, SeverityAdvisory, steps[0].Severity)
}
