package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/hindu-agent/setupctl/internal/config"
)

// fakeCall records one subprocess invocation made through fakeRunner.
type fakeCall struct {
	name string
	args []string
	env  []string
}

// fakeRunner is a CommandRunner that records calls and serves canned results
// keyed by command name.
type fakeRunner struct {
	calls   []fakeCall
	outputs map[string]string
	errs    map[string]error
}

func (f *fakeRunner) Run(_ context.Context, extraEnv []string, name string, args ...string) error {
	f.calls = append(f.calls, fakeCall{name: name, args: args, env: extraEnv})
	if err, ok := f.errs[name]; ok {
		return err
	}
	return nil
}

func (f *fakeRunner) Output(_ context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, fakeCall{name: name, args: args})
	if err, ok := f.errs[name]; ok {
		return "", err
	}
	if out, ok := f.outputs[name]; ok {
		return out, nil
	}
	return "", nil
}

// pathLookup returns a lookPath fake that resolves only the given names.
func pathLookup(names ...string) func(string) (string, error) {
	known := make(map[string]string, len(names))
	for _, n := range names {
		known[n] = "/usr/bin/" + n
	}
	return func(name string) (string, error) {
		if path, ok := known[name]; ok {
			return path, nil
		}
		return "", fmt.Errorf("executable file %q not found in $PATH", name)
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestBootstrapper(t *testing.T, cfg *config.Config, opts ...Option) *Bootstrapper {
	t.Helper()
	if cfg == nil {
		cfg = config.Default()
	}
	return New(cfg, quietLogger(), opts...)
}
