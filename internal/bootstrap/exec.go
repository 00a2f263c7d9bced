package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/hindu-agent/setupctl/internal/logging"
)

// CommandRunner abstracts subprocess execution so steps can be tested
// without shelling out.
type CommandRunner interface {
	// Run executes a command, forwarding its output to the logs.
	// extraEnv entries are appended to the process environment.
	Run(ctx context.Context, extraEnv []string, name string, args ...string) error
	// Output executes a command and returns its combined output.
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// execRunner runs real subprocesses, piping their output through slog.
type execRunner struct {
	logger *slog.Logger
}

func newExecRunner(logger *slog.Logger) *execRunner {
	return &execRunner{logger: logger}
}

func (r *execRunner) Run(ctx context.Context, extraEnv []string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	w := logging.NewWriter(r.logger, filepath.Base(name))
	cmd.Stdout = w
	cmd.Stderr = w
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%s %s: %w", filepath.Base(name), strings.Join(args, " "), ctx.Err())
		}
		return fmt.Errorf("%s %s: %w", filepath.Base(name), strings.Join(args, " "), err)
	}
	return nil
}

func (r *execRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("%s %s: %w", filepath.Base(name), strings.Join(args, " "), err)
	}
	return strings.TrimSpace(string(out)), nil
}
