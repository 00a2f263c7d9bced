package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/hindu-agent/setupctl/internal/env"
)

// Environment is the explicit handle to the provisioned virtual environment.
// Steps that invoke tools inside it resolve paths through this handle instead
// of relying on any ambient system installation.
type Environment struct {
	// Root is the virtual environment directory.
	Root string
}

// BinDir returns the directory holding the environment's executables.
func (e *Environment) BinDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(e.Root, "Scripts")
	}
	return filepath.Join(e.Root, "bin")
}

// Python returns the path of the environment's interpreter.
func (e *Environment) Python() string {
	return filepath.Join(e.BinDir(), "python")
}

// Pip returns the path of the environment's package installer.
func (e *Environment) Pip() string {
	return filepath.Join(e.BinDir(), "pip")
}

// Resolve maps a command name to the environment's own executable. Known
// interpreter aliases resolve to their canonical binaries; anything else is
// resolved inside the bin directory.
func (e *Environment) Resolve(name string) string {
	switch name {
	case "python", "python3":
		return e.Python()
	case "pip", "pip3":
		return e.Pip()
	default:
		return filepath.Join(e.BinDir(), name)
	}
}

// Environ returns extra process environment entries that activate the
// environment for a subprocess: VIRTUAL_ENV plus a PATH with the bin
// directory prepended.
func (e *Environment) Environ() []string {
	vars := env.Merge(env.FromOS(), env.Vars{
		"VIRTUAL_ENV": e.Root,
		"PATH":        e.BinDir() + string(os.PathListSeparator) + os.Getenv("PATH"),
	})
	return vars.Environ()
}

// provisionVenv creates the virtual environment. An existing directory is
// removed first and recreated from scratch: reusing a stale environment could
// leave behind packages the manifest no longer declares, so the clean-slate
// policy is unconditional.
func (b *Bootstrapper) provisionVenv(ctx context.Context) (Outcome, string, error) {
	dir := b.cfg.Venv.Dir

	recreated := false
	if _, err := os.Stat(dir); err == nil {
		if err := os.RemoveAll(dir); err != nil {
			detail := fmt.Sprintf("cannot remove existing %s; delete it manually and re-run", dir)
			return OutcomeFailure, detail, fmt.Errorf("remove %s: %w", dir, err)
		}
		recreated = true
	}

	interpreter, err := b.lookPath(b.cfg.Python.Interpreter)
	if err != nil {
		detail := fmt.Sprintf("%s not found on PATH", b.cfg.Python.Interpreter)
		return OutcomeFailure, detail, err
	}

	if err := b.runner.Run(ctx, nil, interpreter, "-m", "venv", dir); err != nil {
		detail := fmt.Sprintf("could not create %s; check permissions and free disk space", dir)
		return OutcomeFailure, detail, err
	}

	b.env = &Environment{Root: dir}

	if recreated {
		return OutcomeSuccess, fmt.Sprintf("recreated %s", dir), nil
	}
	return OutcomeSuccess, fmt.Sprintf("created %s", dir), nil
}
