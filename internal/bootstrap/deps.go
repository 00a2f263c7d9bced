package bootstrap

import (
	"context"
	"errors"
	"fmt"
)

// installDependencies installs the whole manifest with a single pip
// invocation inside the provisioned environment. Either every entry installs
// or the step fails; partial installs are not rolled back (pip offers no
// transaction), so the failure halts the pipeline instead of continuing with
// a half-populated environment. The invocation runs under a bounded timeout
// so a stalled registry connection surfaces as a failure rather than a hang.
func (b *Bootstrapper) installDependencies(ctx context.Context) (Outcome, string, error) {
	if b.env == nil {
		return OutcomeFailure, "virtual environment was not provisioned", ErrNoEnvironment
	}

	deps := b.cfg.Dependencies
	if len(deps) == 0 {
		return OutcomeSuccess, "no dependencies declared", nil
	}

	args := []string{"install", "--disable-pip-version-check"}
	for _, dep := range deps {
		args = append(args, dep.Spec())
	}

	ctx, cancel := context.WithTimeout(ctx, b.cfg.InstallTimeoutOrDefault())
	defer cancel()

	if err := b.runner.Run(ctx, b.env.Environ(), b.env.Pip(), args...); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			detail := fmt.Sprintf("install timed out after %s; check your network and re-run", b.cfg.InstallTimeoutOrDefault())
			return OutcomeFailure, detail, err
		}
		detail := "pip install failed; check the package names and your network, then re-run"
		return OutcomeFailure, detail, err
	}

	return OutcomeSuccess, fmt.Sprintf("installed %d packages", len(deps)), nil
}
