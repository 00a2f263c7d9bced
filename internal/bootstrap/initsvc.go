package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hindu-agent/setupctl/internal/config"
)

// initTimeout bounds a single one-time service setup command.
const initTimeout = 30 * time.Second

// initializerSteps builds one advisory step per configured service that
// declares a one-time setup action. A service that was not detected is
// skipped without prompting. The setup command itself is not idempotent
// (re-creating an existing database is an error), so a failed attempt is
// reported as a warning noting that the resource may already exist.
func (b *Bootstrapper) initializerSteps() []Step {
	var steps []Step
	for _, svc := range b.cfg.Services {
		if svc.Init == nil {
			continue
		}
		svc := svc
		steps = append(steps, Step{
			Name:     "initialize " + svc.Name,
			Severity: SeverityAdvisory,
			Run: func(ctx context.Context) (Outcome, string, error) {
				return b.initializeService(ctx, svc)
			},
		})
	}
	return steps
}

func (b *Bootstrapper) initializeService(ctx context.Context, svc config.ServiceConfig) (Outcome, string, error) {
	if !b.detected[svc.Name] {
		return OutcomeSkipped, svc.Name + " not detected", nil
	}

	if !b.confirm(svc.Init.Prompt) {
		return OutcomeSkipped, "declined", nil
	}

	argv := svc.Init.Command
	path, err := b.lookPath(argv[0])
	if err != nil {
		detail := fmt.Sprintf("%s not found on PATH", argv[0])
		return OutcomeWarning, detail, err
	}

	ctx, cancel := context.WithTimeout(ctx, initTimeout)
	defer cancel()

	if err := b.runner.Run(ctx, nil, path, argv[1:]...); err != nil {
		// The duplicate-creation error is swallowed on purpose: the resource
		// may legitimately exist from a prior run.
		detail := fmt.Sprintf("%q failed; the resource may already exist", strings.Join(argv, " "))
		return OutcomeWarning, detail, err
	}

	return OutcomeSuccess, strings.Join(argv, " "), nil
}
