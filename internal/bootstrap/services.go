package bootstrap

import (
	"context"
	"fmt"

	"github.com/hindu-agent/setupctl/internal/config"
)

// detectionSteps builds one advisory probe step per configured service.
// A probe only checks PATH for the service's well-known executable; it never
// opens a network connection.
func (b *Bootstrapper) detectionSteps() []Step {
	steps := make([]Step, 0, len(b.cfg.Services))
	for _, svc := range b.cfg.Services {
		svc := svc
		steps = append(steps, Step{
			Name:     "detect " + svc.Name,
			Severity: SeverityAdvisory,
			Run: func(_ context.Context) (Outcome, string, error) {
				path, err := b.lookPath(svc.Probe)
				if err != nil {
					b.detected[svc.Name] = false
					return OutcomeWarning, b.installHint(svc), nil
				}
				b.detected[svc.Name] = true
				return OutcomeSuccess, fmt.Sprintf("%s found at %s", svc.Probe, path), nil
			},
		})
	}
	return steps
}

// installHint picks the platform-specific install suggestion for a service.
func (b *Bootstrapper) installHint(svc config.ServiceConfig) string {
	if hint, ok := svc.Hints[b.goos]; ok {
		return fmt.Sprintf("%s not found; install it with: %s", svc.Name, hint)
	}
	return fmt.Sprintf("%s not found; install %s and re-run", svc.Name, svc.Probe)
}
