package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hindu-agent/setupctl/internal/config"
)

// downstreamTimeout bounds the application-owned initializer invocation.
const downstreamTimeout = 5 * time.Minute

func downstreamStepName(d *config.DownstreamConfig) string {
	if strings.TrimSpace(d.Name) != "" {
		return "initialize " + d.Name
	}
	return "downstream initializer"
}

// invokeDownstream optionally runs the application's own initialization entry
// point inside the provisioned environment. The orchestrator does not own
// that system: its exit status is reported to the operator but never changes
// setupctl's own exit code.
func (b *Bootstrapper) invokeDownstream(ctx context.Context) (Outcome, string, error) {
	if b.env == nil {
		return OutcomeWarning, "virtual environment was not provisioned", ErrNoEnvironment
	}

	d := b.cfg.Downstream
	if !b.confirm(d.Prompt) {
		return OutcomeSkipped, "declined", nil
	}

	argv := d.Command
	path := b.env.Resolve(argv[0])

	ctx, cancel := context.WithTimeout(ctx, downstreamTimeout)
	defer cancel()

	if err := b.runner.Run(ctx, b.env.Environ(), path, argv[1:]...); err != nil {
		detail := fmt.Sprintf("%q exited with an error; run it again once .env is filled in", strings.Join(argv, " "))
		return OutcomeWarning, detail, err
	}

	return OutcomeSuccess, strings.Join(argv, " "), nil
}
