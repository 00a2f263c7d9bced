package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"runtime"

	"github.com/hindu-agent/setupctl/internal/config"
)

// ErrNoEnvironment indicates a step needed the provisioned environment before
// the provisioner ran or after it failed.
var ErrNoEnvironment = errors.New("no provisioned environment")

// ConfirmFunc answers a yes/no question shown to the operator. Anything other
// than an explicit affirmative must return false.
type ConfirmFunc func(prompt string) bool

// Bootstrapper builds the ordered pipeline of provisioning steps from a
// manifest. Steps share state only through the Bootstrapper itself: the
// environment handle set by the provisioner and the service detection results.
type Bootstrapper struct {
	cfg     *config.Config
	logger  *slog.Logger
	confirm ConfirmFunc
	runner  CommandRunner
	goos    string

	lookPath func(string) (string, error)

	// env is set by the environment provisioner step and consumed by the
	// dependency installer and the downstream invoker.
	env *Environment
	// detected records per-service probe results for the initializer steps.
	detected map[string]bool
}

// Option customizes a Bootstrapper, mainly for tests.
type Option func(*Bootstrapper)

// WithConfirm installs the confirmation callback used by interactive steps.
func WithConfirm(f ConfirmFunc) Option {
	return func(b *Bootstrapper) { b.confirm = f }
}

// WithRunner replaces the subprocess runner.
func WithRunner(r CommandRunner) Option {
	return func(b *Bootstrapper) { b.runner = r }
}

// WithLookPath replaces the PATH lookup used by probes.
func WithLookPath(f func(string) (string, error)) Option {
	return func(b *Bootstrapper) { b.lookPath = f }
}

// WithGOOS overrides the platform family used to pick install hints.
func WithGOOS(goos string) Option {
	return func(b *Bootstrapper) { b.goos = goos }
}

// New constructs a Bootstrapper for the given manifest. Without options it
// runs real subprocesses and answers every prompt negatively.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) *Bootstrapper {
	if logger == nil {
		logger = slog.Default()
	}
	b := &Bootstrapper{
		cfg:      cfg,
		logger:   logger,
		confirm:  func(string) bool { return false },
		goos:     runtime.GOOS,
		lookPath: exec.LookPath,
		detected: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.runner == nil {
		b.runner = newExecRunner(logger)
	}
	return b
}

// Steps returns the full provisioning sequence in its fixed dependency order.
func (b *Bootstrapper) Steps() []Step {
	steps := []Step{
		{Name: "python version", Severity: SeverityFatal, Run: b.checkPython},
		{Name: "virtual environment", Severity: SeverityFatal, Run: b.provisionVenv},
		{Name: "dependencies", Severity: SeverityFatal, Run: b.installDependencies},
		{Name: "directories", Severity: SeverityFatal, Run: b.scaffoldDirectories},
		{Name: "secrets file", Severity: SeverityAdvisory, Run: b.bootstrapSecrets},
	}
	steps = append(steps, b.detectionSteps()...)
	steps = append(steps, b.initializerSteps()...)
	if b.cfg.Downstream != nil {
		steps = append(steps, Step{
			Name:     downstreamStepName(b.cfg.Downstream),
			Severity: SeverityAdvisory,
			Run:      b.invokeDownstream,
		})
	}
	return steps
}

// DoctorSteps returns the read-only subset of the pipeline: the prerequisite
// check and the service probes. Nothing in it writes to disk.
func (b *Bootstrapper) DoctorSteps() []Step {
	steps := []Step{
		{Name: "python version", Severity: SeverityFatal, Run: b.checkPython},
	}
	return append(steps, b.detectionSteps()...)
}

// Run executes the full pipeline and returns its report.
func (b *Bootstrapper) Run(ctx context.Context) *Report {
	return NewRunner(b.logger).Run(ctx, b.Steps())
}
