// Package bootstrap contains the provisioning pipeline that prepares a local
// machine to run the application: prerequisite checks, virtual environment
// provisioning, dependency installation, filesystem scaffolding, secrets
// seeding and optional auxiliary service setup.
package bootstrap

import (
	"context"
	"log/slog"
	"time"
)

// Severity decides whether a failed step aborts the rest of the pipeline.
type Severity int

const (
	// SeverityFatal aborts the pipeline on failure and forces a non-zero exit.
	SeverityFatal Severity = iota
	// SeverityAdvisory reports the failure and lets the pipeline continue.
	SeverityAdvisory
)

// String returns the lowercase severity name.
func (s Severity) String() string {
	switch s {
	case SeverityFatal:
		return "fatal"
	case SeverityAdvisory:
		return "advisory"
	default:
		return "unknown"
	}
}

// Outcome is the determinate result of one executed step.
type Outcome int

const (
	// OutcomeSuccess means the step did its work or found it already done.
	OutcomeSuccess Outcome = iota
	// OutcomeWarning means the step hit a non-blocking problem.
	OutcomeWarning
	// OutcomeFailure means the step could not do its work.
	OutcomeFailure
	// OutcomeSkipped means the step had nothing to do or was declined.
	OutcomeSkipped
)

// String returns the lowercase outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeWarning:
		return "warning"
	case OutcomeFailure:
		return "failure"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// StepFunc executes one provisioning step. The detail string is shown to the
// user in the summary; err carries the underlying cause for logs.
type StepFunc func(ctx context.Context) (Outcome, string, error)

// Step is one ordered unit of the provisioning sequence.
type Step struct {
	// Name identifies the step in logs and the summary.
	Name string
	// Severity decides whether a Failure outcome aborts the pipeline.
	Severity Severity
	// Run executes the step exactly once.
	Run StepFunc
}

// Result records the outcome of one executed step.
type Result struct {
	Name     string
	Severity Severity
	Outcome  Outcome
	Detail   string
	Err      error
	Duration time.Duration
}

// Report accumulates the results of a pipeline run.
type Report struct {
	// Results holds one entry per executed step, in execution order.
	// Steps after a fatal failure never execute and have no entry.
	Results []Result
	// Aborted is true when a fatal step failed and the run stopped early.
	Aborted bool
}

// Succeeded reports whether no fatal step failed.
func (r *Report) Succeeded() bool {
	return r.FirstFatal() == nil
}

// FirstFatal returns the first fatal failure, or nil if the run succeeded.
func (r *Report) FirstFatal() *Result {
	for i := range r.Results {
		res := &r.Results[i]
		if res.Severity == SeverityFatal && res.Outcome == OutcomeFailure {
			return res
		}
	}
	return nil
}

// Runner executes pipeline steps strictly in order, one at a time.
type Runner struct {
	logger *slog.Logger
}

// NewRunner constructs a Runner that logs step progress to the given logger.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{logger: logger}
}

// Run executes the steps in order. Each step's outcome is fully determined
// before the next begins. A fatal step's failure stops the run immediately;
// advisory failures and warnings are logged and the run continues.
func (r *Runner) Run(ctx context.Context, steps []Step) *Report {
	report := &Report{}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			r.logger.Error("pipeline interrupted", "step", step.Name, "error", err)
			report.Results = append(report.Results, Result{
				Name:     step.Name,
				Severity: step.Severity,
				Outcome:  OutcomeFailure,
				Detail:   "interrupted",
				Err:      err,
			})
			report.Aborted = true
			return report
		}

		start := time.Now()
		outcome, detail, err := step.Run(ctx)
		res := Result{
			Name:     step.Name,
			Severity: step.Severity,
			Outcome:  outcome,
			Detail:   detail,
			Err:      err,
			Duration: time.Since(start),
		}
		report.Results = append(report.Results, res)

		switch outcome {
		case OutcomeSuccess:
			r.logger.Info("step ok", "step", step.Name, "detail", detail)
		case OutcomeSkipped:
			r.logger.Info("step skipped", "step", step.Name, "detail", detail)
		case OutcomeWarning:
			r.logger.Warn("step warning", "step", step.Name, "detail", detail, "error", err)
		case OutcomeFailure:
			r.logger.Error("step failed", "step", step.Name, "detail", detail, "error", err)
			if step.Severity == SeverityFatal {
				report.Aborted = true
				return report
			}
		}
	}

	return report
}
