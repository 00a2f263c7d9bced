package bootstrap

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/hindu-agent/setupctl/internal/config"
)

// PrintSummary renders the final report: a banner, one status line per
// executed step, and, only when every fatal step succeeded, the ordered
// next-step guidance. Pure formatting over the accumulated outcomes.
func PrintSummary(w io.Writer, cfg *config.Config, report *Report) {
	out := termenv.NewOutput(w)
	p := out.ColorProfile()

	green := p.Color("2")
	yellow := p.Color("3")
	red := p.Color("1")

	fmt.Fprintln(w)
	fmt.Fprintln(w, out.String(fmt.Sprintf("── %s setup ──", cfg.Project)).Bold())

	for _, res := range report.Results {
		var mark termenv.Style
		switch res.Outcome {
		case OutcomeSuccess:
			mark = out.String("✓").Foreground(green)
		case OutcomeWarning:
			mark = out.String("!").Foreground(yellow)
		case OutcomeFailure:
			mark = out.String("✗").Foreground(red)
		case OutcomeSkipped:
			mark = out.String("-").Faint()
		}
		line := fmt.Sprintf("%s %s", mark, res.Name)
		if res.Detail != "" {
			line += ": " + res.Detail
		}
		fmt.Fprintln(w, line)
	}

	fmt.Fprintln(w)
	if failed := report.FirstFatal(); failed != nil {
		fmt.Fprintln(w, out.String("Setup did not complete.").Foreground(red).Bold())
		if failed.Detail != "" {
			fmt.Fprintf(w, "%s: %s\n", failed.Name, failed.Detail)
		}
		fmt.Fprintln(w, "Fix the problem above and re-run setupctl; every step is safe to repeat.")
		return
	}

	fmt.Fprintln(w, out.String("Setup complete.").Foreground(green).Bold())
	if len(cfg.Summary.NextSteps) > 0 {
		fmt.Fprintln(w, "Next steps:")
		for i, step := range cfg.Summary.NextSteps {
			fmt.Fprintf(w, "  %d. %s\n", i+1, step)
		}
	}
}
