package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hindu-agent/setupctl/internal/env"
)

// bootstrapSecrets seeds the secrets file from its template on first run.
// An existing file is never touched: it may hold credentials the operator
// already entered. A missing template is only a warning, since later steps
// need the file's keys filled in eventually but not right now.
func (b *Bootstrapper) bootstrapSecrets(_ context.Context) (Outcome, string, error) {
	file := b.cfg.Secrets.File
	template := b.cfg.Secrets.Template

	if _, err := os.Stat(file); err == nil {
		return OutcomeSuccess, fmt.Sprintf("%s already exists%s", file, b.emptyKeysNote(file)), nil
	} else if !os.IsNotExist(err) {
		detail := fmt.Sprintf("cannot read %s; check filesystem permissions", file)
		return OutcomeFailure, detail, err
	}

	data, err := os.ReadFile(template)
	if err != nil {
		if os.IsNotExist(err) {
			detail := fmt.Sprintf("template %s missing; create %s by hand", template, file)
			return OutcomeWarning, detail, err
		}
		detail := fmt.Sprintf("cannot read template %s", template)
		return OutcomeWarning, detail, err
	}

	if err := os.WriteFile(file, data, 0o600); err != nil {
		detail := fmt.Sprintf("cannot write %s; check filesystem permissions", file)
		return OutcomeFailure, detail, err
	}

	return OutcomeSuccess, fmt.Sprintf("created %s from %s%s", file, template, b.emptyKeysNote(file)), nil
}

// emptyKeysNote reports which required credential keys are still unset in the
// secrets file. Informational only; the pipeline never validates values.
func (b *Bootstrapper) emptyKeysNote(file string) string {
	required := b.cfg.Secrets.Required
	if len(required) == 0 {
		return ""
	}

	vars, err := env.LoadFile(file)
	if err != nil {
		b.logger.Debug("could not parse secrets file", "file", file, "error", err)
		return ""
	}

	missing := env.MissingKeys(vars, required)
	if len(missing) == 0 {
		return ""
	}
	return fmt.Sprintf(" (still empty: %s)", strings.Join(missing, ", "))
}
