package bootstrap

import (
	"context"
	"fmt"
	"regexp"
	"time"

	goversion "github.com/hashicorp/go-version"
)

// versionCheckTimeout bounds the interpreter version query.
const versionCheckTimeout = 10 * time.Second

var versionPattern = regexp.MustCompile(`(\d+(?:\.\d+)+)`)

// checkPython verifies that the configured interpreter exists on PATH and
// meets the minimum version. Version ordering is componentwise numeric, so
// 3.9 is older than 3.11.
func (b *Bootstrapper) checkPython(ctx context.Context) (Outcome, string, error) {
	interpreter := b.cfg.Python.Interpreter

	path, err := b.lookPath(interpreter)
	if err != nil {
		detail := fmt.Sprintf("%s not found on PATH; install Python %s or newer", interpreter, b.cfg.Python.MinVersion)
		return OutcomeFailure, detail, fmt.Errorf("look up %s: %w", interpreter, err)
	}

	ctx, cancel := context.WithTimeout(ctx, versionCheckTimeout)
	defer cancel()

	out, err := b.runner.Output(ctx, path, "--version")
	if err != nil {
		detail := fmt.Sprintf("%s did not report a version; reinstall Python %s or newer", interpreter, b.cfg.Python.MinVersion)
		return OutcomeFailure, detail, err
	}

	installed, err := parseToolVersion(out)
	if err != nil {
		detail := fmt.Sprintf("%s reported unparsable version output %q", interpreter, out)
		return OutcomeFailure, detail, err
	}

	required, err := goversion.NewVersion(b.cfg.Python.MinVersion)
	if err != nil {
		return OutcomeFailure, "invalid minimum version in manifest", err
	}

	if installed.LessThan(required) {
		detail := fmt.Sprintf("found Python %s, need %s or newer; upgrade your Python installation",
			installed, required)
		return OutcomeFailure, detail, fmt.Errorf("python %s older than required %s", installed, required)
	}

	return OutcomeSuccess, fmt.Sprintf("Python %s at %s", installed, path), nil
}

// parseToolVersion extracts the first dotted numeric version from output such
// as "Python 3.11.4".
func parseToolVersion(out string) (*goversion.Version, error) {
	m := versionPattern.FindString(out)
	if m == "" {
		return nil, fmt.Errorf("no version found in %q", out)
	}
	v, err := goversion.NewVersion(m)
	if err != nil {
		return nil, fmt.Errorf("parse version %q: %w", m, err)
	}
	return v, nil
}
