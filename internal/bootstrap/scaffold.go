package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// scaffoldDirectories ensures every configured directory exists, creating
// parents as needed. Idempotent: existing directories are left untouched.
func (b *Bootstrapper) scaffoldDirectories(_ context.Context) (Outcome, string, error) {
	dirs := b.cfg.Directories
	if len(dirs) == 0 {
		return OutcomeSuccess, "no directories declared", nil
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			detail := fmt.Sprintf("cannot create %s; check filesystem permissions", dir)
			return OutcomeFailure, detail, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	return OutcomeSuccess, strings.Join(dirs, ", "), nil
}
