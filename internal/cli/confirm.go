package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hindu-agent/setupctl/internal/bootstrap"
)

// newConfirmer builds the confirmation callback for interactive steps.
// --yes answers everything affirmatively without touching stdin; --no-input
// declines everything; otherwise the operator is asked on the terminal.
func newConfirmer(cmd *cobra.Command, opts *Options) bootstrap.ConfirmFunc {
	if opts.Yes {
		return func(string) bool { return true }
	}
	if opts.NoInput {
		return func(string) bool { return false }
	}
	return newStdinConfirmer(cmd.InOrStdin(), cmd.OutOrStdout())
}

// newStdinConfirmer reads single yes/no answers from in. Anything other than
// an explicit "y"/"yes" (case-insensitive) counts as no.
func newStdinConfirmer(in io.Reader, out io.Writer) bootstrap.ConfirmFunc {
	reader := bufio.NewReader(in)
	return func(prompt string) bool {
		fmt.Fprintf(out, "%s [y/N]: ", prompt)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(line))
		return answer == "y" || answer == "yes"
	}
}
