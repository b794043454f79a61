// Package cli holds the cobra commands of the validkit binary.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// ExitCoder is implemented by errors that carry a specific process exit code.
type ExitCoder interface {
	ExitCode() int
}

// ExitCodeFromError returns 0 for nil, the code of an ExitCoder, and 1 otherwise.
func ExitCodeFromError(err error) int {
	if err == nil {
		return 0
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return 1
}

// NewRootCmd creates a fresh command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validkit",
		Short: "Validate and normalize records with declarative schemas",
		Long: `validkit runs records through per-field validation pipelines:
pre checks on the raw record, a chain of checks and transforms per field,
and post checks on the validated record.

Use "check" to validate a file and "serve" to expose the schemas over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       Version,
	}

	cmd.AddCommand(NewCheckCmd(), NewServeCmd(), NewVersionCmd())
	return cmd
}

// Run executes the command tree with args and returns the exit code.
// Errors are printed to stderr prefixed with the binary name.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "validkit: %s\n", err)
	}
	return ExitCodeFromError(err)
}
