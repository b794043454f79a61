package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validkit/internal/demo"
	"github.com/dmitrymomot/validkit/pkg/binder"
	"github.com/dmitrymomot/validkit/pkg/schema"
)

// Output modes of the check command.
const (
	OutputFull  = "full"
	OutputBrief = "brief"
	OutputHuman = "human"
)

// ErrUnknownFormat is returned when the input format cannot be determined.
var ErrUnknownFormat = errors.New("unknown input format")

// InvalidRecordError reports a record that failed validation.
type InvalidRecordError struct {
	Schema   string
	Failures int
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("%s: %d validation failure(s)", e.Schema, e.Failures)
}

// ExitCode returns 2 so scripts can tell invalid input from usage errors.
func (e *InvalidRecordError) ExitCode() int {
	return 2
}

type checkOptions struct {
	format string
	schema string
	output string
}

// NewCheckCmd validates one record read from a file or stdin. A valid record
// is printed as JSON; an invalid one prints its failures and exits with 2.
func NewCheckCmd() *cobra.Command {
	opts := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a record against a schema",
		Long: `Decode a record from file (or stdin when file is omitted or "-"),
validate it and print either the normalized record or its failures.

The format defaults to the file extension, or json for stdin.`,
		Example: `  validkit check signup.yaml
  cat address.json | validkit check --schema address --output human`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return runCheck(cmd, path, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "input format: "+strings.Join(binder.Formats(), ", "))
	cmd.Flags().StringVarP(&opts.schema, "schema", "s", "signup", "schema to validate against")
	cmd.Flags().StringVarP(&opts.output, "output", "o", OutputBrief, "failure rendering: full, brief or human")
	return cmd
}

func runCheck(cmd *cobra.Command, path string, opts *checkOptions) error {
	switch opts.output {
	case OutputFull, OutputBrief, OutputHuman:
	default:
		return fmt.Errorf("invalid --output %q: must be %s, %s or %s", opts.output, OutputFull, OutputBrief, OutputHuman)
	}

	catalog := demo.NewCatalog()
	if _, err := catalog.Lookup(opts.schema); err != nil {
		return err
	}

	mediaType, err := inputMediaType(opts.format, path)
	if err != nil {
		return err
	}

	data, err := readInput(cmd.InOrStdin(), path)
	if err != nil {
		return err
	}

	out, err := catalog.Validate(opts.schema, data, mediaType)
	if err != nil {
		verr, ok := schema.AsValidationError(err)
		if !ok {
			return err
		}
		if werr := writeFailures(cmd.OutOrStdout(), verr, opts.output); werr != nil {
			return werr
		}
		return &InvalidRecordError{Schema: opts.schema, Failures: verr.Len()}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func inputMediaType(format, path string) (string, error) {
	if format == "" {
		if path == "-" {
			format = "json"
		} else {
			format = strings.TrimPrefix(filepath.Ext(path), ".")
		}
	}
	mt, ok := binder.FormatMediaType(format)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return mt, nil
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func writeFailures(w io.Writer, verr *schema.ValidationError, output string) error {
	switch output {
	case OutputFull:
		return verr.WriteFull(w)
	case OutputHuman:
		return verr.WriteHumanReadable(w)
	default:
		return verr.WriteBrief(w)
	}
}
