package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/mydehq/r3name/internal/ui"
	"github.com/spf13/cobra"
)

// Process exit codes.
//
// Per-path failures are reported but leave the exit code at ExitOK unless
// --strict (or strict: true in the config) is set, in which case they yield
// ExitPathFailure.
const (
	ExitOK          = 0
	ExitFatal       = 1 // invalid pattern, unreadable config, cancelled batch
	ExitUsage       = 2 // malformed arguments
	ExitPathFailure = 3 // strict mode only
)

// usageError marks malformed invocations.
type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

var (
	// errReported means the failure was already logged.
	errReported = errors.New("error already reported")

	errPathFailures = errors.New("one or more paths failed to rename")
)

func exitCode(cmd *cobra.Command, err error, stderr io.Writer) int {
	if err == nil {
		return ExitOK
	}

	var usage usageError
	switch {
	case errors.As(err, &usage):
		fmt.Fprintf(stderr, "Error: %v\n", usage.err)
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
		return ExitUsage
	case errors.Is(err, errPathFailures):
		return ExitPathFailure
	case errors.Is(err, errReported):
		return ExitFatal
	default:
		ui.NewLogger(stderr, "error").Error(err.Error())
		return ExitFatal
	}
}
