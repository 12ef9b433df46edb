// Package exitcode maps command errors onto process exit codes.
package exitcode

import (
	"errors"

	"github.com/spf13/cobra"
)

const (
	Success = 0
	Failure = 1
	Usage   = 2
)

// UsageError reports malformed command-line arguments.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }
func (e *UsageError) ExitCode() int { return Usage }

type exitCoder interface {
	ExitCode() int
}

// Of returns the exit code for err: Success for nil, the code carried by the
// first error in the chain implementing ExitCode() int, Failure otherwise.
func Of(err error) int {
	if err == nil {
		return Success
	}
	var ec exitCoder
	if errors.As(err, &ec) {
		if c := ec.ExitCode(); c != Success {
			return c
		}
	}
	return Failure
}

// FlagError is a cobra FlagErrorFunc turning flag parse failures into usage
// errors.
func FlagError(_ *cobra.Command, err error) error {
	return &UsageError{Err: err}
}

// NoArgs is cobra.NoArgs returning a usage error.
func NoArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return &UsageError{Err: err}
	}
	return nil
}
