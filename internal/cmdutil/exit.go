// internal/cmdutil/exit.go
package cmdutil

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

// Process exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2 // bad flags, invalid config, unreadable or empty input
	ExitRuntime  = 3 // output or search failure
	ExitCanceled = 130
)

// ExitError carries the exit code a command wants.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error { return e.Err }

// Exit wraps err with code. A nil err still carries the code.
func Exit(code int, err error) error { return &ExitError{Code: code, Err: err} }

// Usagef is an ExitUsage error with a formatted message.
func Usagef(format string, a ...any) error {
	return Exit(ExitUsage, errors.Errorf(format, a...))
}

// CodeOf maps an error to an exit code. Unclassified errors are runtime
// failures; cancellation is ExitCanceled wherever it occurs in the chain.
func CodeOf(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ExitRuntime
}
