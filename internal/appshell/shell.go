// Package appshell is the process entry shared by the kblast binaries.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"kblast/internal/cmdutil"
)

// Main runs the command with a signal-aware context and exits with its code.
// An empty argv shows help.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	if ctx.Err() != nil && code == cmdutil.ExitOK {
		code = cmdutil.ExitCanceled
	}

	stop()
	os.Exit(code)
}
