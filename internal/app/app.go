// internal/app/app.go
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"kblast/internal/cli"
	"kblast/internal/cmdutil"
	"kblast/internal/config"
)

// RunContext executes one kblast invocation and returns its exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	root := cli.NewRootCmd(cli.Handlers{
		Search: runSearch,
		Index:  runIndex,
		Config: runConfig,
	}, config.New())

	err := cli.Execute(ctx, root, argv, stdout, stderr)
	code := cmdutil.CodeOf(err)
	if err != nil && !errors.Is(err, context.Canceled) {
		var ee *cmdutil.ExitError
		if !errors.As(err, &ee) || ee.Err != nil {
			_, _ = fmt.Fprintln(stderr, "kblast:", err)
		}
	}
	return code
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
