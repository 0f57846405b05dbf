package app

import (
	"context"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"kblast/internal/cmdutil"
	"kblast/internal/config"
	"kblast/internal/writers"
)

// runConfig prints the effective configuration; the output is a valid
// --config file.
func runConfig(_ context.Context, c config.Config, stdout, _ io.Writer) error {
	b, err := toml.Marshal(c)
	if err != nil {
		return cmdutil.Exit(cmdutil.ExitRuntime, errors.Wrap(err, "encode config"))
	}
	if _, err := stdout.Write(b); err != nil && !writers.IsBrokenPipe(err) {
		return cmdutil.Exit(cmdutil.ExitRuntime, errors.Wrap(err, "write config"))
	}
	return nil
}
