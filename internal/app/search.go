package app

import (
	"context"
	"io"

	"kblast/internal/appcore"
	"kblast/internal/cmdutil"
	"kblast/internal/config"
)

func runSearch(ctx context.Context, c config.Config, stdout, stderr io.Writer) error {
	l := cmdutil.NewLogger(stderr, c.Quiet, c.Verbose)
	return appcore.Run(ctx, stdout, stderr, l, appcore.Options{
		DBFile:          c.DB,
		QueryFile:       c.Query,
		K:               c.K,
		TopN:            c.Top,
		Progress:        c.Progress,
		NoMatchExitCode: c.NoMatchExitCode,
	}, appcore.NewResultWriterFactory(c.Output, !c.NoHeader))
}
