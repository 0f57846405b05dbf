// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"kblast/core/fasta"
	"kblast/internal/cmdutil"
	"kblast/internal/engine"
	"kblast/internal/pipeline"
	"kblast/internal/writers"
)

// Options is what a search run needs beyond its writer.
type Options struct {
	DBFile    string
	QueryFile string

	K    int
	TopN int

	Progress        bool
	NoMatchExitCode int
}

// WriterFactory starts the output goroutine.
type WriterFactory interface {
	NeedAlignments() bool
	Start(out io.Writer, bufSize int) (chan<- engine.Result, <-chan error)
}

// Run loads both inputs, indexes the database, searches every query and
// streams the results through the writer. The returned error carries the
// exit code (see cmdutil.CodeOf); nil means success.
func Run(
	parent context.Context,
	stdout, stderr io.Writer,
	l *log.Logger,
	o Options,
	wf WriterFactory,
) error {
	db, err := fasta.LoadDatabase(o.DBFile)
	if err != nil {
		return cmdutil.Exit(cmdutil.ExitUsage, err)
	}
	if len(db) == 0 {
		return cmdutil.Usagef("no sequences found in database file %s", o.DBFile)
	}
	queries, err := fasta.LoadQueries(o.QueryFile)
	if err != nil {
		return cmdutil.Exit(cmdutil.ExitUsage, err)
	}
	if len(queries) == 0 {
		return cmdutil.Usagef("no queries found in query file %s", o.QueryFile)
	}
	l.WithFields(log.Fields{
		"sequences": humanize.Comma(int64(len(db))),
		"bases":     humanize.Comma(int64(db.TotalBases())),
		"queries":   humanize.Comma(int64(len(queries))),
	}).Info("inputs loaded")

	eng, err := engine.New(engine.Config{K: o.K, TopN: o.TopN, Alignments: wf.NeedAlignments()}, db)
	if err != nil {
		return cmdutil.Exit(cmdutil.ExitUsage, err)
	}
	st := eng.Index().Stats()
	l.WithFields(log.Fields{
		"k":       o.K,
		"keys":    humanize.Comma(int64(st.Keys)),
		"indexed": humanize.Comma(int64(st.Indexed)),
		"skipped": humanize.Comma(int64(st.Skipped)),
	}).Info("index built")

	outw := bufio.NewWriter(stdout)
	inCh, writeErr := wf.Start(outw, 4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	stats, perr := cmdutil.RunStream(ctx,
		pipeline.Config{Progress: o.Progress, ProgressOut: stderr, Log: l},
		queries, eng, inCh)
	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return nil
	} else if werr != nil {
		return cmdutil.Exit(cmdutil.ExitRuntime, errors.Wrap(werr, "write results"))
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return nil
	} else if e != nil {
		return cmdutil.Exit(cmdutil.ExitRuntime, errors.Wrap(e, "write results"))
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return perr
		}
		return cmdutil.Exit(cmdutil.ExitRuntime, perr)
	}
	l.WithFields(log.Fields{
		"searched":  stats.Searched,
		"skipped":   stats.Skipped,
		"with_hits": stats.WithHits,
	}).Info("search finished")

	if stats.WithHits == 0 && o.NoMatchExitCode != 0 {
		return cmdutil.Exit(o.NoMatchExitCode, nil)
	}
	return nil
}
