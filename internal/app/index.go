package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"kblast/core/fasta"
	"kblast/core/index"
	"kblast/core/kmer"
	"kblast/internal/cmdutil"
	"kblast/internal/config"
	"kblast/internal/jsonutil"
	"kblast/internal/output"
	"kblast/internal/writers"
	"kblast/pkg/api"
)

func runIndex(ctx context.Context, c config.Config, stdout, stderr io.Writer) error {
	l := cmdutil.NewLogger(stderr, c.Quiet, c.Verbose)

	db, err := fasta.LoadDatabase(c.DB)
	if err != nil {
		return cmdutil.Exit(cmdutil.ExitUsage, err)
	}
	if len(db) == 0 {
		return cmdutil.Usagef("no sequences found in database file %s", c.DB)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	idx, err := index.Build(db, c.K)
	if err != nil {
		return cmdutil.Exit(cmdutil.ExitUsage, err)
	}
	st := idx.Stats()
	l.WithFields(log.Fields{"k": c.K, "keys": st.Keys}).Info("index built")

	stats := api.IndexStatsV1{
		File:      c.DB,
		K:         c.K,
		Sequences: st.Sequences,
		Bases:     db.TotalBases(),
		Windows:   st.Windows,
		Indexed:   st.Indexed,
		Skipped:   st.Skipped,
		Keys:      st.Keys,
	}

	w := bufio.NewWriter(stdout)
	if err := writeIndex(w, c.Output, stats); err != nil {
		return writeErr(err)
	}
	if c.Dump {
		if err := dumpKeys(ctx, w, idx); err != nil {
			return writeErr(err)
		}
	}
	return writeErr(w.Flush())
}

func writeErr(err error) error {
	switch {
	case err == nil, writers.IsBrokenPipe(err):
		return nil
	case errors.Is(err, context.Canceled):
		return err
	}
	return cmdutil.Exit(cmdutil.ExitRuntime, errors.Wrap(err, "write index report"))
}

func writeIndex(w io.Writer, format string, s api.IndexStatsV1) error {
	switch format {
	case output.FormatJSON:
		return jsonutil.EncodePretty(w, s)
	case output.FormatJSONL:
		return jsonutil.EncodeLine(w, s)
	case output.FormatTSV:
		_, err := fmt.Fprintf(w, "file\t%s\nk\t%d\nsequences\t%d\nbases\t%d\nwindows\t%d\nindexed\t%d\nskipped\t%d\nkeys\t%d\n",
			s.File, s.K, s.Sequences, s.Bases, s.Windows, s.Indexed, s.Skipped, s.Keys)
		return err
	default:
		_, err := fmt.Fprintf(w, "Database:   %s\nk:          %d\nSequences:  %s\nBases:      %s\nWindows:    %s\nIndexed:    %s\nSkipped:    %s\nDistinct:   %s\n",
			s.File, s.K,
			humanize.Comma(int64(s.Sequences)),
			humanize.Comma(int64(s.Bases)),
			humanize.Comma(int64(s.Windows)),
			humanize.Comma(int64(s.Indexed)),
			humanize.Comma(int64(s.Skipped)),
			humanize.Comma(int64(s.Keys)))
		return err
	}
}

// dumpKeys lists every indexed k-mer in key order with its occurrence count.
func dumpKeys(ctx context.Context, w io.Writer, idx *index.Index) error {
	for i, key := range idx.Keys() {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s\t%d\n", kmer.Decode(key, idx.K()), len(idx.Lookup(key))); err != nil {
			return err
		}
	}
	return nil
}
