package cli

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/pkg/errors"

	"kblast/internal/cmdutil"
	"kblast/internal/config"
)

type capture struct {
	got   config.Config
	calls int
	err   error
}

func (c *capture) handle(_ context.Context, cfg config.Config, _, _ io.Writer) error {
	c.got = cfg
	c.calls++
	return c.err
}

func execute(t *testing.T, c *capture, argv ...string) error {
	t.Helper()
	root := NewRootCmd(Handlers{Search: c.handle, Index: c.handle, Config: c.handle}, config.New())
	var out, errOut bytes.Buffer
	return Execute(context.Background(), root, argv, &out, &errOut)
}

func TestSearchFlagsDecode(t *testing.T) {
	var c capture
	err := execute(t, &c, "search", "--db", "d.fa", "--query", "q.fa",
		"-k", "8", "--top", "0", "-o", "TSV", "--no-header", "--no-match-exit-code", "4", "-q", "--progress")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	want := config.Config{
		DB: "d.fa", Query: "q.fa", K: 8, Top: 0, Output: "tsv",
		NoHeader: true, NoMatchExitCode: 4, Quiet: true, Progress: true,
	}
	if c.got != want {
		t.Fatalf("config = %+v\nwant     %+v", c.got, want)
	}
}

func TestSearchDefaults(t *testing.T) {
	var c capture
	if err := execute(t, &c, "search", "--db", "d.fa", "--query", "q.fa"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if c.got.K != config.DefaultK || c.got.Top != config.DefaultTop || c.got.Output != config.DefaultOutput {
		t.Fatalf("defaults = %+v", c.got)
	}
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("KBLAST_K", "5")
	t.Setenv("KBLAST_NO_HEADER", "true")
	var c capture
	if err := execute(t, &c, "search", "--db", "d.fa", "--query", "q.fa"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if c.got.K != 5 || !c.got.NoHeader {
		t.Fatalf("env not applied: %+v", c.got)
	}
}

func TestUsageErrorsDoNotRunHandler(t *testing.T) {
	for _, argv := range [][]string{
		{"search", "--db", "d.fa"},
		{"search", "--db", "d.fa", "--query", "q.fa", "-k", "17"},
		{"search", "--db", "d.fa", "--query", "q.fa", "-o", "xml"},
		{"search", "--nope"},
		{"index"},
		{"nope"},
	} {
		var c capture
		err := execute(t, &c, argv...)
		if cmdutil.CodeOf(err) != cmdutil.ExitUsage {
			t.Errorf("%v: code %d (%v), want usage", argv, cmdutil.CodeOf(err), err)
		}
		if c.calls != 0 {
			t.Errorf("%v: handler ran", argv)
		}
	}
}

func TestHandlerErrorsClassified(t *testing.T) {
	c := capture{err: errors.New("boom")}
	err := execute(t, &c, "search", "--db", "d.fa", "--query", "q.fa")
	if cmdutil.CodeOf(err) != cmdutil.ExitRuntime {
		t.Fatalf("plain handler error: code %d", cmdutil.CodeOf(err))
	}

	c = capture{err: cmdutil.Exit(9, nil)}
	err = execute(t, &c, "search", "--db", "d.fa", "--query", "q.fa")
	if cmdutil.CodeOf(err) != 9 {
		t.Fatalf("coded handler error: code %d", cmdutil.CodeOf(err))
	}

	c = capture{err: errors.Wrap(context.Canceled, "search")}
	err = execute(t, &c, "search", "--db", "d.fa", "--query", "q.fa")
	if cmdutil.CodeOf(err) != cmdutil.ExitCanceled {
		t.Fatalf("canceled: code %d", cmdutil.CodeOf(err))
	}
}

func TestIndexDump(t *testing.T) {
	var c capture
	if err := execute(t, &c, "index", "--db", "d.fa", "-k", "4", "--dump", "-o", "json"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !c.got.Dump || c.got.K != 4 || c.got.Output != "json" || c.got.DB != "d.fa" {
		t.Fatalf("index config = %+v", c.got)
	}
}
