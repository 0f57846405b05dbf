package cmdutil

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"kblast/core/sequence"
	"kblast/internal/engine"
	"kblast/internal/pipeline"
)

func TestNewLoggerLevels(t *testing.T) {
	cases := []struct {
		quiet, verbose bool
		want           log.Level
	}{
		{false, false, log.WarnLevel},
		{false, true, log.InfoLevel},
		{true, false, log.ErrorLevel},
		{true, true, log.ErrorLevel},
	}
	for _, c := range cases {
		if got := NewLogger(&bytes.Buffer{}, c.quiet, c.verbose).GetLevel(); got != c.want {
			t.Errorf("quiet=%v verbose=%v: level %v, want %v", c.quiet, c.verbose, got, c.want)
		}
	}
}

func TestWarnfWrites(t *testing.T) {
	var b bytes.Buffer
	Warnf(NewLogger(&b, false, false), "x=%d", 5)
	if !strings.Contains(b.String(), "x=5") || !strings.Contains(b.String(), "warning") {
		t.Fatalf("got %q", b.String())
	}
	var q bytes.Buffer
	Warnf(NewLogger(&q, true, false), "hidden")
	if q.Len() != 0 {
		t.Fatalf("quiet logger wrote %q", q.String())
	}
	Warnf(nil, "no logger")
}

func TestCodeOf(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{errors.New("x"), ExitRuntime},
		{Usagef("bad %s", "flag"), ExitUsage},
		{errors.Wrap(Exit(7, errors.New("y")), "ctx"), 7},
		{errors.Wrap(context.Canceled, "search"), ExitCanceled},
		{Exit(ExitRuntime, context.Canceled), ExitCanceled},
	}
	for i, c := range cases {
		if got := CodeOf(c.err); got != c.want {
			t.Errorf("case %d: CodeOf(%v) = %d, want %d", i, c.err, got, c.want)
		}
	}
	if Exit(4, nil).Error() != "exit 4" {
		t.Fatal("nil-error message")
	}
}

type fake struct{}

func (fake) Search(q sequence.Query) (engine.Result, error) { return engine.Result{Query: q}, nil }

func TestRunStream(t *testing.T) {
	out := make(chan engine.Result, 4)
	st, err := RunStream(context.Background(), pipeline.Config{},
		[]sequence.Query{{Name: "a", Content: "A"}, {Name: "b", Content: "C"}}, fake{}, out)
	if err != nil || st.Searched != 2 || len(out) != 2 {
		t.Fatalf("st=%+v err=%v buffered=%d", st, err, len(out))
	}
}

func TestRunStreamCanceledWhileBlocked(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	out := make(chan engine.Result) // nobody reads
	go cancel()
	_, err := RunStream(ctx, pipeline.Config{}, []sequence.Query{{Name: "a", Content: "A"}}, fake{}, out)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}
