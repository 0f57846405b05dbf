// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"io"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"kblast/core/sequence"
	"kblast/internal/engine"
)

// Config controls the query loop.
type Config struct {
	Progress    bool      // draw a progress bar
	ProgressOut io.Writer // where the bar goes (stderr)
	Log         log.FieldLogger
}

// Stats counts what happened to the queries.
type Stats struct {
	Queries  int // records seen
	Searched int
	Skipped  int // empty records
	WithHits int
	Hits     int // reported hits over all queries
}

func newBar(out io.Writer, total int) (*mpb.Progress, *mpb.Bar) {
	pbs := mpb.New(mpb.WithWidth(40), mpb.WithOutput(out))
	bar := pbs.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name("searched queries: ", decor.WC{W: len("searched queries: "), C: decor.DindentRight}),
			decor.Name("", decor.WCSyncSpaceR),
			decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.Name("ETA: ", decor.WC{W: len("ETA: ")}),
			decor.EwmaETA(decor.ET_STYLE_GO, 10),
			decor.OnComplete(decor.Name(""), ". done"),
		),
	)
	return pbs, bar
}

// ForEachResult searches queries in order and hands every result to visit.
// Empty queries are logged and skipped. ctx is checked between queries; the
// first error (including cancellation) stops the loop and is returned.
func ForEachResult(
	ctx context.Context,
	cfg Config,
	queries []sequence.Query,
	s Searcher,
	visit func(engine.Result) error,
) (Stats, error) {
	var st Stats

	var (
		pbs *mpb.Progress
		bar *mpb.Bar
	)
	if cfg.Progress && cfg.ProgressOut != nil && len(queries) > 0 {
		pbs, bar = newBar(cfg.ProgressOut, len(queries))
	}
	finish := func(err error) (Stats, error) {
		if pbs != nil {
			if err != nil {
				bar.Abort(false)
			}
			pbs.Wait()
		}
		return st, err
	}

	for _, q := range queries {
		if err := ctx.Err(); err != nil {
			return finish(err)
		}
		start := time.Now()
		st.Queries++

		if q.Len() == 0 {
			st.Skipped++
			if cfg.Log != nil {
				cfg.Log.WithField("query", q.Name).Warn("query is empty, skipping")
			}
		} else {
			res, err := s.Search(q)
			if err != nil {
				return finish(err)
			}
			st.Searched++
			if len(res.Hits) > 0 {
				st.WithHits++
				st.Hits += len(res.Hits)
			}
			if err := visit(res); err != nil {
				return finish(err)
			}
		}

		if bar != nil {
			bar.EwmaIncrBy(1, time.Since(start))
		}
	}
	return finish(nil)
}
