// internal/cmdutil/run.go
package cmdutil

import (
	"context"

	"kblast/core/sequence"
	"kblast/internal/engine"
	"kblast/internal/pipeline"
)

// RunStream runs the query pipeline and streams every result into out,
// giving up when ctx is done. out is not closed.
func RunStream(
	ctx context.Context,
	cfg pipeline.Config,
	queries []sequence.Query,
	s pipeline.Searcher,
	out chan<- engine.Result,
) (pipeline.Stats, error) {
	return pipeline.ForEachResult(ctx, cfg, queries, s, func(r engine.Result) error {
		select {
		case out <- r:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})
}
