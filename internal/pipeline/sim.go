// internal/pipeline/sim.go
package pipeline

import (
	"kblast/core/sequence"
	"kblast/internal/engine"
)

// Searcher is the minimal capability the pipeline needs.
// Any engine (including fakes in tests) can satisfy this.
type Searcher interface {
	Search(q sequence.Query) (engine.Result, error)
}
