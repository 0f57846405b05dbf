// internal/engine/engine.go
package engine

import (
	"kblast/core/align"
	"kblast/core/hsp"
	"kblast/core/index"
	"kblast/core/search"
	"kblast/core/sequence"
)

// Config holds search parameters.
type Config struct {
	K          int  // k-mer length, 1..16
	TopN       int  // hits kept per query (0 = all)
	Alignments bool // render alignment lines for each kept hit
}

// Engine owns a read-only database and its index.
type Engine struct {
	cfg Config
	db  sequence.Database
	idx *index.Index
}

// New indexes db at cfg.K.
func New(c Config, db sequence.Database) (*Engine, error) {
	idx, err := index.Build(db, c.K)
	if err != nil {
		return nil, err
	}
	return &Engine{cfg: c, db: db, idx: idx}, nil
}

// Index exposes the built index for statistics.
func (e *Engine) Index() *index.Index { return e.idx }

// Database returns the searched records.
func (e *Engine) Database() sequence.Database { return e.db }

// Search seeds, extends, merges and ranks one query.
func (e *Engine) Search(q sequence.Query) (Result, error) {
	cands, err := search.FindCandidates(q.Content, e.db, e.idx, e.cfg.K)
	if err != nil {
		return Result{}, err
	}
	merged := hsp.MergeOverlapping(cands)
	hsp.Rank(merged)

	n := len(merged)
	if e.cfg.TopN > 0 && e.cfg.TopN < n {
		n = e.cfg.TopN
	}
	res := Result{Query: q, Candidates: len(cands), Merged: len(merged), Hits: make([]Hit, 0, n)}
	for i, h := range merged[:n] {
		s := e.db[h.SeqIndex]
		hit := Hit{HSP: h, Rank: i + 1, SequenceID: s.ID, Species: s.Species}
		if e.cfg.Alignments {
			hit.DBLine, hit.MatchLine, hit.QLine = align.Strings(s.Content, q.Content, h.DBStart, h.DBEnd, h.QStart, h.QEnd)
		}
		res.Hits = append(res.Hits, hit)
	}
	return res, nil
}
