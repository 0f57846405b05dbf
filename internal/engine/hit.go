// internal/engine/hit.go
package engine

import (
	"kblast/core/hsp"
	"kblast/core/sequence"
)

// Hit is a ranked HSP decorated with what the reports need.
type Hit struct {
	hsp.HSP
	Rank       int // 1-based position after ranking
	SequenceID string
	Species    string

	// alignment display lines, filled when Config.Alignments is set
	DBLine    string
	MatchLine string
	QLine     string
}

// Result is everything one query produced.
type Result struct {
	Query      sequence.Query
	Candidates int   // HSPs before merging
	Merged     int   // HSPs after merging, before top-N
	Hits       []Hit // ranked, truncated to Config.TopN
}

// Best returns the top-ranked hit.
func (r Result) Best() (Hit, bool) {
	if len(r.Hits) == 0 {
		return Hit{}, false
	}
	return r.Hits[0], true
}
