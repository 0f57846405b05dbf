// internal/output/json.go
package output

import (
	"io"

	"kblast/internal/engine"
	"kblast/internal/jsonutil"
	"kblast/pkg/api"
)

// ToAPIHit converts a domain Hit to the stable wire schema (v1).
func ToAPIHit(h engine.Hit) api.HitV1 {
	return api.HitV1{
		Rank:       h.Rank,
		SequenceID: h.SequenceID,
		Species:    h.Species,
		Score:      h.Score,
		Identity:   h.Identity,
		DBStart:    h.DBStart,
		DBEnd:      h.DBEnd,
		QStart:     h.QStart,
		QEnd:       h.QEnd,
		DBAligned:  h.DBLine,
		MatchLine:  h.MatchLine,
		QAligned:   h.QLine,
	}
}

// ToAPIResult converts one query's result. Hits is never nil so JSON shows [].
func ToAPIResult(r engine.Result) api.QueryResultV1 {
	v := api.QueryResultV1{
		Query:       r.Query.Name,
		QueryLength: r.Query.Len(),
		Candidates:  r.Candidates,
		Merged:      r.Merged,
		Hits:        make([]api.HitV1, 0, len(r.Hits)),
	}
	if best, ok := r.Best(); ok {
		v.BestSpecies = best.Species
	}
	for _, h := range r.Hits {
		v.Hits = append(v.Hits, ToAPIHit(h))
	}
	return v
}

// WriteJSON writes a single JSON array of v1 results (pretty-indented).
func WriteJSON(w io.Writer, list []engine.Result) error {
	out := make([]api.QueryResultV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIResult(r))
	}
	return jsonutil.EncodePretty(w, out)
}
