// core/search/search.go
package search

import (
	"github.com/pkg/errors"

	"kblast/core/extend"
	"kblast/core/hsp"
	"kblast/core/index"
	"kblast/core/kmer"
	"kblast/core/sequence"
)

// FindCandidates seeds every valid query window of length k against idx and
// extends each occurrence. Windows holding a non-ACGT byte are skipped. The
// result is not deduplicated; overlapping candidates are expected.
func FindCandidates(query string, db sequence.Database, idx *index.Index, k int) ([]hsp.HSP, error) {
	if err := kmer.ValidateK(k); err != nil {
		return nil, err
	}
	if k != idx.K() {
		return nil, errors.Wrapf(kmer.ErrInvalidParameter, "k=%d does not match index k=%d", k, idx.K())
	}
	var out []hsp.HSP
	for p := 0; p <= len(query)-k; p++ {
		key, ok := kmer.EncodeAt(query, p, k)
		if !ok {
			continue
		}
		for _, o := range idx.Lookup(key) {
			out = append(out, extend.Extend(db[o.SeqIndex], query, o.Pos, p))
		}
	}
	return out, nil
}

// Search is FindCandidates at the index's own k.
func Search(query string, db sequence.Database, idx *index.Index) []hsp.HSP {
	out, _ := FindCandidates(query, db, idx, idx.K())
	return out
}
