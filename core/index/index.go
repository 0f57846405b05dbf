// core/index/index.go
package index

import (
	"github.com/twotwotwo/sorts/sortutil"

	"kblast/core/kmer"
	"kblast/core/sequence"
)

// Occurrence is one indexed k-mer window: sequence index and 0-based start.
type Occurrence struct {
	SeqIndex int
	Pos      int
}

// Stats summarizes a build.
type Stats struct {
	Sequences int // records scanned
	Windows   int // k-length windows considered
	Indexed   int // windows stored (alphabet-valid)
	Skipped   int // windows dropped for holding a non-ACGT byte
	Keys      int // distinct keys
}

// Index maps each k-mer key to every occurrence in the database, in
// (sequence, position) order. It is never modified after Build.
type Index struct {
	k     int
	table map[kmer.Key][]Occurrence
	stats Stats
}

// Build indexes every alphabet-valid window of every sequence. k is checked
// before any work; an empty database yields an empty index.
func Build(db sequence.Database, k int) (*Index, error) {
	if err := kmer.ValidateK(k); err != nil {
		return nil, err
	}
	idx := &Index{
		k:     k,
		table: make(map[kmer.Key][]Occurrence),
	}
	for _, s := range db {
		idx.stats.Sequences++
		for i := 0; i <= len(s.Content)-k; i++ {
			idx.stats.Windows++
			key, ok := kmer.EncodeAt(s.Content, i, k)
			if !ok {
				idx.stats.Skipped++
				continue
			}
			idx.table[key] = append(idx.table[key], Occurrence{SeqIndex: s.Index, Pos: i})
			idx.stats.Indexed++
		}
	}
	idx.stats.Keys = len(idx.table)
	return idx, nil
}

// K returns the k-mer length the index was built with.
func (x *Index) K() int { return x.k }

// Lookup returns the occurrences of key, or nil. The slice is shared; callers
// must not modify it.
func (x *Index) Lookup(key kmer.Key) []Occurrence { return x.table[key] }

// Stats returns build counters.
func (x *Index) Stats() Stats { return x.stats }

// Keys lists the distinct keys in ascending order.
func (x *Index) Keys() []kmer.Key {
	raw := make([]uint32, 0, len(x.table))
	for k := range x.table {
		raw = append(raw, uint32(k))
	}
	sortutil.Uint32s(raw)
	keys := make([]kmer.Key, len(raw))
	for i, v := range raw {
		keys[i] = kmer.Key(v)
	}
	return keys
}
