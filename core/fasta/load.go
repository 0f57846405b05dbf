// core/fasta/load.go
package fasta

import (
	"context"

	"kblast/core/sequence"
)

// LoadDatabase reads every reference record. Empty records are dropped and
// indices follow the kept records in file order.
func LoadDatabase(path string) (sequence.Database, error) {
	var recs []Record
	if err := EachRecord(path, func(r Record) error {
		recs = append(recs, r)
		return nil
	}); err != nil {
		return nil, err
	}
	return BuildDatabase(recs), nil
}

// BuildDatabase turns raw records into a Database.
func BuildDatabase(recs []Record) sequence.Database {
	kept := make([]sequence.Sequence, 0, len(recs))
	for _, r := range recs {
		if len(r.Seq) == 0 {
			continue
		}
		id, species := ParseDatabaseHeader(r.Header)
		kept = append(kept, sequence.Sequence{ID: id, Species: species, Content: string(r.Seq)})
	}
	return sequence.New(kept)
}

// ToQuery converts a raw record; empty content is preserved for the caller
// to report.
func ToQuery(r Record) sequence.Query {
	return sequence.Query{
		Name:    ParseQueryHeader(r.Header),
		Content: sequence.Normalize(string(r.Seq)),
	}
}

// StreamQueriesCtx emits queries one at a time in file order.
func StreamQueriesCtx(ctx context.Context, path string, emit func(sequence.Query) error) error {
	return EachRecordCtx(ctx, path, func(r Record) error { return emit(ToQuery(r)) })
}

// LoadQueries reads every query record, empty ones included.
func LoadQueries(path string) ([]sequence.Query, error) {
	var out []sequence.Query
	err := StreamQueriesCtx(context.Background(), path, func(q sequence.Query) error {
		out = append(out, q)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
