// internal/output/tsv.go
package output

import (
	"fmt"
	"io"
	"strconv"

	"kblast/internal/engine"
)

// FormatHitTSV returns one TSV row (no trailing newline).
func FormatHitTSV(r engine.Result, h engine.Hit) string {
	return fmt.Sprintf("%s\t%d\t%d\t%s\t%s\t%d\t%s\t%d\t%d\t%d\t%d",
		r.Query.Name, r.Query.Len(), h.Rank,
		h.SequenceID, h.Species,
		h.Score, strconv.FormatFloat(h.Identity, 'f', 2, 64),
		h.DBStart, h.DBEnd, h.QStart, h.QEnd,
	)
}

// StreamTSV writes one row per hit; queries without hits produce no rows.
func StreamTSV(w io.Writer, in <-chan engine.Result, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for r := range in {
		for _, h := range r.Hits {
			if _, err := fmt.Fprintln(w, FormatHitTSV(r, h)); err != nil {
				return err
			}
		}
	}
	return nil
}
