// internal/output/text.go
package output

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"kblast/internal/engine"
)

// SpeciesCell fits a species name into the table's first column.
func SpeciesCell(s string) string {
	r := []rune(s)
	if len(r) > SpeciesWidth {
		return string(r[:SpeciesWidth-3]) + "..."
	}
	return s
}

// FormatRow renders one summary table row.
func FormatRow(h engine.Hit) string {
	return fmt.Sprintf("%-14s%7d%12s%11s%9s",
		SpeciesCell(h.Species),
		h.Score,
		fmt.Sprintf("%.2f%%", h.Identity),
		fmt.Sprintf("%d-%d", h.DBStart, h.DBEnd),
		fmt.Sprintf("%d-%d", h.QStart, h.QEnd),
	)
}

func writeAlignment(w io.Writer, h engine.Hit) {
	n := len(h.DBLine)
	for i := 0; i < n; i += AlignWidth {
		end := i + AlignWidth
		if end > n {
			end = n
		}
		fmt.Fprintf(w, "DB:   %s\n", h.DBLine[i:end])
		fmt.Fprintf(w, "      %s\n", h.MatchLine[i:end])
		fmt.Fprintf(w, "Q:    %s\n", h.QLine[i:end])
		if end < n {
			fmt.Fprintln(w)
		}
	}
}

// WriteReport prints the human-readable block for one query.
func WriteReport(w io.Writer, r engine.Result) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "QUERY: %s   (%d bp)\n\n", r.Query.Name, r.Query.Len())

	best, ok := r.Best()
	if !ok {
		fmt.Fprintf(bw, "BEST HIT: %s\n", NoHits)
		return bw.Flush()
	}
	fmt.Fprintf(bw, "BEST HIT: %s\n\n", best.Species)

	fmt.Fprintln(bw, TableHeader)
	fmt.Fprintln(bw, strings.Repeat("-", len(TableHeader)))
	for _, h := range r.Hits {
		fmt.Fprintln(bw, FormatRow(h))
	}
	fmt.Fprintln(bw)

	for i, h := range r.Hits {
		if len(r.Hits) > 1 {
			fmt.Fprintf(bw, "Hit #%d (%s)\n", i+1, h.Species)
		}
		writeAlignment(bw, h)
		if i < len(r.Hits)-1 {
			fmt.Fprintln(bw)
		}
	}
	return bw.Flush()
}

// StreamText writes reports as they arrive, one blank line between queries.
func StreamText(w io.Writer, in <-chan engine.Result) error {
	first := true
	for r := range in {
		if !first {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		first = false
		if err := WriteReport(w, r); err != nil {
			return err
		}
	}
	return nil
}
