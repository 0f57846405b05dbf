// internal/output/common.go
package output

// Output formats.
const (
	FormatText  = "text"
	FormatTSV   = "tsv"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Formats lists every supported format in help order.
var Formats = []string{FormatText, FormatTSV, FormatJSON, FormatJSONL}

// IsFormat reports whether f is a supported format.
func IsFormat(f string) bool {
	for _, x := range Formats {
		if x == f {
			return true
		}
	}
	return false
}

// TSVHeader is the canonical header row for TSV output.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "query\tquery_length\trank\tsequence_id\tspecies\tscore\tidentity\tdb_start\tdb_end\tq_start\tq_end"

// Text report layout.
const (
	TableHeader  = "Species        Score   Identity   DB Range   Q Range"
	SpeciesWidth = 14 // longer names are cut to SpeciesWidth-3 plus "..."
	AlignWidth   = 74 // 80 columns minus the 6-column line prefix
	NoHits       = "No hits found"
)
