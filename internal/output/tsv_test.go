package output

import (
	"bytes"
	"strings"
	"testing"

	"kblast/internal/engine"
)

func TestTSVHeaderStable(t *testing.T) {
	const want = "query\tquery_length\trank\tsequence_id\tspecies\tscore\tidentity\tdb_start\tdb_end\tq_start\tq_end"
	if TSVHeader != want {
		t.Fatalf("TSVHeader changed:\n got:  %q\n want: %q", TSVHeader, want)
	}
}

func TestStreamTSV(t *testing.T) {
	in := make(chan engine.Result, 2)
	in <- oneHit()
	in <- engine.Result{}
	close(in)
	var b bytes.Buffer
	if err := StreamTSV(&b, in, true); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 2 || lines[0] != TSVHeader {
		t.Fatalf("lines = %q", lines)
	}
	if want := "q1\t6\t1\tidAlpha\tAlpha\t12\t100.00\t3\t8\t0\t5"; lines[1] != want {
		t.Fatalf("row = %q, want %q", lines[1], want)
	}
	if n := len(strings.Split(lines[1], "\t")); n != len(strings.Split(TSVHeader, "\t")) {
		t.Fatalf("row has %d columns", n)
	}
}

func TestFormatsStable(t *testing.T) {
	if FormatText != "text" || FormatTSV != "tsv" || FormatJSON != "json" || FormatJSONL != "jsonl" {
		t.Fatalf("output format constants changed")
	}
	if !IsFormat("jsonl") || IsFormat("fasta") {
		t.Fatalf("IsFormat wrong")
	}
}
