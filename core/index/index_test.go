package index

import (
	"strings"
	"testing"

	"github.com/pkg/errors"

	"kblast/core/kmer"
	"kblast/core/sequence"
)

func db(contents ...string) sequence.Database {
	recs := make([]sequence.Sequence, len(contents))
	for i, c := range contents {
		recs[i] = sequence.Sequence{ID: "s", Species: "x", Content: c}
	}
	return sequence.New(recs)
}

func allOccurrences(x *Index) []Occurrence {
	var out []Occurrence
	for _, k := range x.Keys() {
		out = append(out, x.Lookup(k)...)
	}
	return out
}

func TestBuildRejectsK(t *testing.T) {
	for _, k := range []int{0, 17} {
		if _, err := Build(db("ACGT"), k); !errors.Is(err, kmer.ErrInvalidParameter) {
			t.Errorf("k=%d: err = %v, want ErrInvalidParameter", k, err)
		}
	}
	if _, err := Build(db("ACGTACGTACGT"), 11); err != nil {
		t.Fatalf("k=11 must be accepted: %v", err)
	}
}

func TestBuildEmptyDatabase(t *testing.T) {
	x, err := Build(nil, 5)
	if err != nil {
		t.Fatalf("empty db: %v", err)
	}
	if x.Stats().Keys != 0 || len(x.Keys()) != 0 {
		t.Fatalf("expected empty index, got %+v", x.Stats())
	}
}

func TestInvalidWindowsExcluded(t *testing.T) {
	// every 5-window covering the N (offsets 1..5) must be skipped
	x, err := Build(db("AACGTNACGT"), 5)
	if err != nil {
		t.Fatal(err)
	}
	for _, o := range allOccurrences(x) {
		if o.Pos >= 1 && o.Pos <= 5 {
			t.Fatalf("window at %d covers the N but was indexed", o.Pos)
		}
	}
	st := x.Stats()
	if st.Windows != 6 || st.Skipped != 5 || st.Indexed != 1 {
		t.Fatalf("stats = %+v, want 6 windows / 5 skipped / 1 indexed", st)
	}
}

func TestACGTNAtK5(t *testing.T) {
	x, err := Build(db("ACGTN"), 5)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(allOccurrences(x)); n != 0 {
		t.Fatalf("ACGTN at k=5 produced %d occurrences", n)
	}
}

func TestOccurrencesDecodeBack(t *testing.T) {
	d := db("AAACCCGGGTTT", "acgtnnACGTAAAA", "GATTACA")
	const k = 4
	x, err := Build(d, k)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range x.Keys() {
		for _, o := range x.Lookup(key) {
			win := d[o.SeqIndex].Content[o.Pos : o.Pos+k]
			if kmer.Decode(key, k) != win {
				t.Fatalf("occurrence %+v: window %s does not decode from key %s", o, win, kmer.Decode(key, k))
			}
		}
	}
}

func TestOccurrenceBoundPerSequence(t *testing.T) {
	d := db("ACGTACGTAC", "AC", "TTTTTT")
	for k := 1; k <= 12; k++ {
		x, err := Build(d, k)
		if err != nil {
			t.Fatal(err)
		}
		per := map[int]int{}
		for _, o := range allOccurrences(x) {
			per[o.SeqIndex]++
		}
		for i, s := range d {
			max := len(s.Content) - k + 1
			if max < 0 {
				max = 0
			}
			if per[i] > max {
				t.Fatalf("k=%d seq %d: %d occurrences > %d", k, i, per[i], max)
			}
		}
	}
}

func TestInsertionOrder(t *testing.T) {
	x, err := Build(db("AAAA", "CAAA"), 2)
	if err != nil {
		t.Fatal(err)
	}
	got := x.Lookup(0) // AA
	want := []Occurrence{{0, 0}, {0, 1}, {0, 2}, {1, 1}, {1, 2}}
	if len(got) != len(want) {
		t.Fatalf("AA occurrences = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("AA occurrences = %v, want %v", got, want)
		}
	}
}

func TestKeysAscending(t *testing.T) {
	x, err := Build(db(strings.Repeat("TGCA", 5)), 3)
	if err != nil {
		t.Fatal(err)
	}
	keys := x.Keys()
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Fatalf("keys not ascending: %v", keys)
		}
	}
	if x.K() != 3 {
		t.Fatalf("K() = %d", x.K())
	}
}

func TestLookupMissing(t *testing.T) {
	x, err := Build(db("AAAA"), 2)
	if err != nil {
		t.Fatal(err)
	}
	key, _ := kmer.Encode("GG")
	if occ := x.Lookup(key); occ != nil {
		t.Fatalf("Lookup(GG) = %v, want nil", occ)
	}
}
