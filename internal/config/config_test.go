package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"

	"kblast/core/kmer"
)

func TestDefaults(t *testing.T) {
	c, err := Load(New())
	if err != nil {
		t.Fatal(err)
	}
	if c.K != 11 || c.Top != 2 || c.Output != "text" || c.NoHeader || c.NoMatchExitCode != 0 {
		t.Fatalf("defaults = %+v", c)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestEnvironment(t *testing.T) {
	t.Setenv("KBLAST_K", "7")
	t.Setenv("KBLAST_NO_HEADER", "true")
	t.Setenv("KBLAST_OUTPUT", "TSV")
	c, err := Load(New())
	if err != nil {
		t.Fatal(err)
	}
	if c.K != 7 || !c.NoHeader || c.Output != "tsv" {
		t.Fatalf("env config = %+v", c)
	}
}

func TestReadFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "kblast.toml")
	data := "k = 5\ntop = 0\ndb = \"ref.fa\"\n"
	if err := os.WriteFile(p, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	v := New()
	if err := ReadFile(v, p); err != nil {
		t.Fatal(err)
	}
	c, err := Load(v)
	if err != nil {
		t.Fatal(err)
	}
	if c.K != 5 || c.Top != 0 || c.DB != "ref.fa" {
		t.Fatalf("file config = %+v", c)
	}
	if err := ReadFile(New(), filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	base, _ := Load(New())

	bad := base
	bad.K = 17
	if err := bad.Validate(); !errors.Is(err, kmer.ErrInvalidParameter) {
		t.Errorf("k=17: %v", err)
	}
	bad = base
	bad.Top = -1
	if bad.Validate() == nil {
		t.Error("top=-1 accepted")
	}
	bad = base
	bad.Output = "fasta"
	if bad.Validate() == nil {
		t.Error("output=fasta accepted")
	}
	if base.ValidateSearch() == nil {
		t.Error("search without inputs accepted")
	}
	ok := base
	ok.DB, ok.Query = "a", "b"
	if err := ok.ValidateSearch(); err != nil {
		t.Errorf("valid search config rejected: %v", err)
	}
}
