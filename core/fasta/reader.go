// core/fasta/reader.go
package fasta

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/shenwei356/bio/seq"
	"github.com/shenwei356/bio/seqio/fastx"
)

func init() {
	// databases may carry IUPAC codes or junk; the k-mer scan decides validity
	seq.ValidateSeq = false
}

// Record is one raw FASTA entry: the full header line (without '>') and the
// residues as read.
type Record struct {
	Header string
	Seq    []byte
}

// isEmptyFile reports a zero-length regular file; fastx refuses those.
func isEmptyFile(path string) bool {
	if path == "-" {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular() && fi.Size() == 0
}

// EachRecordCtx reads plain or gzipped FASTA from path ("-" is stdin) and calls
// emit once per record, checking ctx between records. A non-nil error from
// emit stops the scan and is returned as is.
func EachRecordCtx(ctx context.Context, path string, emit func(Record) error) error {
	if isEmptyFile(path) {
		return nil
	}
	r, err := fastx.NewReader(nil, path, "")
	if err != nil {
		return errors.Wrapf(err, "open %s", path)
	}
	defer r.Close()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Wrapf(err, "read %s", path)
		}
		if err := emit(Record{
			Header: string(rec.Name),
			Seq:    append([]byte(nil), rec.Seq.Seq...),
		}); err != nil {
			return err
		}
	}
}

// EachRecord is EachRecordCtx with a background context.
func EachRecord(path string, emit func(Record) error) error {
	return EachRecordCtx(context.Background(), path, emit)
}
