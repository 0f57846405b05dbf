// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"kblast/internal/engine"
	"kblast/internal/jsonlutil"
	"kblast/internal/output"
)

// StartResultJSONLWriter streams each engine.Result as one JSON line (v1).
func StartResultJSONLWriter(out io.Writer, bufSize int) (chan<- engine.Result, <-chan error) {
	return jsonlutil.Start[engine.Result](out, bufSize,
		func(enc *json.Encoder, r engine.Result) error {
			return enc.Encode(output.ToAPIResult(r))
		},
		IsBrokenPipe,
	)
}

func streamJSONL(w io.Writer, in <-chan engine.Result, _ Options) error {
	enc, done := StartResultJSONLWriter(w, 0)
	for r := range in {
		enc <- r
	}
	close(enc)
	return <-done
}
