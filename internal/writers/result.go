// internal/writers/result.go
package writers

import (
	"io"

	"kblast/internal/engine"
	"kblast/internal/output"
)

func init() {
	Register(output.FormatText, func(w io.Writer, in <-chan engine.Result, _ Options) error {
		return output.StreamText(w, in)
	})
	Register(output.FormatTSV, func(w io.Writer, in <-chan engine.Result, o Options) error {
		return output.StreamTSV(w, in, o.Header)
	})
	Register(output.FormatJSON, func(w io.Writer, in <-chan engine.Result, _ Options) error {
		var buf []engine.Result
		for r := range in {
			buf = append(buf, r)
		}
		return output.WriteJSON(w, buf)
	})
	Register(output.FormatJSONL, streamJSONL)
}

// StartResultWriter spins up a writer goroutine for format. The caller closes
// the returned channel and then reads exactly one value from the error channel.
// An unknown format is reported there after draining the input.
func StartResultWriter(out io.Writer, format string, o Options, bufSize int) (chan<- engine.Result, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan engine.Result, bufSize)
	errCh := make(chan error, 1)

	go func() {
		fn, err := lookup(format)
		if err != nil {
			for range in {
			}
			errCh <- err
			return
		}
		err = fn(out, in, o)
		// keep the producer unblocked after a write failure
		for range in {
		}
		errCh <- err
	}()

	return in, errCh
}
