// internal/appcore/writer_factories.go
package appcore

import (
	"io"

	"kblast/internal/engine"
	"kblast/internal/output"
	"kblast/internal/writers"
)

// ResultWriterFactory picks and starts the writer for one run.
type ResultWriterFactory struct {
	Format string
	Header bool
}

func NewResultWriterFactory(format string, header bool) ResultWriterFactory {
	return ResultWriterFactory{Format: format, Header: header}
}

// NeedAlignments reports whether the format shows alignment lines.
func (w ResultWriterFactory) NeedAlignments() bool {
	return w.Format != output.FormatTSV
}

func (w ResultWriterFactory) Start(out io.Writer, bufSize int) (chan<- engine.Result, <-chan error) {
	return writers.StartResultWriter(out, w.Format, writers.Options{Header: w.Header}, bufSize)
}
