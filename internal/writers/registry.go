// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"kblast/internal/engine"
)

// Options tweak a result writer.
type Options struct {
	Header bool // TSV header row
}

// StreamFunc drains in and renders every result to w.
type StreamFunc func(w io.Writer, in <-chan engine.Result, o Options) error

// ResultWriters is the format → handler registry, filled from init blocks.
var ResultWriters = map[string]StreamFunc{}

// Register adds or replaces the writer for format (last wins).
func Register(format string, fn StreamFunc) { ResultWriters[format] = fn }

// Registered lists the known formats, sorted.
func Registered() []string {
	out := make([]string, 0, len(ResultWriters))
	for f := range ResultWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

func lookup(format string) (StreamFunc, error) {
	fn, ok := ResultWriters[format]
	if !ok {
		return nil, fmt.Errorf("unknown result format %q (no writer registered)", format)
	}
	return fn, nil
}
