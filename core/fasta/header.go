// core/fasta/header.go
package fasta

import "strings"

// UnknownSpecies / UnknownQuery fill in missing header fields.
const (
	UnknownSpecies = "Unknown"
	UnknownQuery   = "Unknown"
)

// ParseDatabaseHeader splits ">id|species" at the first '|'. Without a pipe
// the whole header is the id and the species is UnknownSpecies.
func ParseDatabaseHeader(h string) (id, species string) {
	h = strings.TrimRight(h, "\r")
	if i := strings.IndexByte(h, '|'); i >= 0 {
		return h[:i], h[i+1:]
	}
	return h, UnknownSpecies
}

// ParseQueryHeader returns the header up to the first '|', or UnknownQuery
// when that is empty.
func ParseQueryHeader(h string) string {
	h = strings.TrimRight(h, "\r")
	if i := strings.IndexByte(h, '|'); i >= 0 {
		h = h[:i]
	}
	if h == "" {
		return UnknownQuery
	}
	return h
}
