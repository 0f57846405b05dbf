// core/sequence/sequence.go
package sequence

import "strings"

// Sequence is one database record. Content is uppercase and never modified
// after loading; Index is the record's position in its Database.
type Sequence struct {
	ID      string
	Species string
	Content string
	Index   int
}

// Len returns the number of bases.
func (s Sequence) Len() int { return len(s.Content) }

// Query is one record of a query file.
type Query struct {
	Name    string
	Content string
}

// Len returns the number of bases.
func (q Query) Len() int { return len(q.Content) }

// Database is the ordered, read-only set of reference sequences.
// Database[i].Index == i for every record built by New.
type Database []Sequence

// New assigns indices in order and normalizes content to uppercase.
func New(records []Sequence) Database {
	db := make(Database, len(records))
	for i, r := range records {
		r.Content = Normalize(r.Content)
		r.Index = i
		db[i] = r
	}
	return db
}

// TotalBases sums the content length of every record.
func (db Database) TotalBases() int {
	n := 0
	for _, s := range db {
		n += len(s.Content)
	}
	return n
}

// Normalize uppercases nucleotide content.
func Normalize(s string) string { return strings.ToUpper(s) }
