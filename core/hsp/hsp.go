// core/hsp/hsp.go
package hsp

import "sort"

// HSP is an ungapped local alignment between one database sequence and the
// query. Coordinates are 0-based and inclusive; DBEnd-DBStart == QEnd-QStart.
type HSP struct {
	SeqIndex int
	DBStart  int
	DBEnd    int
	QStart   int
	QEnd     int
	Score    int
	Identity float64 // percent, 0..100
}

// Len returns the aligned length.
func (h HSP) Len() int { return h.DBEnd - h.DBStart + 1 }

// Overlaps reports whether a and b hit the same sequence on intersecting
// database ranges.
func Overlaps(a, b HSP) bool {
	return a.SeqIndex == b.SeqIndex && !(a.DBEnd < b.DBStart || b.DBEnd < a.DBStart)
}

// Better is the replacement rule: strictly higher score, or equal score and
// strictly higher identity.
func Better(a, b HSP) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.Identity > b.Identity
}

// Rank orders by score desc, then identity desc. Equal entries keep their
// relative order.
func Rank(list []HSP) {
	sort.SliceStable(list, func(i, j int) bool { return Better(list[i], list[j]) })
}
