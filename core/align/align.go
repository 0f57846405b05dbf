// core/align/align.go
package align

import "strings"

// Strings renders an ungapped alignment as three equal-length lines: the
// database slice, a match line ('|' on identity, ' ' otherwise) and the query
// slice. An inverted range yields three empty strings.
func Strings(db, q string, dbStart, dbEnd, qStart, qEnd int) (dbLine, matchLine, qLine string) {
	if dbEnd < dbStart || qEnd < qStart {
		return "", "", ""
	}
	var d, m, b strings.Builder
	for i, j := dbStart, qStart; i <= dbEnd && j <= qEnd; i, j = i+1, j+1 {
		d.WriteByte(db[i])
		b.WriteByte(q[j])
		if db[i] == q[j] {
			m.WriteByte('|')
		} else {
			m.WriteByte(' ')
		}
	}
	return d.String(), m.String(), b.String()
}
