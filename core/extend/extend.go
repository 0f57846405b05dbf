// core/extend/extend.go
package extend

import (
	"kblast/core/hsp"
	"kblast/core/sequence"
)

// Scoring scheme for ungapped extension.
const (
	Match    = 2
	Mismatch = -1
	XDrop    = 20 // stop a pass once running < best - XDrop
)

func pair(a, b byte) int {
	if a == b {
		return Match
	}
	return Mismatch
}

// Extend grows an ungapped alignment from the seed pair (dbSeed, qSeed) in
// both directions. Each pass starts next to the seed, tracks the pair where a
// strictly higher running score is first reached, and stops at a boundary or
// on X-drop. The reported score is re-summed over the final range so the
// seed position itself is counted.
func Extend(target sequence.Sequence, query string, dbSeed, qSeed int) hsp.HSP {
	db := target.Content

	// ---- right ----
	dbEnd, qEnd := dbSeed, qSeed
	run, best := 0, 0
	for d, q := dbSeed+1, qSeed+1; d < len(db) && q < len(query); d, q = d+1, q+1 {
		run += pair(db[d], query[q])
		if run > best {
			best, dbEnd, qEnd = run, d, q
		}
		if run < best-XDrop {
			break
		}
	}

	// ---- left ----
	dbStart, qStart := dbSeed, qSeed
	run, best = 0, 0
	for d, q := dbSeed-1, qSeed-1; d >= 0 && q >= 0; d, q = d-1, q-1 {
		run += pair(db[d], query[q])
		if run > best {
			best, dbStart, qStart = run, d, q
		}
		if run < best-XDrop {
			break
		}
	}

	return hsp.HSP{
		SeqIndex: target.Index,
		DBStart:  dbStart,
		DBEnd:    dbEnd,
		QStart:   qStart,
		QEnd:     qEnd,
		Score:    Score(db, query, dbStart, dbEnd, qStart, qEnd),
		Identity: Identity(db, query, dbStart, dbEnd, qStart, qEnd),
	}
}

// Score sums match/mismatch over the inclusive ranges walked in lockstep.
// An empty or inverted range scores 0.
func Score(db, query string, dbStart, dbEnd, qStart, qEnd int) int {
	s := 0
	for d, q := dbStart, qStart; d <= dbEnd && q <= qEnd; d, q = d+1, q+1 {
		s += pair(db[d], query[q])
	}
	return s
}

// Identity is the percentage of matching pairs over the inclusive ranges, or
// 0 when either range is inverted.
func Identity(db, query string, dbStart, dbEnd, qStart, qEnd int) float64 {
	if dbEnd < dbStart || qEnd < qStart {
		return 0
	}
	matches, total := 0, 0
	for d, q := dbStart, qStart; d <= dbEnd && q <= qEnd; d, q = d+1, q+1 {
		total++
		if db[d] == query[q] {
			matches++
		}
	}
	if total == 0 {
		return 0
	}
	return 100 * float64(matches) / float64(total)
}
