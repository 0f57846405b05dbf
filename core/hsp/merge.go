// core/hsp/merge.go
package hsp

import (
	"sort"

	itree "github.com/rdleal/intervalst/interval"
)

// MergeOverlapping resolves redundant candidates per database sequence.
//
// Candidates are grouped by sequence (first-appearance order) and each group
// is swept by ascending DBStart. A candidate that overlaps no kept HSP of its
// sequence is kept; otherwise it is compared with the first overlapping kept
// HSP and replaces it only when Better. There is no transitive merging, so
// adjacent but disjoint regions both survive.
func MergeOverlapping(list []HSP) []HSP {
	if len(list) == 0 {
		return nil
	}

	var order []int
	groups := make(map[int][]HSP)
	for _, h := range list {
		if _, ok := groups[h.SeqIndex]; !ok {
			order = append(order, h.SeqIndex)
		}
		groups[h.SeqIndex] = append(groups[h.SeqIndex], h)
	}

	kept := make([]HSP, 0, len(order))
	for _, sid := range order {
		g := groups[sid]
		sort.SliceStable(g, func(i, j int) bool { return g[i].DBStart < g[j].DBStart })

		base := len(kept) // kept[base:] belong to sid
		seen := newCoverage()
		for _, h := range g {
			at := -1
			if seen.mayOverlap(h) {
				at = firstOverlap(kept[base:], h)
			}
			switch {
			case at < 0:
				kept = append(kept, h)
				seen.add(h)
			case Better(h, kept[base+at]):
				kept[base+at] = h
				seen.add(h)
			}
		}
	}
	return kept
}

func firstOverlap(kept []HSP, h HSP) int {
	for i := range kept {
		if Overlaps(kept[i], h) {
			return i
		}
	}
	return -1
}

// coverage remembers every range that was ever kept for one sequence.
// Superseded ranges are not removed, so a hit only means "scan kept";
// a miss is exact.
type coverage struct {
	tree   *itree.SearchTree[int, int]
	broken bool
}

func newCoverage() *coverage {
	return &coverage{tree: itree.NewSearchTree[int, int](func(x, y int) int { return x - y })}
}

func (c *coverage) add(h HSP) {
	if err := c.tree.Insert(h.DBStart, h.DBEnd, h.DBStart); err != nil {
		c.broken = true
	}
}

func (c *coverage) mayOverlap(h HSP) bool {
	if c.broken {
		return true
	}
	// widened by one so endpoint conventions of the tree cannot hide a touch
	_, ok := c.tree.AnyIntersection(h.DBStart-1, h.DBEnd+1)
	return ok
}
