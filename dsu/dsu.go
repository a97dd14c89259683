// Package dsu implements a disjoint-set (union-find) forest over dense integer
// indices, with path compression and union by rank.
//
// Callers map their own identifiers to indices 0..n-1 once and then work
// purely on ints, so no map lookups or dynamic key allocation
// happen inside Find/Union.
//
// Complexity: Find and Union are amortized O(α(n)); New is O(n).
package dsu

// Forest is a fixed-size disjoint-set structure. The zero value is empty and
// cannot hold elements; use New.
type Forest struct {
	parent []int32
	rank   []uint8
	sets   int
}

// New returns a forest of n singleton sets {0}, {1}, ..., {n-1}.
func New(n int) *Forest {
	if n < 0 {
		n = 0
	}
	f := &Forest{
		parent: make([]int32, n),
		rank:   make([]uint8, n),
		sets:   n,
	}
	for i := range f.parent {
		f.parent[i] = int32(i)
	}
	return f
}

// Len is the number of elements.
func (f *Forest) Len() int { return len(f.parent) }

// Sets is the current number of disjoint sets.
func (f *Forest) Sets() int { return f.sets }

// Find returns the representative of x's set. Out-of-range x returns -1.
func (f *Forest) Find(x int) int {
	if x < 0 || x >= len(f.parent) {
		return -1
	}
	u := int32(x)
	// Iterative find with path halving.
	for f.parent[u] != u {
		f.parent[u] = f.parent[f.parent[u]]
		u = f.parent[u]
	}
	return int(u)
}

// Union merges the sets containing x and y.
// It reports false when they were already in the same set (or out of range).
func (f *Forest) Union(x, y int) bool {
	rx, ry := f.Find(x), f.Find(y)
	if rx < 0 || ry < 0 || rx == ry {
		return false
	}
	// Attach smaller-rank tree under larger-rank root.
	switch {
	case f.rank[rx] < f.rank[ry]:
		f.parent[rx] = int32(ry)
	case f.rank[rx] > f.rank[ry]:
		f.parent[ry] = int32(rx)
	default:
		f.parent[ry] = int32(rx)
		f.rank[rx]++
	}
	f.sets--
	return true
}

// Connected reports whether x and y share a set.
func (f *Forest) Connected(x, y int) bool {
	rx := f.Find(x)
	return rx >= 0 && rx == f.Find(y)
}
