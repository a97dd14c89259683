// Package adjacency provides the read-only neighbor index that every
// pathfinding and move-validation step consults.
//
// An Index is built once per graph in O(E log d) and never mutated
// afterwards; a rebuilt graph gets a new Index. Neighbor lists are kept
// sorted (lexicographic id order) so traversal order is reproducible.
//
// Concurrency: an Index is immutable after construction and safe for
// concurrent readers.
package adjacency

import (
	"sort"

	"github.com/katalvlaran/constellation/constellation"
)

// Index maps node id to its neighbor set.
type Index struct {
	set    map[string]map[string]struct{}
	sorted map[string][]string
	edges  int
}

// New indexes g. Isolated nodes (possible only for hand-built graphs) are
// registered with no neighbors.
func New(g *constellation.Graph) *Index {
	b := newBuilder(len(g.Nodes))
	for _, n := range g.Nodes {
		b.vertex(n.ID)
	}
	for _, e := range g.Edges {
		b.link(e.Source, e.Target)
	}
	return b.finish()
}

// FromPairs indexes an explicit undirected edge list. Self-pairs are ignored.
func FromPairs(pairs [][2]string) *Index {
	b := newBuilder(len(pairs))
	for _, p := range pairs {
		b.vertex(p[0])
		b.vertex(p[1])
		b.link(p[0], p[1])
	}
	return b.finish()
}

type builder struct{ idx *Index }

func newBuilder(n int) *builder {
	return &builder{idx: &Index{
		set:    make(map[string]map[string]struct{}, n),
		sorted: make(map[string][]string, n),
	}}
}

func (b *builder) vertex(id string) {
	if _, ok := b.idx.set[id]; !ok {
		b.idx.set[id] = make(map[string]struct{})
	}
}

func (b *builder) link(u, v string) {
	if u == v {
		return
	}
	b.vertex(u)
	b.vertex(v)
	if _, dup := b.idx.set[u][v]; dup {
		return
	}
	b.idx.set[u][v] = struct{}{}
	b.idx.set[v][u] = struct{}{}
	b.idx.edges++
}

func (b *builder) finish() *Index {
	for id, nbrs := range b.idx.set {
		list := make([]string, 0, len(nbrs))
		for n := range nbrs {
			list = append(list, n)
		}
		sort.Strings(list)
		b.idx.sorted[id] = list
	}
	return b.idx
}

// Has reports whether id is a node of the indexed graph.
func (x *Index) Has(id string) bool {
	_, ok := x.set[id]
	return ok
}

// Adjacent reports whether a and b share an edge.
func (x *Index) Adjacent(a, b string) bool {
	_, ok := x.set[a][b]
	return ok
}

// Neighbors returns a sorted copy of id's neighbors (nil if id is unknown).
func (x *Index) Neighbors(id string) []string {
	list, ok := x.sorted[id]
	if !ok {
		return nil
	}
	return append([]string(nil), list...)
}

// EachNeighbor calls fn for every neighbor of id in sorted order until fn
// returns false. It does not allocate.
func (x *Index) EachNeighbor(id string, fn func(nbr string) bool) {
	for _, n := range x.sorted[id] {
		if !fn(n) {
			return
		}
	}
}

// Degree is the number of neighbors of id.
func (x *Index) Degree(id string) int { return len(x.sorted[id]) }

// Len is the number of indexed nodes.
func (x *Index) Len() int { return len(x.set) }

// EdgeCount is the number of distinct undirected edges.
func (x *Index) EdgeCount() int { return x.edges }

// IDs returns every node id in sorted order.
func (x *Index) IDs() []string {
	out := make([]string, 0, len(x.set))
	for id := range x.set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
