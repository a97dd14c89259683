package constellation

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/constellation/cluster"
)

// ErrInvalidArtists wraps artist validation failures (empty or duplicate ids).
var ErrInvalidArtists = errors.New("constellation: invalid artist list")

// Node is one artist in the graph. Nodes are never mutated after Build except
// for Color and PrimaryGenre, which ApplyClusters fills in.
type Node struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Genres     []string `json:"genres"`
	Rank       int      `json:"rank"`
	Popularity int      `json:"popularity,omitempty"`

	// Size is a monotonically decreasing function of Rank.
	Size float64 `json:"size"`

	Color        string `json:"color,omitempty"`
	PrimaryGenre string `json:"primaryGenre,omitempty"`
}

// Edge is an undirected similarity link. Source precedes Target in input order.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`

	// SharedAttributes lists the genre tags both artists carry, in Source's
	// order. It may be empty when the weight came from provider similarity.
	SharedAttributes []string `json:"sharedAttributes,omitempty"`

	// Weight is strictly positive.
	Weight float64 `json:"weight"`
}

// PairKey identifies an unordered node pair.
type PairKey struct{ A, B string }

// Key returns the unordered pair key of e.
func (e Edge) Key() PairKey {
	return MakePairKey(e.Source, e.Target)
}

// MakePairKey orders a and b so (a,b) and (b,a) share a key.
func MakePairKey(a, b string) PairKey {
	if a > b {
		a, b = b, a
	}
	return PairKey{A: a, B: b}
}

// Graph is the built artist graph.
type Graph struct {
	// Nodes keeps input order and contains only nodes with degree >= 1.
	Nodes []Node `json:"nodes"`
	// Edges is ordered strongest first.
	Edges []Edge `json:"edges"`
	// Clusters is empty until ApplyClusters runs.
	Clusters []cluster.Cluster `json:"clusters"`
	// Dropped lists ids of input artists that got no edge.
	Dropped []string `json:"dropped,omitempty"`
	// MaxDegree is the cap the graph was built with.
	MaxDegree int `json:"maxDegree"`

	pos    map[string]int
	degree map[string]int
}

// Stats summarises a graph.
type Stats struct {
	Nodes      int     `json:"nodes"`
	Edges      int     `json:"edges"`
	Components int     `json:"components"`
	Dropped    int     `json:"dropped"`
	MaxDegree  int     `json:"maxDegree"`
	MeanDegree float64 `json:"meanDegree"`
}
