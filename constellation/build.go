package constellation

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/constellation/artist"
	"github.com/katalvlaran/constellation/dsu"
)

// candidate is a positive-similarity pair, indexed into the artist slice.
type candidate struct {
	i, j     int
	weight   float64
	accepted bool
}

// Build constructs the graph for artists.
//
// Fewer than two artists yield an empty graph and a nil error.
// Returns ErrInvalidArtists (wrapping artist.ErrEmptyID or
// artist.ErrDuplicateID) for malformed input.
func Build(artists []artist.Artist, opts ...Option) (*Graph, error) {
	cfg := newBuildConfig(opts...)

	if err := artist.Validate(artists); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "constellation: build"), ErrInvalidArtists)
	}
	if len(artists) < 2 {
		cfg.log.Debugw("too few artists, returning empty graph", "artists", len(artists))
		g := newGraph(cfg.maxDegree)
		for _, a := range artists {
			g.Dropped = append(g.Dropped, a.ID)
		}
		return g, nil
	}

	// 1. Materialize nodes.
	nodes := materialize(artists, cfg)

	// 2. Enumerate candidate pairs.
	cands := enumerate(artists, cfg.similarity)

	// 3. Strongest first; stable keeps (i,j) order for equal weights.
	sort.SliceStable(cands, func(a, b int) bool {
		return cands[a].weight > cands[b].weight
	})

	degree := make([]int, len(artists))

	// 4. Connectivity phase.
	bridges := connect(cands, degree, cfg.maxDegree)

	// 5. Densification phase.
	fill := densify(cands, degree, cfg.maxDegree)

	// 6. Assemble, dropping zero-degree nodes.
	g := assemble(artists, nodes, cands, degree, cfg.maxDegree)

	cfg.log.Debugw("graph built",
		"artists", len(artists),
		"candidates", len(cands),
		"bridges", bridges,
		"densified", fill,
		"nodes", len(g.Nodes),
		"dropped", len(g.Dropped),
	)
	return g, nil
}

func materialize(artists []artist.Artist, cfg buildConfig) []Node {
	total := float64(len(artists))
	nodes := make([]Node, len(artists))
	for i, a := range artists {
		ratio := float64(a.Rank) / total
		ratio = math.Max(0, math.Min(1, ratio))
		nodes[i] = Node{
			ID:         a.ID,
			Name:       a.Name,
			Genres:     append([]string(nil), a.Genres...),
			Rank:       a.Rank,
			Popularity: a.Popularity,
			Size:       cfg.minSize + (cfg.maxSize-cfg.minSize)*math.Pow(1-ratio, sizeExponent),
		}
	}
	return nodes
}

func enumerate(artists []artist.Artist, sim artist.SimilarityFunc) []candidate {
	var cands []candidate
	for i := 0; i < len(artists); i++ {
		for j := i + 1; j < len(artists); j++ {
			w := sim(artists[i], artists[j])
			// NaN and non-positive scores mean "unrelated".
			if !(w > 0) || math.IsInf(w, 0) {
				continue
			}
			cands = append(cands, candidate{i: i, j: j, weight: w})
		}
	}
	return cands
}

// connect accepts bridges between components in weight order, respecting the
// degree cap. It returns the number of accepted edges.
func connect(cands []candidate, degree []int, maxDegree int) int {
	forest := dsu.New(len(degree))
	accepted := 0
	for k := range cands {
		c := &cands[k]
		if forest.Connected(c.i, c.j) {
			continue
		}
		if degree[c.i] >= maxDegree || degree[c.j] >= maxDegree {
			continue
		}
		c.accepted = true
		degree[c.i]++
		degree[c.j]++
		forest.Union(c.i, c.j)
		accepted++
	}
	return accepted
}

// densify fills remaining degree capacity with the strongest unused edges.
func densify(cands []candidate, degree []int, maxDegree int) int {
	accepted := 0
	for k := range cands {
		c := &cands[k]
		if c.accepted {
			continue
		}
		if degree[c.i] >= maxDegree || degree[c.j] >= maxDegree {
			continue
		}
		c.accepted = true
		degree[c.i]++
		degree[c.j]++
		accepted++
	}
	return accepted
}

func assemble(artists []artist.Artist, nodes []Node, cands []candidate, degree []int, maxDegree int) *Graph {
	g := newGraph(maxDegree)
	for i, n := range nodes {
		if degree[i] == 0 {
			g.Dropped = append(g.Dropped, n.ID)
			continue
		}
		g.pos[n.ID] = len(g.Nodes)
		g.degree[n.ID] = degree[i]
		g.Nodes = append(g.Nodes, n)
	}
	for _, c := range cands {
		if !c.accepted {
			continue
		}
		g.Edges = append(g.Edges, Edge{
			Source:           artists[c.i].ID,
			Target:           artists[c.j].ID,
			SharedAttributes: artist.SharedGenreList(artists[c.i], artists[c.j]),
			Weight:           c.weight,
		})
	}
	return g
}

func newGraph(maxDegree int) *Graph {
	return &Graph{
		Nodes:     []Node{},
		Edges:     []Edge{},
		Clusters:  nil,
		MaxDegree: maxDegree,
		pos:       make(map[string]int),
		degree:    make(map[string]int),
	}
}
