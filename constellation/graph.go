package constellation

import (
	"github.com/katalvlaran/constellation/cluster"
	"github.com/katalvlaran/constellation/dsu"
)

// Len is the number of nodes.
func (g *Graph) Len() int { return len(g.Nodes) }

// Empty reports whether the graph has no nodes.
func (g *Graph) Empty() bool { return len(g.Nodes) == 0 }

// Node returns the node with the given id.
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.pos[id]
	if !ok {
		return Node{}, false
	}
	return g.Nodes[i], true
}

// HasNode reports whether id survived the build.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.pos[id]
	return ok
}

// Degree returns the number of edges incident to id (0 if absent).
func (g *Graph) Degree(id string) int { return g.degree[id] }

// Members exposes the nodes in the form the cluster labeler consumes.
func (g *Graph) Members() []cluster.Member {
	out := make([]cluster.Member, len(g.Nodes))
	for i, n := range g.Nodes {
		out[i] = cluster.Member{ID: n.ID, Genres: n.Genres}
	}
	return out
}

// ApplyClusters labels the graph and colours every node. Calling it again
// replaces the previous labelling.
func (g *Graph) ApplyClusters(opts ...cluster.Option) []cluster.Cluster {
	members := g.Members()
	g.Clusters = cluster.Label(members, opts...)
	g.Colorize(g.Clusters, opts...)
	return g.Clusters
}

// Colorize sets Color and PrimaryGenre on each node from clusters.
func (g *Graph) Colorize(clusters []cluster.Cluster, opts ...cluster.Option) {
	assigned := cluster.Assign(g.Members(), clusters, opts...)
	for i := range g.Nodes {
		g.Nodes[i].Color = assigned[i].Color
		g.Nodes[i].PrimaryGenre = assigned[i].PrimaryGenre
	}
}

// Components partitions the node ids into connected components, each in node
// order, components ordered by their first node.
func (g *Graph) Components() [][]string {
	forest := dsu.New(len(g.Nodes))
	for _, e := range g.Edges {
		forest.Union(g.pos[e.Source], g.pos[e.Target])
	}

	byRoot := make(map[int]int)
	var comps [][]string
	for i, n := range g.Nodes {
		root := forest.Find(i)
		k, ok := byRoot[root]
		if !ok {
			k = len(comps)
			byRoot[root] = k
			comps = append(comps, nil)
		}
		comps[k] = append(comps[k], n.ID)
	}
	return comps
}

// Stats computes summary figures in O(V + E).
func (g *Graph) Stats() Stats {
	s := Stats{
		Nodes:      len(g.Nodes),
		Edges:      len(g.Edges),
		Components: len(g.Components()),
		Dropped:    len(g.Dropped),
	}
	for _, d := range g.degree {
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}
	if s.Nodes > 0 {
		s.MeanDegree = float64(2*s.Edges) / float64(s.Nodes)
	}
	return s
}
