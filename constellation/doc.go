// Package constellation turns a ranked artist list into a degree-bounded,
// connectivity-preserving similarity graph.
//
// What
//
//   - One Node per artist; Size decreases with rank.
//   - Edges come only from artist pairs with positive similarity.
//   - No node exceeds MaxDegree (default 5).
//   - Every node has at least one edge; artists that end up with none are
//     dropped and listed in Graph.Dropped.
//   - If the raw similarity relation connects a set of artists, the
//     built graph connects them too, as long as the degree cap allows a bridge.
//
// How
//
//  1. Materialize nodes: size = min + (max-min) * (1 - rank/total)^1.5.
//  2. Enumerate every unordered pair with similarity > 0 (the only O(n²) step).
//  3. Stable-sort candidates by weight, strongest first. Equal weights keep
//     pair order (i<j in input order), which makes the build deterministic.
//  4. Connectivity: walk the candidates with a disjoint-set forest; accept an
//     edge that joins two components when both endpoints have spare degree.
//  5. Densification: walk again; accept any remaining edge whose endpoints
//     both have spare degree.
//  6. Drop nodes with no accepted edge.
//
// Complexity: O(n² + C log C) time, O(n + C) memory, C = number of candidates.
//
// Usage
//
//	g, err := constellation.Build(artists,
//	    constellation.WithMaxDegree(5),
//	    constellation.WithSimilarity(artist.SharedGenres),
//	)
//	g.ApplyClusters(cluster.WithMaxClusters(24))
package constellation
