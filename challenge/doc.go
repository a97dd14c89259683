// Package challenge picks a start/target pair whose shortest-path distance
// lies inside a hop band and records one optimal path between them.
//
// How
//
//  1. Sample a start node (weighted by Size when PreferPopular is set).
//  2. BFS from it over the adjacency index, bounded by MaxHops.
//  3. Pick a target uniformly among nodes at distance [MinHops, MaxHops].
//  4. Retrace BFS parents into OptimalPath.
//  5. If the start has no such target, resample a different start; after
//     MaxAttempts starts (or when every start has been tried) give up with
//     ErrUnsatisfiable.
//
// Only the hop count is a correctness property: when several shortest paths
// exist, OptimalPath is whichever the BFS parent links produce.
//
// A Challenge is bound to the graph snapshot it was generated against; use
// Verify before replaying it against another index.
package challenge
