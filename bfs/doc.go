// Package bfs provides breadth-first search over any neighbor Source
// (typically an *adjacency.Index), returning hop distances, parent links and
// visit order.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start node.
//   - Result.Depth maps every reached node to its distance.
//   - Result.PathTo retraces parent links into one shortest path.
//   - Result.AtDepth lists reached nodes inside a distance band.
//
// Determinism
//
//	Sources yield neighbors in a fixed order (the adjacency index sorts by
//	id), so visit order and the chosen shortest path are reproducible.
//
// Complexity
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(idx, "start", bfs.WithMaxDepth(6))
//	if err != nil {
//	    // ErrSourceNil, ErrStartNotFound, ErrOptionViolation, ctx or hook error
//	}
//	path, err := res.PathTo("target")
package bfs
