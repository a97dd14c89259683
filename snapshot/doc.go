// Package snapshot turns an artist list into an immutable, playable
// snapshot (graph, clusters, adjacency index, search items) and owns the
// build concurrency rules:
//
//   - at most one build is in flight per artist-list fingerprint; concurrent
//     callers for the same list share its result,
//   - finished snapshots are kept in a small LRU keyed by fingerprint,
//   - Current is swapped atomically and wholesale after each Build.
//
// Progress is reported as structured Events through WithProgress rather
// than logged ad hoc.
//
// The fingerprint covers the artist list only. A Store is expected to use
// one similarity function for its lifetime.
package snapshot
