// Package cluster derives named genre groupings over a built artist graph for
// display: which colour each node gets and which labels to draw.
//
// Policy
//
//   - Count how many surviving nodes carry each genre tag (case-insensitive,
//     a node counts once per tag).
//   - Keep tags carried by at least MinMembers nodes (default 3).
//   - Take the top MaxClusters by frequency (default 24). Ties keep the tag
//     that appeared first in node order.
//   - The i-th cluster gets Palette[i % len(Palette)].
//   - A node takes the colour of the first of its own tags that made the cut;
//     nodes with no such tag get DefaultColor.
//
// The result is deterministic for a fixed input and palette. There is no
// notion of a "correct" clustering; this is labelling only.
//
// Bins groups laid-out node positions into square cells so a renderer can
// place one label per dense region.
package cluster
