// Package artist defines the input record the rest of constellation consumes:
// a ranked artist with genre tags, plus the similarity relation between two
// artists.
//
// What
//
//   - Artist: stable provider-scoped ID, display Name, ordered Genres, Rank.
//   - SimilarityFunc: symmetric pairwise score; <= 0 means "unrelated".
//   - SharedGenres: the default similarity (count of shared tags).
//   - ScoreTable: service-reported similarity keyed by unordered id pair.
//   - LoadFile / Decode: read an artist list from YAML or JSON.
//   - Fingerprint: stable 64-bit key for an artist list (build coalescing).
//
// Rank is zero-based: 0 is the listener's top artist.
package artist
