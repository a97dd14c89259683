// Package constellation builds a similarity graph over a ranked list of music
// artists and runs the "Connections" game on top of it: walk from a start
// artist to a target artist one similar neighbour at a time.
//
// 🚀 What is in the box?
//
//	• Graph build: degree-capped, connectivity-first edge selection
//	• Genre clusters with a stable colour palette
//	• Shortest-path challenges in a configurable hop band
//	• A game session state machine with hints, backtracking and scoring
//	• Fuzzy artist-name search tolerant of accents and typos
//	• Cached snapshots keyed by the artist list fingerprint
//
// Packages:
//
//	artist/        input records, similarity functions, YAML/JSON loader
//	dsu/           union-find forest used by the build
//	constellation/ Build, Graph, Stats
//	cluster/       genre clusters, colours, spatial bins
//	adjacency/     immutable adjacency index over a built graph
//	bfs/           breadth-first search with parent retrace
//	challenge/     start/target generation and verification
//	fuzzy/         tiered name search
//	game/          Session: phases, guesses, hints, score
//	snapshot/      cached, coalesced graph builds
//	config/        viper-backed configuration
//	logger/        zap global logger
//
// Quick ASCII example:
//
//	    Blur───Pulp
//	     │       │
//	    Oasis──Suede
//
//	start at Blur, reach Suede in two hops.
//
// The CLI lives in cmd/constellation:
//
//	constellation build -a artists.yaml
//	constellation play  -a artists.yaml --competitive
package constellation
