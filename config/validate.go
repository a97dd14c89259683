package config

import "github.com/cockroachdb/errors"

// ErrInvalid marks every validation failure.
var ErrInvalid = errors.New("config: invalid value")

func invalid(format string, args ...interface{}) error {
	return errors.Mark(errors.Newf(format, args...), ErrInvalid)
}

// Validate rejects values the components cannot run with.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return invalid("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}

	if c.Graph.MaxDegree < 1 {
		return invalid("graph.max_degree must be >= 1, got %d", c.Graph.MaxDegree)
	}
	if c.Graph.MinSize < 0 || c.Graph.MaxSize < c.Graph.MinSize {
		return invalid("graph size range must satisfy 0 <= min_size <= max_size, got %g..%g", c.Graph.MinSize, c.Graph.MaxSize)
	}
	switch c.Graph.Similarity {
	case "", SimilarityAuto, SimilarityGenres, SimilarityScores, SimilarityBlend:
	default:
		return invalid("graph.similarity must be auto, genres, scores or blend, got %q", c.Graph.Similarity)
	}

	if c.Cluster.MaxClusters < 1 {
		return invalid("cluster.max_clusters must be >= 1, got %d", c.Cluster.MaxClusters)
	}
	if c.Cluster.MinMembers < 1 {
		return invalid("cluster.min_members must be >= 1, got %d", c.Cluster.MinMembers)
	}

	if c.Challenge.MinHops < 1 || c.Challenge.MaxHops < c.Challenge.MinHops {
		return invalid("challenge hop band must satisfy 1 <= min_hops <= max_hops, got %d..%d", c.Challenge.MinHops, c.Challenge.MaxHops)
	}
	if c.Challenge.MaxAttempts < 1 {
		return invalid("challenge.max_attempts must be >= 1, got %d", c.Challenge.MaxAttempts)
	}

	if c.Search.Limit < 1 {
		return invalid("search.limit must be >= 1, got %d", c.Search.Limit)
	}
	if c.Search.MinQueryLength < 1 {
		return invalid("search.min_query_length must be >= 1, got %d", c.Search.MinQueryLength)
	}

	s := c.Scoring
	for _, f := range []struct {
		key string
		val int
	}{
		{"scoring.base", s.Base},
		{"scoring.hop_penalty", s.HopPenalty},
		{"scoring.time_bonus", s.TimeBonus},
		{"scoring.time_bonus_window_seconds", s.TimeBonusWindowSeconds},
		{"scoring.wrong_guess_penalty", s.WrongGuessPenalty},
		{"scoring.hint_penalty", s.HintPenalty},
	} {
		if f.val < 0 {
			return invalid("%s must be >= 0, got %d", f.key, f.val)
		}
	}

	if c.Cache.Snapshots < 1 {
		return invalid("cache.snapshots must be >= 1, got %d", c.Cache.Snapshots)
	}
	return nil
}
