package config

import (
	"io"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/constellation/artist"
	"github.com/katalvlaran/constellation/challenge"
	"github.com/katalvlaran/constellation/cluster"
	"github.com/katalvlaran/constellation/constellation"
	"github.com/katalvlaran/constellation/game"
	"github.com/katalvlaran/constellation/snapshot"
)

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// SimilarityFor picks the similarity relation for set.
func (c *Config) SimilarityFor(set artist.Set) artist.SimilarityFunc {
	switch c.Graph.Similarity {
	case SimilarityGenres:
		return artist.SharedGenres
	case SimilarityScores:
		if set.Scores != nil {
			return set.Scores.Similarity()
		}
		return artist.SharedGenres
	case SimilarityBlend:
		if set.Scores != nil {
			return set.Scores.Blend()
		}
		return artist.SharedGenres
	default:
		return set.Similarity()
	}
}

// GraphOptions converts the graph section. c must be valid.
func (c *Config) GraphOptions(set artist.Set) []constellation.Option {
	return []constellation.Option{
		constellation.WithMaxDegree(c.Graph.MaxDegree),
		constellation.WithSizeRange(c.Graph.MinSize, c.Graph.MaxSize),
		constellation.WithSimilarity(c.SimilarityFor(set)),
	}
}

// ClusterOptions converts the cluster section.
func (c *Config) ClusterOptions() []cluster.Option {
	return []cluster.Option{
		cluster.WithMaxClusters(c.Cluster.MaxClusters),
		cluster.WithMinMembers(c.Cluster.MinMembers),
	}
}

// ChallengeOptions converts the challenge section.
func (c *Config) ChallengeOptions() []challenge.Option {
	return []challenge.Option{
		challenge.WithHopBand(c.Challenge.MinHops, c.Challenge.MaxHops),
		challenge.WithPreferPopular(c.Challenge.PreferPopular),
		challenge.WithMaxAttempts(c.Challenge.MaxAttempts),
	}
}

// GameScoring converts the scoring section.
func (c *Config) GameScoring() game.Scoring {
	s := c.Scoring
	return game.Scoring{
		Base:              s.Base,
		HopPenalty:        s.HopPenalty,
		WrongGuessPenalty: s.WrongGuessPenalty,
		HintPenalty:       s.HintPenalty,
		TimeBonus:         s.TimeBonus,
		TimeBonusWindow:   time.Duration(s.TimeBonusWindowSeconds) * time.Second,
	}
}

// GameOptions converts the challenge, search and scoring sections.
func (c *Config) GameOptions() []game.Option {
	return []game.Option{
		game.WithChallengeOptions(c.ChallengeOptions()...),
		game.WithSearch(c.Search.Limit, c.Search.MinQueryLength),
		game.WithScoring(c.GameScoring()),
	}
}

// StoreOptions converts the graph, cluster and cache sections.
func (c *Config) StoreOptions(set artist.Set) []snapshot.Option {
	return []snapshot.Option{
		snapshot.WithCacheSize(c.Cache.Snapshots),
		snapshot.WithBuildOptions(c.GraphOptions(set)...),
		snapshot.WithClusterOptions(c.ClusterOptions()...),
	}
}
