// Package config loads constellation settings with viper.
//
// Sources, lowest precedence first: built-in defaults, a TOML file
// (constellation.toml in the working directory or ~/.constellation, or an
// explicit path), then CONSTELLATION_* environment variables
// (CONSTELLATION_GRAPH_MAX_DEGREE=4 overrides graph.max_degree).
//
// No component reads viper directly. A validated Config is turned into each
// package's functional options by the *Options helpers.
package config

// Config is the complete configuration.
type Config struct {
	Log       LogConfig       `mapstructure:"log" toml:"log"`
	Graph     GraphConfig     `mapstructure:"graph" toml:"graph"`
	Cluster   ClusterConfig   `mapstructure:"cluster" toml:"cluster"`
	Challenge ChallengeConfig `mapstructure:"challenge" toml:"challenge"`
	Search    SearchConfig    `mapstructure:"search" toml:"search"`
	Scoring   ScoringConfig   `mapstructure:"scoring" toml:"scoring"`
	Cache     CacheConfig     `mapstructure:"cache" toml:"cache"`
}

// LogConfig configures the global logger.
type LogConfig struct {
	Level string `mapstructure:"level" toml:"level"` // debug, info, warn, error
	JSON  bool   `mapstructure:"json" toml:"json"`
}

// GraphConfig configures the graph builder.
type GraphConfig struct {
	MaxDegree int     `mapstructure:"max_degree" toml:"max_degree"`
	MinSize   float64 `mapstructure:"min_size" toml:"min_size"`
	MaxSize   float64 `mapstructure:"max_size" toml:"max_size"`
	// Similarity is auto, genres, scores or blend.
	Similarity string `mapstructure:"similarity" toml:"similarity"`
}

// ClusterConfig configures genre clustering.
type ClusterConfig struct {
	MaxClusters int `mapstructure:"max_clusters" toml:"max_clusters"`
	MinMembers  int `mapstructure:"min_members" toml:"min_members"`
}

// ChallengeConfig configures challenge generation.
type ChallengeConfig struct {
	MinHops       int  `mapstructure:"min_hops" toml:"min_hops"`
	MaxHops       int  `mapstructure:"max_hops" toml:"max_hops"`
	PreferPopular bool `mapstructure:"prefer_popular" toml:"prefer_popular"`
	MaxAttempts   int  `mapstructure:"max_attempts" toml:"max_attempts"`
}

// SearchConfig configures guess autocomplete.
type SearchConfig struct {
	Limit          int `mapstructure:"limit" toml:"limit"`
	MinQueryLength int `mapstructure:"min_query_length" toml:"min_query_length"`
}

// ScoringConfig holds the score constants.
type ScoringConfig struct {
	Base                   int `mapstructure:"base" toml:"base"`
	HopPenalty             int `mapstructure:"hop_penalty" toml:"hop_penalty"`
	TimeBonus              int `mapstructure:"time_bonus" toml:"time_bonus"`
	TimeBonusWindowSeconds int `mapstructure:"time_bonus_window_seconds" toml:"time_bonus_window_seconds"`
	WrongGuessPenalty      int `mapstructure:"wrong_guess_penalty" toml:"wrong_guess_penalty"`
	HintPenalty            int `mapstructure:"hint_penalty" toml:"hint_penalty"`
}

// CacheConfig sizes the snapshot cache.
type CacheConfig struct {
	Snapshots int `mapstructure:"snapshots" toml:"snapshots"`
}

// Similarity modes.
const (
	SimilarityAuto   = "auto"
	SimilarityGenres = "genres"
	SimilarityScores = "scores"
	SimilarityBlend  = "blend"
)
