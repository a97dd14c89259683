package config

import "github.com/spf13/viper"

// SetDefaults registers every default value on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)

	v.SetDefault("graph.max_degree", 5)
	v.SetDefault("graph.min_size", 4.0)
	v.SetDefault("graph.max_size", 22.0)
	v.SetDefault("graph.similarity", SimilarityAuto)

	v.SetDefault("cluster.max_clusters", 24)
	v.SetDefault("cluster.min_members", 3)

	v.SetDefault("challenge.min_hops", 3)
	v.SetDefault("challenge.max_hops", 6)
	v.SetDefault("challenge.prefer_popular", true)
	v.SetDefault("challenge.max_attempts", 64)

	v.SetDefault("search.limit", 8)
	v.SetDefault("search.min_query_length", 2)

	v.SetDefault("scoring.base", 1000)
	v.SetDefault("scoring.hop_penalty", 100)
	v.SetDefault("scoring.time_bonus", 500)
	v.SetDefault("scoring.time_bonus_window_seconds", 300)
	v.SetDefault("scoring.wrong_guess_penalty", 50)
	v.SetDefault("scoring.hint_penalty", 75)

	v.SetDefault("cache.snapshots", 8)
}
