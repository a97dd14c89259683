package constellation

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/constellation/artist"
	"github.com/katalvlaran/constellation/logger"
)

// Deterministic defaults.
const (
	DefaultMaxDegree = 5
	DefaultMinSize   = 4.0
	DefaultMaxSize   = 22.0

	// sizeExponent front-loads node size toward top-ranked artists.
	sizeExponent = 1.5
)

// Option customizes a Build call.
// Option constructors validate and panic on meaningless values; Build itself
// never panics.
type Option func(*buildConfig)

type buildConfig struct {
	maxDegree  int
	similarity artist.SimilarityFunc
	minSize    float64
	maxSize    float64
	log        *zap.SugaredLogger
}

func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{
		maxDegree:  DefaultMaxDegree,
		similarity: artist.SharedGenres,
		minSize:    DefaultMinSize,
		maxSize:    DefaultMaxSize,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.log == nil {
		cfg.log = logger.Named("constellation")
	}
	return cfg
}

// WithMaxDegree sets the degree cap D. Panics if d < 1.
func WithMaxDegree(d int) Option {
	if d < 1 {
		panic(fmt.Sprintf("constellation: WithMaxDegree(%d)", d))
	}
	return func(c *buildConfig) { c.maxDegree = d }
}

// WithSimilarity replaces the default shared-genre similarity.
// Panics on nil.
func WithSimilarity(fn artist.SimilarityFunc) Option {
	if fn == nil {
		panic("constellation: WithSimilarity(nil)")
	}
	return func(c *buildConfig) { c.similarity = fn }
}

// WithSizeRange sets the node size range. Panics unless 0 <= min <= max.
func WithSizeRange(minSize, maxSize float64) Option {
	if minSize < 0 || maxSize < minSize {
		panic(fmt.Sprintf("constellation: WithSizeRange(%g, %g)", minSize, maxSize))
	}
	return func(c *buildConfig) { c.minSize, c.maxSize = minSize, maxSize }
}

// WithLogger routes build diagnostics to l.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *buildConfig) {
		if l != nil {
			c.log = l
		}
	}
}
