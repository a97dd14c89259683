package challenge

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/constellation/logger"
)

// Sentinel errors.
var (
	// ErrUnsatisfiable means no start/target pair in the hop band was found.
	// Callers should surface it as "try different settings".
	ErrUnsatisfiable = errors.New("challenge: no node pair in hop band")

	// ErrStaleChallenge means a challenge does not match the index it is
	// checked against (missing node, broken walk, or wrong distance).
	ErrStaleChallenge = errors.New("challenge: stale or mismatched snapshot")
)

// Defaults.
const (
	DefaultMinHops     = 3
	DefaultMaxHops     = 6
	DefaultMaxAttempts = 64
)

// Candidate is a node eligible to start a challenge.
type Candidate struct {
	ID string
	// Size weights the start draw when PreferPopular is set.
	Size float64
}

// Challenge is one puzzle. OptimalPath runs start..target inclusive and
// OptimalHops is len(OptimalPath)-1.
type Challenge struct {
	StartID     string   `json:"startId"`
	TargetID    string   `json:"targetId"`
	OptimalPath []string `json:"optimalPath"`
	OptimalHops int      `json:"optimalHops"`
}

// Option configures Generate.
type Option func(*config)

type config struct {
	minHops       int
	maxHops       int
	preferPopular bool
	maxAttempts   int
	rng           *rand.Rand
	start         string
	log           *zap.SugaredLogger
}

func newConfig(opts ...Option) config {
	cfg := config{
		minHops:       DefaultMinHops,
		maxHops:       DefaultMaxHops,
		preferPopular: true,
		maxAttempts:   DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.log == nil {
		cfg.log = logger.Named("challenge")
	}
	return cfg
}

// WithHopBand sets [minHops, maxHops]. Panics unless 1 <= min <= max.
func WithHopBand(minHops, maxHops int) Option {
	if minHops < 1 || maxHops < minHops {
		panic(fmt.Sprintf("challenge: WithHopBand(%d, %d)", minHops, maxHops))
	}
	return func(c *config) { c.minHops, c.maxHops = minHops, maxHops }
}

// WithPreferPopular weights start sampling toward larger (higher-ranked) nodes.
func WithPreferPopular(on bool) Option {
	return func(c *config) { c.preferPopular = on }
}

// WithMaxAttempts caps how many starts are tried. Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("challenge: WithMaxAttempts(%d)", n))
	}
	return func(c *config) { c.maxAttempts = n }
}

// WithSeed makes sampling reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies the RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("challenge: WithRand(nil)")
	}
	return func(c *config) { c.rng = r }
}

// WithStart pins the start node; only the target is sampled.
func WithStart(id string) Option {
	return func(c *config) { c.start = id }
}

// WithLogger routes diagnostics to l.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *config) {
		if l != nil {
			c.log = l
		}
	}
}
