package game

import (
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/constellation/challenge"
)

// Option configures a Session.
type Option func(*Session)

// WithScoring replaces the score constants.
func WithScoring(sc Scoring) Option {
	return func(s *Session) { s.scoring = sc }
}

// WithChallengeOptions forwards options to challenge.Generate on every
// StartGame and NewChallenge.
func WithChallengeOptions(opts ...challenge.Option) Option {
	return func(s *Session) { s.genOpts = append(s.genOpts, opts...) }
}

// WithSeed makes challenge sampling reproducible across the session.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithSearch sets the autocomplete limit and minimum query length.
// Panics if limit < 1 or minLen < 1.
func WithSearch(limit, minLen int) Option {
	if limit < 1 || minLen < 1 {
		panic(fmt.Sprintf("game: WithSearch(%d, %d)", limit, minLen))
	}
	return func(s *Session) { s.searchLimit, s.minQuery = limit, minLen }
}

// WithClock replaces time.Now. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("game: WithClock(nil)")
	}
	return func(s *Session) { s.now = now }
}

// WithLogger routes diagnostics to l.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}
