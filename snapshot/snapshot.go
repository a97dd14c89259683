package snapshot

import (
	"context"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/constellation/adjacency"
	"github.com/katalvlaran/constellation/artist"
	"github.com/katalvlaran/constellation/cluster"
	"github.com/katalvlaran/constellation/constellation"
	"github.com/katalvlaran/constellation/game"
	"github.com/katalvlaran/constellation/logger"
)

// DefaultCacheSize is the number of snapshots kept.
const DefaultCacheSize = 8

// Snapshot is one built artist set. Never mutated after Build returns it.
type Snapshot struct {
	Fingerprint uint64
	Graph       *constellation.Graph
	Index       *adjacency.Index
	World       game.World
	BuiltAt     time.Time
}

// Key is the cache key of the snapshot.
func (s *Snapshot) Key() string { return key(s.Fingerprint) }

// Stage names a build step.
type Stage string

const (
	StageStarted  Stage = "started"
	StageGraph    Stage = "graph"
	StageClusters Stage = "clusters"
	StageIndex    Stage = "index"
	StageDone     Stage = "done"
	StageCached   Stage = "cached"
	StageFailed   Stage = "failed"
)

// Event reports build progress.
type Event struct {
	Stage       Stage
	Fingerprint uint64
	Artists     int
	Nodes       int
	Edges       int
	Clusters    int
	Elapsed     time.Duration
	Err         error
}

// Option configures a Store.
type Option func(*Store)

// WithCacheSize sets the LRU capacity. Panics if n < 1.
func WithCacheSize(n int) Option {
	if n < 1 {
		panic("snapshot: WithCacheSize must be >= 1")
	}
	return func(s *Store) { s.cacheSize = n }
}

// WithBuildOptions forwards options to constellation.Build.
func WithBuildOptions(opts ...constellation.Option) Option {
	return func(s *Store) { s.buildOpts = append(s.buildOpts, opts...) }
}

// WithClusterOptions forwards options to Graph.ApplyClusters.
func WithClusterOptions(opts ...cluster.Option) Option {
	return func(s *Store) { s.clusterOpts = append(s.clusterOpts, opts...) }
}

// WithProgress registers a progress callback. fn runs on the building
// goroutine and must not block.
func WithProgress(fn func(Event)) Option {
	return func(s *Store) { s.progress = fn }
}

// WithLogger routes diagnostics to l.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// Store builds and caches snapshots. Safe for concurrent use.
type Store struct {
	group       singleflight.Group
	cache       *lru.Cache
	cacheSize   int
	current     atomic.Pointer[Snapshot]
	builds      atomic.Int64
	buildOpts   []constellation.Option
	clusterOpts []cluster.Option
	progress    func(Event)
	log         *zap.SugaredLogger
}

// NewStore creates an empty store.
func NewStore(opts ...Option) (*Store, error) {
	s := &Store{cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.Named("snapshot")
	}
	cache, err := lru.New(s.cacheSize)
	if err != nil {
		return nil, errors.Wrap(err, "snapshot cache")
	}
	s.cache = cache
	return s, nil
}

// Current returns the most recently built or fetched snapshot, or nil.
func (s *Store) Current() *Snapshot { return s.current.Load() }

// Builds is the number of builds actually run (cache hits and shared
// in-flight builds excluded).
func (s *Store) Builds() int64 { return s.builds.Load() }

// Len is the number of cached snapshots.
func (s *Store) Len() int { return s.cache.Len() }

// Build returns the snapshot for artists, building it at most once per
// fingerprint. The result becomes Current.
func (s *Store) Build(ctx context.Context, artists []artist.Artist) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "snapshot build")
	}
	fp := artist.Fingerprint(artists)
	k := key(fp)

	if snap, ok := s.cached(k); ok {
		s.emit(Event{Stage: StageCached, Fingerprint: fp, Artists: len(artists),
			Nodes: len(snap.Graph.Nodes), Edges: len(snap.Graph.Edges), Clusters: len(snap.Graph.Clusters)})
		s.current.Store(snap)
		return snap, nil
	}

	in := append([]artist.Artist(nil), artists...)
	v, err, shared := s.group.Do(k, func() (any, error) {
		if snap, ok := s.cached(k); ok {
			return snap, nil
		}
		return s.build(fp, in)
	})
	if err != nil {
		return nil, err
	}
	snap, ok := v.(*Snapshot)
	if !ok {
		return nil, errors.AssertionFailedf("snapshot: unexpected build result %T", v)
	}
	if shared {
		s.log.Debugw("shared in-flight build", "fingerprint", k)
	}
	s.current.Store(snap)
	return snap, nil
}

func (s *Store) cached(k string) (*Snapshot, bool) {
	v, ok := s.cache.Get(k)
	if !ok {
		return nil, false
	}
	snap, ok := v.(*Snapshot)
	return snap, ok
}

func (s *Store) build(fp uint64, artists []artist.Artist) (*Snapshot, error) {
	began := time.Now()
	s.builds.Add(1)
	s.emit(Event{Stage: StageStarted, Fingerprint: fp, Artists: len(artists)})

	g, err := constellation.Build(artists, s.buildOpts...)
	if err != nil {
		s.emit(Event{Stage: StageFailed, Fingerprint: fp, Artists: len(artists), Elapsed: time.Since(began), Err: err})
		return nil, errors.Wrapf(err, "build snapshot %s", key(fp))
	}
	s.emit(Event{Stage: StageGraph, Fingerprint: fp, Artists: len(artists), Nodes: len(g.Nodes), Edges: len(g.Edges)})

	clusters := g.ApplyClusters(s.clusterOpts...)
	s.emit(Event{Stage: StageClusters, Fingerprint: fp, Artists: len(artists), Nodes: len(g.Nodes), Clusters: len(clusters)})

	idx := adjacency.New(g)
	s.emit(Event{Stage: StageIndex, Fingerprint: fp, Artists: len(artists), Nodes: idx.Len(), Edges: idx.EdgeCount()})

	snap := &Snapshot{
		Fingerprint: fp,
		Graph:       g,
		Index:       idx,
		World:       game.NewWorld(g, idx),
		BuiltAt:     time.Now(),
	}
	s.cache.Add(key(fp), snap)

	elapsed := time.Since(began)
	s.emit(Event{Stage: StageDone, Fingerprint: fp, Artists: len(artists),
		Nodes: len(g.Nodes), Edges: len(g.Edges), Clusters: len(clusters), Elapsed: elapsed})
	s.log.Debugw("snapshot built", "fingerprint", key(fp), "nodes", len(g.Nodes), "edges", len(g.Edges), "elapsed", elapsed)
	return snap, nil
}

func (s *Store) emit(e Event) {
	if s.progress != nil {
		s.progress(e)
	}
}

func key(fp uint64) string {
	return strconv.FormatUint(fp, 16)
}
