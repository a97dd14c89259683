package snapshot_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/constellation/artist"
	"github.com/katalvlaran/constellation/challenge"
	"github.com/katalvlaran/constellation/constellation"
	"github.com/katalvlaran/constellation/game"
	"github.com/katalvlaran/constellation/snapshot"
)

// chain returns n artists where i and i+1 share exactly one genre.
func chain(n int, prefix string) []artist.Artist {
	out := make([]artist.Artist, n)
	for i := range out {
		out[i] = artist.Artist{
			ID:     fmt.Sprintf("%s%d", prefix, i),
			Name:   fmt.Sprintf("%s Artist %d", prefix, i),
			Genres: []string{fmt.Sprintf("g%d", i), fmt.Sprintf("g%d", i+1)},
			Rank:   i,
		}
	}
	return out
}

type recorder struct {
	mu     sync.Mutex
	events []snapshot.Event
}

func (r *recorder) record(e snapshot.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) stages() []snapshot.Stage {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]snapshot.Stage, len(r.events))
	for i, e := range r.events {
		out[i] = e.Stage
	}
	return out
}

func TestBuild_ProducesPlayableSnapshot(t *testing.T) {
	rec := &recorder{}
	store, err := snapshot.NewStore(snapshot.WithProgress(rec.record))
	require.NoError(t, err)
	assert.Nil(t, store.Current())

	artists := chain(8, "a")
	snap, err := store.Build(context.Background(), artists)
	require.NoError(t, err)
	require.NotNil(t, snap)

	assert.Equal(t, artist.Fingerprint(artists), snap.Fingerprint)
	assert.Len(t, snap.Graph.Nodes, 8)
	assert.Equal(t, 8, snap.Index.Len())
	assert.Len(t, snap.World.Items, 8)
	assert.Len(t, snap.World.Candidates, 8)
	assert.Same(t, snap, store.Current())
	assert.Equal(t, []snapshot.Stage{
		snapshot.StageStarted, snapshot.StageGraph, snapshot.StageClusters,
		snapshot.StageIndex, snapshot.StageDone,
	}, rec.stages())

	s := game.New(snap.World, game.WithSeed(1), game.WithChallengeOptions(challenge.WithHopBand(2, 4)))
	res, err := s.StartGame(game.ModeCasual)
	require.NoError(t, err)
	assert.Equal(t, game.ResultAccepted, res.Kind)
	ch := s.Snapshot().Challenge
	require.NotNil(t, ch)
	assert.NoError(t, ch.Verify(snap.Index))
}

func TestBuild_CachedByFingerprint(t *testing.T) {
	rec := &recorder{}
	store, err := snapshot.NewStore(snapshot.WithProgress(rec.record))
	require.NoError(t, err)

	first, err := store.Build(context.Background(), chain(6, "a"))
	require.NoError(t, err)
	second, err := store.Build(context.Background(), chain(6, "a"))
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.EqualValues(t, 1, store.Builds())
	stages := rec.stages()
	assert.Equal(t, snapshot.StageCached, stages[len(stages)-1])

	other, err := store.Build(context.Background(), chain(6, "b"))
	require.NoError(t, err)
	assert.NotEqual(t, first.Fingerprint, other.Fingerprint)
	assert.Same(t, other, store.Current())
	assert.EqualValues(t, 2, store.Builds())
	assert.Equal(t, 2, store.Len())
}

func TestBuild_CoalescesConcurrentCallers(t *testing.T) {
	store, err := snapshot.NewStore()
	require.NoError(t, err)
	artists := chain(40, "c")

	var wg sync.WaitGroup
	results := make([]*snapshot.Snapshot, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			snap, err := store.Build(context.Background(), artists)
			assert.NoError(t, err)
			results[i] = snap
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, 1, store.Builds())
	for _, r := range results {
		assert.Same(t, results[0], r)
	}
}

func TestBuild_LRUEviction(t *testing.T) {
	store, err := snapshot.NewStore(snapshot.WithCacheSize(1))
	require.NoError(t, err)
	ctx := context.Background()

	_, err = store.Build(ctx, chain(4, "a"))
	require.NoError(t, err)
	_, err = store.Build(ctx, chain(4, "b"))
	require.NoError(t, err)
	_, err = store.Build(ctx, chain(4, "a"))
	require.NoError(t, err)

	assert.EqualValues(t, 3, store.Builds())
	assert.Equal(t, 1, store.Len())
}

func TestBuild_Errors(t *testing.T) {
	rec := &recorder{}
	store, err := snapshot.NewStore(snapshot.WithProgress(rec.record))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = store.Build(ctx, chain(4, "a"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Zero(t, store.Builds())

	dup := chain(3, "d")
	dup[2].ID = dup[0].ID
	_, err = store.Build(context.Background(), dup)
	require.Error(t, err)
	assert.True(t, errors.Is(err, constellation.ErrInvalidArtists))
	assert.Contains(t, rec.stages(), snapshot.StageFailed)
	assert.Nil(t, store.Current())
	assert.Zero(t, store.Len())
}

func TestBuild_ForwardsOptions(t *testing.T) {
	store, err := snapshot.NewStore(snapshot.WithBuildOptions(constellation.WithMaxDegree(1)))
	require.NoError(t, err)
	snap, err := store.Build(context.Background(), chain(6, "a"))
	require.NoError(t, err)
	for _, n := range snap.Graph.Nodes {
		assert.LessOrEqual(t, snap.Graph.Degree(n.ID), 1)
	}
}

func TestWithCacheSizePanics(t *testing.T) {
	assert.Panics(t, func() { snapshot.WithCacheSize(0) })
}

func TestBuild_CachedSnapshotIgnoresLaterInputEdits(t *testing.T) {
	store, err := snapshot.NewStore()
	require.NoError(t, err)

	in := chain(3, "m")
	snap, err := store.Build(context.Background(), in)
	require.NoError(t, err)

	in[1].Genres[0] = "metal"

	cached := store.Current()
	require.Same(t, snap, cached)
	n, ok := cached.Graph.Node("m1")
	require.True(t, ok)
	assert.Equal(t, []string{"g1", "g2"}, n.Genres)
	assert.Equal(t, []string{"g1"}, cached.Graph.Edges[0].SharedAttributes)
}
