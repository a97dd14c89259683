package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/constellation/adjacency"
	"github.com/katalvlaran/constellation/artist"
	"github.com/katalvlaran/constellation/constellation"
)

func TestFromPairs(t *testing.T) {
	idx := adjacency.FromPairs([][2]string{
		{"b", "a"}, {"a", "c"}, {"a", "b"}, {"d", "d"},
	})

	assert.Equal(t, 4, idx.Len())
	assert.Equal(t, 2, idx.EdgeCount(), "duplicate and self pair ignored")
	assert.Equal(t, []string{"b", "c"}, idx.Neighbors("a"))
	assert.True(t, idx.Adjacent("a", "b"))
	assert.True(t, idx.Adjacent("b", "a"))
	assert.False(t, idx.Adjacent("b", "c"))
	assert.False(t, idx.Adjacent("zz", "a"))
	assert.True(t, idx.Has("d"))
	assert.Zero(t, idx.Degree("d"))
	assert.Nil(t, idx.Neighbors("zz"))
	assert.Equal(t, []string{"a", "b", "c", "d"}, idx.IDs())
}

func TestNeighborsReturnsCopy(t *testing.T) {
	idx := adjacency.FromPairs([][2]string{{"a", "b"}, {"a", "c"}})
	n := idx.Neighbors("a")
	n[0] = "mutated"
	assert.Equal(t, []string{"b", "c"}, idx.Neighbors("a"))
}

func TestEachNeighborStops(t *testing.T) {
	idx := adjacency.FromPairs([][2]string{{"a", "b"}, {"a", "c"}, {"a", "d"}})
	var seen []string
	idx.EachNeighbor("a", func(n string) bool {
		seen = append(seen, n)
		return len(seen) < 2
	})
	assert.Equal(t, []string{"b", "c"}, seen)
}

func TestNew_FromGraph(t *testing.T) {
	g, err := constellation.Build([]artist.Artist{
		{ID: "a", Genres: []string{"x"}},
		{ID: "b", Genres: []string{"x", "y"}, Rank: 1},
		{ID: "c", Genres: []string{"y"}, Rank: 2},
	})
	require.NoError(t, err)

	idx := adjacency.New(g)
	assert.Equal(t, g.Len(), idx.Len())
	assert.Equal(t, len(g.Edges), idx.EdgeCount())
	for _, e := range g.Edges {
		assert.True(t, idx.Adjacent(e.Source, e.Target))
	}
	for _, n := range g.Nodes {
		assert.Equal(t, g.Degree(n.ID), idx.Degree(n.ID))
	}
}
