package constellation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/constellation/artist"
	"github.com/katalvlaran/constellation/cluster"
	"github.com/katalvlaran/constellation/constellation"
)

func TestGraph_Accessors(t *testing.T) {
	g, err := constellation.Build([]artist.Artist{
		mk("a", 0, "rock"), mk("b", 1, "rock"), mk("c", 2, "jazz"), mk("d", 3, "jazz"),
	})
	require.NoError(t, err)

	n, ok := g.Node("c")
	require.True(t, ok)
	assert.Equal(t, "Artist c", n.Name)
	_, ok = g.Node("zzz")
	assert.False(t, ok)
	assert.True(t, g.HasNode("a"))
	assert.Equal(t, 1, g.Degree("a"))
	assert.Zero(t, g.Degree("zzz"))

	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, g.Components())

	s := g.Stats()
	assert.Equal(t, 4, s.Nodes)
	assert.Equal(t, 2, s.Edges)
	assert.Equal(t, 2, s.Components)
	assert.Equal(t, 1, s.MaxDegree)
	assert.InDelta(t, 1.0, s.MeanDegree, 1e-9)
}

func TestGraph_ApplyClusters(t *testing.T) {
	g, err := constellation.Build([]artist.Artist{
		mk("a", 0, "shoegaze", "rock"),
		mk("b", 1, "rock"),
		mk("c", 2, "rock", "shoegaze"),
		mk("d", 3, "shoegaze"),
	})
	require.NoError(t, err)

	cs := g.ApplyClusters(cluster.WithMinMembers(3))
	require.Len(t, cs, 2)
	assert.Equal(t, cs, g.Clusters)

	// shoegaze appeared first and ties rock at 3 members.
	assert.Equal(t, "shoegaze", cs[0].ID)
	a, _ := g.Node("a")
	b, _ := g.Node("b")
	assert.Equal(t, cs[0].Color, a.Color)
	assert.Equal(t, "Shoegaze", a.PrimaryGenre)
	assert.Equal(t, cs[1].Color, b.Color)
	assert.Equal(t, "Rock", b.PrimaryGenre)
}
