package constellation_test

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/constellation/artist"
	"github.com/katalvlaran/constellation/constellation"
	"github.com/katalvlaran/constellation/dsu"
)

func mk(id string, rank int, genres ...string) artist.Artist {
	return artist.Artist{ID: id, Name: "Artist " + id, Genres: genres, Rank: rank}
}

func ids(g *constellation.Graph) []string {
	out := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		out = append(out, n.ID)
	}
	return out
}

// tableSim builds a similarity function from explicit pair weights.
func tableSim(weights map[[2]string]float64) artist.SimilarityFunc {
	return func(a, b artist.Artist) float64 {
		if w, ok := weights[[2]string{a.ID, b.ID}]; ok {
			return w
		}
		return weights[[2]string{b.ID, a.ID}]
	}
}

func TestBuild_EmptyAndSingle(t *testing.T) {
	g, err := constellation.Build(nil)
	require.NoError(t, err)
	assert.True(t, g.Empty())
	assert.Empty(t, g.Edges)

	g, err = constellation.Build([]artist.Artist{mk("a", 0, "rock")})
	require.NoError(t, err)
	assert.True(t, g.Empty())
	assert.Equal(t, []string{"a"}, g.Dropped)
}

func TestBuild_InvalidArtists(t *testing.T) {
	_, err := constellation.Build([]artist.Artist{mk("a", 0), mk("a", 1)})
	assert.ErrorIs(t, err, constellation.ErrInvalidArtists)
	assert.ErrorIs(t, err, artist.ErrDuplicateID)
}

// A shares rock with B, B shares pop with C, D shares nothing.
func TestBuild_IsolatedArtistDropped(t *testing.T) {
	artists := []artist.Artist{
		mk("A", 0, "rock"),
		mk("B", 1, "rock", "pop"),
		mk("C", 2, "pop"),
		mk("D", 3, "jazz"),
	}
	g, err := constellation.Build(artists)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, ids(g))
	assert.Equal(t, []string{"D"}, g.Dropped)
	assert.Len(t, g.Components(), 1)
	require.Len(t, g.Edges, 2)
	assert.Equal(t, []string{"rock"}, g.Edges[0].SharedAttributes)
	assert.Equal(t, 1.0, g.Edges[0].Weight)
}

// With D=1 only the strongest bridge survives; C cannot be attached.
func TestBuild_DegreeCapTradeOff(t *testing.T) {
	artists := []artist.Artist{mk("A", 0), mk("B", 1), mk("C", 2)}
	sim := tableSim(map[[2]string]float64{
		{"A", "B"}: 3,
		{"A", "C"}: 2,
		{"B", "C"}: 2,
	})
	g, err := constellation.Build(artists,
		constellation.WithMaxDegree(1),
		constellation.WithSimilarity(sim),
	)
	require.NoError(t, err)

	require.Len(t, g.Edges, 1)
	assert.Equal(t, constellation.MakePairKey("A", "B"), g.Edges[0].Key())
	assert.Equal(t, 3.0, g.Edges[0].Weight)
	assert.Equal(t, []string{"A", "B"}, ids(g))
	assert.Equal(t, []string{"C"}, g.Dropped)
}

// The connectivity phase must bridge components before densification spends
// degree on redundant strong edges.
func TestBuild_BridgeBeforeDensify(t *testing.T) {
	// Triangle X-Y-Z with strong weights, and a weak W-X bridge.
	artists := []artist.Artist{mk("X", 0), mk("Y", 1), mk("Z", 2), mk("W", 3)}
	sim := tableSim(map[[2]string]float64{
		{"X", "Y"}: 10,
		{"Y", "Z"}: 9,
		{"X", "Z"}: 8,
		{"W", "X"}: 1,
	})
	g, err := constellation.Build(artists,
		constellation.WithMaxDegree(2),
		constellation.WithSimilarity(sim),
	)
	require.NoError(t, err)

	assert.Len(t, g.Components(), 1)
	assert.ElementsMatch(t, []string{"X", "Y", "Z", "W"}, ids(g))
	keys := make(map[constellation.PairKey]bool)
	for _, e := range g.Edges {
		keys[e.Key()] = true
	}
	assert.True(t, keys[constellation.MakePairKey("W", "X")], "weak bridge kept")
	assert.False(t, keys[constellation.MakePairKey("X", "Z")], "X saturated by X-Y and W-X")
}

func TestBuild_ChainStaysConnectedUnderTightCap(t *testing.T) {
	const n = 30
	artists := make([]artist.Artist, n)
	for i := range artists {
		artists[i] = mk(fmt.Sprintf("a%02d", i), i, fmt.Sprintf("g%d", i), fmt.Sprintf("g%d", i+1))
	}
	g, err := constellation.Build(artists, constellation.WithMaxDegree(2))
	require.NoError(t, err)
	assert.Equal(t, n, g.Len())
	assert.Len(t, g.Components(), 1)
	assert.Equal(t, n-1, len(g.Edges))
}

func TestBuild_SizeDecreasesWithRank(t *testing.T) {
	artists := []artist.Artist{
		mk("a", 0, "x"), mk("b", 1, "x"), mk("c", 2, "x"), mk("d", 3, "x"),
	}
	g, err := constellation.Build(artists, constellation.WithSizeRange(2, 10))
	require.NoError(t, err)
	require.Equal(t, 4, g.Len())

	assert.InDelta(t, 10.0, g.Nodes[0].Size, 1e-9)
	for i := 1; i < g.Len(); i++ {
		assert.Less(t, g.Nodes[i].Size, g.Nodes[i-1].Size)
		assert.GreaterOrEqual(t, g.Nodes[i].Size, 2.0)
	}
	// rank 2 of 4: 2 + 8 * 0.5^1.5
	assert.InDelta(t, 2+8*0.35355339, g.Nodes[2].Size, 1e-6)
}

func TestBuild_IgnoresNonPositiveSimilarity(t *testing.T) {
	artists := []artist.Artist{mk("a", 0), mk("b", 1), mk("c", 2)}
	sim := tableSim(map[[2]string]float64{
		{"a", "b"}: -1,
		{"b", "c"}: 0.5,
	})
	g, err := constellation.Build(artists, constellation.WithSimilarity(sim))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, ids(g))
	assert.Empty(t, g.Edges[0].SharedAttributes)
}

func TestBuild_NodesOwnGenres(t *testing.T) {
	in := []artist.Artist{mk("a", 0, "rock", "pop"), mk("b", 1, "rock")}
	g, err := constellation.Build(in)
	require.NoError(t, err)

	in[0].Genres[0] = "jazz"
	in[1].Genres[0] = "metal"

	a, ok := g.Node("a")
	require.True(t, ok)
	assert.Equal(t, []string{"rock", "pop"}, a.Genres)
	b, _ := g.Node("b")
	assert.Equal(t, []string{"rock"}, b.Genres)
	assert.Equal(t, []string{"rock"}, g.Edges[0].SharedAttributes)
}

func TestBuild_GenreTagsFoldWhitespace(t *testing.T) {
	g, err := constellation.Build([]artist.Artist{
		mk("a", 0, "indie  rock"),
		mk("b", 1, " Indie Rock"),
	})
	require.NoError(t, err)
	require.Len(t, g.Edges, 1)
	assert.Equal(t, []string{"indie  rock"}, g.Edges[0].SharedAttributes)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { constellation.WithMaxDegree(0) })
	assert.Panics(t, func() { constellation.WithSimilarity(nil) })
	assert.Panics(t, func() { constellation.WithSizeRange(5, 1) })
	assert.Panics(t, func() { constellation.WithSizeRange(-1, 1) })
}

func randomArtists(r *rand.Rand, n, pool int) []artist.Artist {
	out := make([]artist.Artist, n)
	for i := range out {
		k := 1 + r.Intn(3)
		genres := make([]string, k)
		for j := range genres {
			genres[j] = fmt.Sprintf("genre-%d", r.Intn(pool))
		}
		out[i] = mk(fmt.Sprintf("id%03d", i), i, genres...)
	}
	return out
}

// rawComponents counts connected components of the unrestricted similarity
// relation over the artists that have at least one related partner.
func rawComponents(artists []artist.Artist) int {
	f := dsu.New(len(artists))
	related := make([]bool, len(artists))
	for i := range artists {
		for j := i + 1; j < len(artists); j++ {
			if artist.SharedGenres(artists[i], artists[j]) > 0 {
				f.Union(i, j)
				related[i], related[j] = true, true
			}
		}
	}
	roots := make(map[int]struct{})
	for i := range artists {
		if related[i] {
			roots[f.Find(i)] = struct{}{}
		}
	}
	return len(roots)
}

func TestBuild_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 40; trial++ {
		artists := randomArtists(r, 10+r.Intn(60), 4+r.Intn(20))
		for _, d := range []int{1, 2, 3, 5} {
			g, err := constellation.Build(artists, constellation.WithMaxDegree(d))
			require.NoError(t, err)

			deg := make(map[string]int)
			for _, e := range g.Edges {
				require.Positive(t, e.Weight)
				require.NotEqual(t, e.Source, e.Target)
				require.Positive(t, artist.SharedGenres(
					artists[indexOf(artists, e.Source)], artists[indexOf(artists, e.Target)]),
					"edge must come from a candidate")
				deg[e.Source]++
				deg[e.Target]++
			}
			for _, n := range g.Nodes {
				require.GreaterOrEqual(t, deg[n.ID], 1, "trial %d D=%d node %s", trial, d, n.ID)
				require.LessOrEqual(t, deg[n.ID], d, "trial %d D=%d node %s", trial, d, n.ID)
				require.Equal(t, deg[n.ID], g.Degree(n.ID))
			}
			require.Equal(t, len(artists), g.Len()+len(g.Dropped))
		}

		// Without a binding cap the build mirrors the raw relation's components.
		g, err := constellation.Build(artists, constellation.WithMaxDegree(len(artists)))
		require.NoError(t, err)
		assert.Equal(t, rawComponents(artists), len(g.Components()), "trial %d", trial)
	}
}

func TestBuild_Idempotent(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	artists := randomArtists(r, 80, 12)

	g1, err := constellation.Build(artists)
	require.NoError(t, err)
	g2, err := constellation.Build(artists)
	require.NoError(t, err)

	assert.Equal(t, ids(g1), ids(g2))
	assert.Equal(t, edgeKeys(g1), edgeKeys(g2))
}

func edgeKeys(g *constellation.Graph) []string {
	out := make([]string, len(g.Edges))
	for i, e := range g.Edges {
		k := e.Key()
		out[i] = k.A + "|" + k.B
	}
	sort.Strings(out)
	return out
}

func indexOf(artists []artist.Artist, id string) int {
	for i, a := range artists {
		if a.ID == id {
			return i
		}
	}
	return -1
}
