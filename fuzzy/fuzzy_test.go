package fuzzy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/constellation/fuzzy"
)

var catalog = []fuzzy.Item{
	{ID: "1", Name: "The Beatles", Rank: 0},
	{ID: "2", Name: "Beach House", Rank: 1},
	{ID: "3", Name: "Beyoncé", Rank: 2},
	{ID: "4", Name: "Beat Happening", Rank: 3},
	{ID: "5", Name: "Sigur Rós", Rank: 4},
	{ID: "6", Name: "AC/DC", Rank: 5},
	{ID: "7", Name: "Be", Rank: 6},
}

func names(ms []fuzzy.Match) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Item.Name
	}
	return out
}

func TestNormalize(t *testing.T) {
	cases := map[string]string{
		"Beyoncé":           "beyonce",
		"BEYONCÉ!":          "beyonce",
		"Sigur Rós":         "sigurros",
		"AC/DC":             "acdc",
		"  The  xx  ":       "thexx",
		"Motörhead":         "motorhead",
		"blink-182":         "blink182",
		"":                  "",
		"!!!":               "",
		"Mötley Crüe":       "motleycrue",
		"Björk":             "bjork",
		"Sébastien Tellier": "sebastientellier",
	}
	for in, want := range cases {
		assert.Equal(t, want, fuzzy.Normalize(in), "Normalize(%q)", in)
	}
}

func TestSearch_WordPrefixFindsBeatles(t *testing.T) {
	got := fuzzy.Search("Beatl", catalog, 3)
	require.NotEmpty(t, got)
	assert.Contains(t, names(got), "The Beatles")
	assert.LessOrEqual(t, len(got), 3)
}

func TestSearch_TierOrdering(t *testing.T) {
	got := fuzzy.Search("be", catalog, 10)
	require.NotEmpty(t, got)
	assert.Equal(t, "Be", got[0].Item.Name)
	assert.Equal(t, fuzzy.TierExact, got[0].Tier)

	// Prefix matches come before word-prefix matches.
	var sawWordPrefix bool
	for _, m := range got[1:] {
		if m.Tier == fuzzy.TierWordPrefix {
			sawWordPrefix = true
		}
		if sawWordPrefix {
			assert.NotEqual(t, fuzzy.TierPrefix, m.Tier)
		}
	}
	assert.Contains(t, names(got), "The Beatles")
}

func TestSearch_DiacriticsAndPunctuation(t *testing.T) {
	got := fuzzy.Search("beyonce", catalog, 5)
	require.NotEmpty(t, got)
	assert.Equal(t, "Beyoncé", got[0].Item.Name)

	got = fuzzy.Search("acdc", catalog, 5)
	require.NotEmpty(t, got)
	assert.Equal(t, "AC/DC", got[0].Item.Name)

	got = fuzzy.Search("ros", catalog, 5)
	require.NotEmpty(t, got)
	assert.Equal(t, "Sigur Rós", got[0].Item.Name)
}

func TestSearch_Typo(t *testing.T) {
	got := fuzzy.Search("beyonse", catalog, 5)
	require.NotEmpty(t, got)
	assert.Equal(t, "Beyoncé", got[0].Item.Name)
	assert.Equal(t, fuzzy.TierTypo, got[0].Tier)
	assert.Equal(t, 1, got[0].Distance)
}

func TestSearch_LimitsAndMinLength(t *testing.T) {
	assert.Nil(t, fuzzy.Search("be", catalog, 0))
	assert.Nil(t, fuzzy.Search("", catalog, 5))
	assert.Nil(t, fuzzy.Search("?!", catalog, 5))
	assert.Nil(t, fuzzy.Search("b", catalog, 5, fuzzy.WithMinQueryLength(2)))
	assert.Len(t, fuzzy.Search("b", catalog, 2), 2)
	assert.Empty(t, fuzzy.Search("zzzzzzzz", catalog, 5))
}

func TestSearch_Deterministic(t *testing.T) {
	first := fuzzy.Search("bea", catalog, 10)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, fuzzy.Search("bea", catalog, 10))
	}
}

func TestResolveExact(t *testing.T) {
	it, ok := fuzzy.ResolveExact("3", catalog)
	require.True(t, ok)
	assert.Equal(t, "Beyoncé", it.Name)

	it, ok = fuzzy.ResolveExact("the beatles", catalog)
	require.True(t, ok)
	assert.Equal(t, "1", it.ID)

	it, ok = fuzzy.ResolveExact("SIGUR ROS", catalog)
	require.True(t, ok)
	assert.Equal(t, "5", it.ID)

	_, ok = fuzzy.ResolveExact("Beatl", catalog)
	assert.False(t, ok, "partial names do not resolve")
	_, ok = fuzzy.ResolveExact("", catalog)
	assert.False(t, ok)

	dupes := []fuzzy.Item{{ID: "x", Name: "Nirvana", Rank: 9}, {ID: "y", Name: "nirvana", Rank: 2}}
	it, ok = fuzzy.ResolveExact("Nirvana", dupes)
	require.True(t, ok)
	assert.Equal(t, "y", it.ID)
}
