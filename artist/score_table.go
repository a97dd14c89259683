package artist

// ScoreTable holds service-reported similarity scores keyed by unordered
// artist-id pair. It is the non-genre basis a data provider can supply.
type ScoreTable struct {
	scores map[pairKey]float64
}

type pairKey struct{ lo, hi string }

func makePairKey(a, b string) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// NewScoreTable returns an empty table.
func NewScoreTable() *ScoreTable {
	return &ScoreTable{scores: make(map[pairKey]float64)}
}

// Set records the score for the unordered pair (a, b). Later calls overwrite.
func (t *ScoreTable) Set(a, b string, score float64) {
	if a == b {
		return
	}
	t.scores[makePairKey(a, b)] = score
}

// Score returns the score for (a, b), or 0 when unknown.
func (t *ScoreTable) Score(a, b string) float64 {
	return t.scores[makePairKey(a, b)]
}

// Len reports how many pairs carry a score.
func (t *ScoreTable) Len() int { return len(t.scores) }

// Similarity adapts the table to a SimilarityFunc.
func (t *ScoreTable) Similarity() SimilarityFunc {
	return func(a, b Artist) float64 { return t.Score(a.ID, b.ID) }
}

// Blend returns a SimilarityFunc that prefers the table's score and falls back
// to SharedGenres when the provider reported nothing for the pair.
func (t *ScoreTable) Blend() SimilarityFunc {
	return func(a, b Artist) float64 {
		if s := t.Score(a.ID, b.ID); s > 0 {
			return s
		}
		return SharedGenres(a, b)
	}
}
