package challenge

import "math/rand"

// sampler draws start nodes without replacement, optionally weighted by size.
type sampler struct {
	ids      []string
	weights  []float64
	weighted bool
}

func newSampler(pool []Candidate, preferPopular bool) *sampler {
	s := &sampler{
		ids:     make([]string, len(pool)),
		weights: make([]float64, len(pool)),
	}
	total := 0.0
	for i, c := range pool {
		s.ids[i] = c.ID
		if c.Size > 0 {
			s.weights[i] = c.Size
			total += c.Size
		}
	}
	// All-zero sizes fall back to uniform sampling.
	s.weighted = preferPopular && total > 0
	return s
}

// draw removes and returns one id; false once the pool is exhausted.
func (s *sampler) draw(r *rand.Rand) (string, bool) {
	if len(s.ids) == 0 {
		return "", false
	}
	k := r.Intn(len(s.ids))
	if s.weighted {
		k = s.weightedIndex(r)
	}
	id := s.ids[k]
	last := len(s.ids) - 1
	s.ids[k], s.weights[k] = s.ids[last], s.weights[last]
	s.ids, s.weights = s.ids[:last], s.weights[:last]
	return id, true
}

func (s *sampler) weightedIndex(r *rand.Rand) int {
	total := 0.0
	for _, w := range s.weights {
		total += w
	}
	if total <= 0 {
		return r.Intn(len(s.ids))
	}
	x := r.Float64() * total
	for i, w := range s.weights {
		if x < w {
			return i
		}
		x -= w
	}
	return len(s.weights) - 1
}
