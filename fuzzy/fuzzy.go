// Package fuzzy maps free-text artist guesses to graph nodes.
//
// Normalize folds case, strips diacritics and drops every non-alphanumeric
// rune, so "Beyoncé", "beyonce" and "BEYONCÉ!" compare equal.
//
// Search ranks candidates in tiers, best first:
//
//	0 exact        normalized name equals the query
//	1 prefix       name starts with the query
//	2 word prefix  some word of the name starts with the query
//	3 substring    name contains the query
//	4 subsequence  query runes appear in order inside the name
//	5 typo         edit distance to the name or one of its words is small
//
// Within a tier: closer length (or smaller edit distance) wins, then lower
// rank, then name, then id. Output is deterministic for a fixed item set.
package fuzzy

import (
	"sort"
	"strings"
	"unicode"

	lfuzzy "github.com/lithammer/fuzzysearch/fuzzy"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Tier is a match quality class; lower is better.
type Tier int

// Match tiers.
const (
	TierExact Tier = iota
	TierPrefix
	TierWordPrefix
	TierSubstring
	TierSubsequence
	TierTypo
)

// DefaultMinQueryLength is the shortest normalized query Search answers.
const DefaultMinQueryLength = 1

// Item is a searchable node.
type Item struct {
	ID   string
	Name string
	Rank int
}

// Match is a ranked search hit.
type Match struct {
	Item     Item
	Tier     Tier
	Distance int
}

// Option configures Search.
type Option func(*options)

type options struct {
	minQueryLength int
}

// WithMinQueryLength makes Search return nil for normalized queries shorter
// than n runes.
func WithMinQueryLength(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.minQueryLength = n
		}
	}
}

// Normalize folds s for comparison.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range strings.ToLower(stripped) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// words splits s on whitespace and punctuation and normalizes each piece.
func words(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '-' || r == '/' || r == '&' || r == ','
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if n := Normalize(f); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Search returns at most limit items matching query, best first.
func Search(query string, items []Item, limit int, opts ...Option) []Match {
	o := options{minQueryLength: DefaultMinQueryLength}
	for _, opt := range opts {
		opt(&o)
	}
	nq := Normalize(query)
	qlen := len([]rune(nq))
	if limit <= 0 || qlen == 0 || qlen < o.minQueryLength {
		return nil
	}

	var hits []Match
	for _, it := range items {
		if m, ok := score(nq, qlen, it); ok {
			hits = append(hits, m)
		}
	}
	sort.Slice(hits, func(i, j int) bool {
		a, b := hits[i], hits[j]
		if a.Tier != b.Tier {
			return a.Tier < b.Tier
		}
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		if a.Item.Rank != b.Item.Rank {
			return a.Item.Rank < b.Item.Rank
		}
		if a.Item.Name != b.Item.Name {
			return a.Item.Name < b.Item.Name
		}
		return a.Item.ID < b.Item.ID
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}

func score(nq string, qlen int, it Item) (Match, bool) {
	nn := Normalize(it.Name)
	if nn == "" {
		return Match{}, false
	}
	slack := len([]rune(nn)) - qlen
	if slack < 0 {
		slack = 0
	}
	m := Match{Item: it, Distance: slack}

	switch {
	case nn == nq:
		m.Tier = TierExact
		return m, true
	case strings.HasPrefix(nn, nq):
		m.Tier = TierPrefix
		return m, true
	}
	ws := words(it.Name)
	for _, w := range ws {
		if strings.HasPrefix(w, nq) {
			m.Tier = TierWordPrefix
			return m, true
		}
	}
	switch {
	case strings.Contains(nn, nq):
		m.Tier = TierSubstring
		return m, true
	case lfuzzy.Match(nq, nn):
		m.Tier = TierSubsequence
		return m, true
	}

	best := lfuzzy.LevenshteinDistance(nq, nn)
	for _, w := range ws {
		if d := lfuzzy.LevenshteinDistance(nq, w); d < best {
			best = d
		}
	}
	if best <= typoBudget(qlen) {
		m.Tier = TierTypo
		m.Distance = best
		return m, true
	}
	return Match{}, false
}

// typoBudget allows one edit per three query runes, at least one.
func typoBudget(qlen int) int {
	if b := qlen / 3; b > 1 {
		return b
	}
	return 1
}

// ResolveExact maps a submitted guess to an item: an exact id match first,
// then a normalized name match. Among equal names the lowest rank wins.
func ResolveExact(nameOrID string, items []Item) (Item, bool) {
	for _, it := range items {
		if it.ID == nameOrID {
			return it, true
		}
	}
	nq := Normalize(nameOrID)
	if nq == "" {
		return Item{}, false
	}
	var (
		best  Item
		found bool
	)
	for _, it := range items {
		if Normalize(it.Name) != nq {
			continue
		}
		if !found || it.Rank < best.Rank {
			best, found = it, true
		}
	}
	return best, found
}
