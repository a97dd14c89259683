package artist

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for artist input validation.
var (
	// ErrEmptyID indicates an artist record without an ID.
	ErrEmptyID = errors.New("artist: empty id")

	// ErrDuplicateID indicates two records share the same ID.
	ErrDuplicateID = errors.New("artist: duplicate id")
)

// Artist is one entry of a listener's ranked favourites.
type Artist struct {
	// ID is stable and unique within one provider.
	ID string `yaml:"id" json:"id"`

	// Name is the display name.
	Name string `yaml:"name" json:"name"`

	// Genres is ordered for display; matching ignores order and case.
	Genres []string `yaml:"genres" json:"genres"`

	// Rank is the zero-based position in the source ranking.
	Rank int `yaml:"rank" json:"rank"`

	// Popularity is optional provider metadata (0..100). Display only.
	Popularity int `yaml:"popularity,omitempty" json:"popularity,omitempty"`
}

// SimilarityFunc scores how related two artists are.
// Implementations must be symmetric; a score <= 0 means unrelated.
type SimilarityFunc func(a, b Artist) float64

// SharedGenres is the default SimilarityFunc: the number of genre tags the two
// artists have in common, compared case-insensitively.
func SharedGenres(a, b Artist) float64 {
	return float64(len(SharedGenreList(a, b)))
}

// SharedGenreList returns the genres of a that also appear on b, in a's order.
// Duplicate tags on a are reported once.
func SharedGenreList(a, b Artist) []string {
	if len(a.Genres) == 0 || len(b.Genres) == 0 {
		return nil
	}
	other := make(map[string]struct{}, len(b.Genres))
	for _, g := range b.Genres {
		other[FoldGenre(g)] = struct{}{}
	}

	var shared []string
	seen := make(map[string]struct{}, len(a.Genres))
	for _, g := range a.Genres {
		key := FoldGenre(g)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if _, ok := other[key]; ok {
			shared = append(shared, g)
		}
	}
	return shared
}

// FoldGenre is the canonical form of a genre tag: lower case, with runs of
// whitespace collapsed to one space and the ends trimmed. Tags with the same
// fold are the same genre.
func FoldGenre(g string) string {
	return strings.ToLower(strings.Join(strings.Fields(g), " "))
}

// Validate checks every record has a non-empty, unique ID.
func Validate(artists []Artist) error {
	seen := make(map[string]int, len(artists))
	for i, a := range artists {
		if a.ID == "" {
			return errors.Wrapf(ErrEmptyID, "record %d (%q)", i, a.Name)
		}
		if j, dup := seen[a.ID]; dup {
			return errors.Wrapf(ErrDuplicateID, "%q at records %d and %d", a.ID, j, i)
		}
		seen[a.ID] = i
	}
	return nil
}
