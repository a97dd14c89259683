package artist

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// fileArtist mirrors Artist but keeps Rank optional so a list can omit it.
type fileArtist struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	Genres     []string `yaml:"genres"`
	Rank       *int     `yaml:"rank"`
	Popularity int      `yaml:"popularity"`
}

type fileScore struct {
	A     string  `yaml:"a"`
	B     string  `yaml:"b"`
	Score float64 `yaml:"score"`
}

type fileDoc struct {
	Artists    []fileArtist `yaml:"artists"`
	Similarity []fileScore  `yaml:"similarity"`
}

// Set is a decoded artist list plus any provider similarity scores.
type Set struct {
	Artists []Artist
	// Scores is nil when the document carried no similarity section.
	Scores *ScoreTable
}

// Similarity returns the relation the document describes: provider scores
// blended with shared genres when present, SharedGenres otherwise.
func (s Set) Similarity() SimilarityFunc {
	if s.Scores == nil || s.Scores.Len() == 0 {
		return SharedGenres
	}
	return s.Scores.Blend()
}

// LoadFile reads an artist document from path. YAML and JSON are both accepted.
func LoadFile(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return Set{}, errors.Wrapf(err, "open artist file %s", path)
	}
	defer f.Close()

	set, err := Decode(f)
	if err != nil {
		return Set{}, errors.Wrapf(err, "decode artist file %s", path)
	}
	return set, nil
}

// Decode reads a document of the form
//
//	artists:
//	  - {id: a1, name: Radiohead, genres: [art rock, alternative]}
//	similarity:
//	  - {a: a1, b: a2, score: 0.8}
//
// Missing ranks default to list position.
func Decode(r io.Reader) (Set, error) {
	var doc fileDoc
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Set{}, nil
		}
		return Set{}, err
	}

	artists := make([]Artist, len(doc.Artists))
	for i, fa := range doc.Artists {
		rank := i
		if fa.Rank != nil {
			rank = *fa.Rank
		}
		artists[i] = Artist{
			ID:         fa.ID,
			Name:       fa.Name,
			Genres:     fa.Genres,
			Rank:       rank,
			Popularity: fa.Popularity,
		}
	}
	if err := Validate(artists); err != nil {
		return Set{}, err
	}

	set := Set{Artists: artists}
	if len(doc.Similarity) > 0 {
		set.Scores = NewScoreTable()
		for _, s := range doc.Similarity {
			set.Scores.Set(s.A, s.B, s.Score)
		}
	}
	return set, nil
}
