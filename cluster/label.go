package cluster

import (
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/katalvlaran/constellation/artist"
)

// Fold is the comparison key for a genre tag, the same one edge similarity
// uses.
func Fold(genre string) string {
	return artist.FoldGenre(genre)
}

// DisplayName formats a tag for a legend: "indie  rock" -> "Indie Rock".
func DisplayName(genre string) string {
	// A Caser keeps state, so each call gets its own.
	return cases.Title(language.English).String(Fold(genre))
}

type tally struct {
	key     string
	first   int
	members []string
}

// Label computes the clusters for members.
func Label(members []Member, opts ...Option) []Cluster {
	o := resolve(opts)

	byKey := make(map[string]*tally)
	order := 0
	for _, m := range members {
		seen := make(map[string]struct{}, len(m.Genres))
		for _, g := range m.Genres {
			key := Fold(g)
			if key == "" {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			t, ok := byKey[key]
			if !ok {
				t = &tally{key: key, first: order}
				order++
				byKey[key] = t
			}
			t.members = append(t.members, m.ID)
		}
	}

	kept := make([]*tally, 0, len(byKey))
	for _, t := range byKey {
		if len(t.members) >= o.minMembers {
			kept = append(kept, t)
		}
	}
	sort.Slice(kept, func(i, j int) bool {
		if len(kept[i].members) != len(kept[j].members) {
			return len(kept[i].members) > len(kept[j].members)
		}
		return kept[i].first < kept[j].first
	})
	if len(kept) > o.maxClusters {
		kept = kept[:o.maxClusters]
	}

	clusters := make([]Cluster, len(kept))
	for i, t := range kept {
		clusters[i] = Cluster{
			ID:         t.key,
			Name:       DisplayName(t.key),
			MemberIDs:  t.members,
			ColorIndex: i,
			Color:      o.palette[i%len(o.palette)],
		}
	}
	return clusters
}

// Assign resolves each member's colour against clusters. The result is
// aligned with members.
func Assign(members []Member, clusters []Cluster, opts ...Option) []Assignment {
	o := resolve(opts)

	byID := make(map[string]*Cluster, len(clusters))
	for i := range clusters {
		byID[clusters[i].ID] = &clusters[i]
	}

	out := make([]Assignment, len(members))
	for i, m := range members {
		out[i].Color = o.defaultColor
		if len(m.Genres) > 0 {
			out[i].PrimaryGenre = DisplayName(m.Genres[0])
		}
		for _, g := range m.Genres {
			if c, ok := byID[Fold(g)]; ok {
				out[i] = Assignment{Color: c.Color, PrimaryGenre: c.Name}
				break
			}
		}
	}
	return out
}
