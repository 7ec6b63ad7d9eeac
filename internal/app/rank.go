package app

import (
	"sort"
	"strings"

	"github.com/sree-1908/migo-travelai/internal/domain"
)

const maxCandidates = 5

// scoreRules is an additive predicate->weight table. Weights stack across
// independent tag families (a historic museum scores 6).
var scoreRules = []struct {
	weight int
	match  func(domain.Feature) bool
}{
	{3, func(f domain.Feature) bool { return f.Historic != "" }},
	{3, func(f domain.Feature) bool {
		switch f.Tourism {
		case "attraction", "museum", "gallery", "zoo", "theme_park", "viewpoint":
			return true
		}
		return false
	}},
	{2, func(f domain.Feature) bool { return f.Leisure == "park" || f.Leisure == "garden" }},
	{1, func(f domain.Feature) bool { return f.Tourism == "hotel" }},
}

// Unnamed-tourism worship sites with these generic words are noise; named
// landmarks keep their tourism tag and survive.
var worshipNoise = []string{"masjid", "mosque", "darga", "church"}

// Rank filters, scores and orders raw features, returning the top candidates
// (score stripped) and the count of features that survived filtering.
// Empty in, empty out; "no matches" is not an error.
func Rank(features []domain.Feature) ([]domain.Candidate, int) {
	type scored struct {
		f domain.Feature
		s int
	}
	kept := make([]scored, 0, len(features))
	for _, f := range features {
		if f.Name == "" {
			continue
		}
		if f.Amenity == "place_of_worship" && f.Tourism == "" && containsAny(strings.ToLower(f.Name), worshipNoise) {
			continue
		}
		s := 0
		for _, r := range scoreRules {
			if r.match(f) {
				s += r.weight
			}
		}
		kept = append(kept, scored{f: f, s: s})
	}
	if len(kept) == 0 {
		return nil, 0
	}

	// Stable: equal scores keep provider order.
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].s > kept[j].s })

	n := len(kept)
	if n > maxCandidates {
		n = maxCandidates
	}
	out := make([]domain.Candidate, 0, n)
	for _, sc := range kept[:n] {
		out = append(out, domain.Candidate{
			ID:       sc.f.ID,
			Name:     sc.f.Name,
			Tourism:  sc.f.Tourism,
			Leisure:  sc.f.Leisure,
			Amenity:  sc.f.Amenity,
			Historic: sc.f.Historic,
			Lat:      sc.f.Lat,
			Lon:      sc.f.Lon,
		})
	}
	return out, len(kept)
}
