package app

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sree-1908/migo-travelai/internal/domain"
)

// Parse turns a raw travel query into a StructuredRequest. It never fails:
// a signal that isn't there comes back as the zero value, not an error.
func Parse(raw string) domain.StructuredRequest {
	clean := spaceRe.ReplaceAllString(strings.TrimSpace(raw), " ")
	lower := strings.ToLower(clean)

	req := domain.StructuredRequest{
		RawQuery:    strings.TrimSpace(raw),
		PlaceName:   parsePlaceName(clean),
		Budget:      parseBudget(clean),
		TravelStyle: detectStyle(lower),
		When:        detectWhen(lower),
	}
	req.WantsWeather, req.WantsPlaces, req.WantsItinerary = detectIntents(lower)

	// No intent at all: assume the user wants places plus a plan.
	if !req.WantsWeather && !req.WantsPlaces && !req.WantsItinerary {
		req.WantsPlaces = true
		req.WantsItinerary = true
	}
	// An itinerary cannot be built without candidates.
	if req.WantsItinerary {
		req.WantsPlaces = true
	}
	return req
}

var (
	spaceRe = regexp.MustCompile(`\s+`)

	// A bare number is never a budget; it must follow a budget phrase.
	budgetRe = regexp.MustCompile(`(?i)\b(?:under|within|below|less than|upto|up to|budget|around|about)\s+(\d[\d,]*)`)

	timeWordRe = regexp.MustCompile(`(?i)\b(?:today|tomorrow|tonight|next week|this weekend|next weekend)\b`)

	// Ordered pattern families; first one that yields a non-empty cleaned
	// candidate wins. The termination lookaheads differ subtly per family,
	// so these stay separate expressions.
	placeMatchers = []*regexp.Regexp{
		// "to Bangalore", "in Mysore", "for Goa", "at Hampi"
		regexp.MustCompile(`(?i)\b(?:to|in|for|at)\s+([A-Za-z\s]+?)(?:[,.!?]| under| within| with| on| tomorrow| today|$)`),
		// "near Hyderabad", "around Mysore"
		regexp.MustCompile(`(?i)\b(?:near|around)\s+([A-Za-z\s]+?)(?:[,.!?]| under| within| with| on| tomorrow| today|$)`),
		// "going to Kolkata", "go to Chennai tomorrow"
		regexp.MustCompile(`(?i)\bgo(?:ing)?\s+to\s+([A-Za-z\s]+?)(?:[,.!?]| under| within| with| on| tomorrow| today|$)`),
	}
)

func parseBudget(text string) *int {
	m := budgetRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return nil
	}
	return &n
}

func parsePlaceName(text string) string {
	for _, re := range placeMatchers {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if p := cleanPlace(m[1]); p != "" {
			return p
		}
		// Cleaning ate the whole candidate ("to tomorrow"); try the next
		// family rather than giving up.
	}
	return ""
}

// cleanPlace strips time words from a matched candidate and normalizes
// whitespace. May come back empty.
func cleanPlace(candidate string) string {
	s := timeWordRe.ReplaceAllString(candidate, "")
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}

var (
	weatherWords = []string{"weather", "temperature", "temp", "hot", "cold", "rain"}
	placesWords  = []string{"places to visit", "places i can visit", "tourist", "attractions", "see", "visit"}
	planWords    = []string{"itinerary", "plan my trip", "plan a trip", "1 day trip", "one day trip", "day plan", "trip plan"}
)

func containsAny(lower string, words []string) bool {
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// detectIntents runs the three keyword checks independently; any subset may
// fire at once.
func detectIntents(lower string) (weather, places, itinerary bool) {
	weather = containsAny(lower, weatherWords)
	places = containsAny(lower, placesWords)
	itinerary = containsAny(lower, planWords)
	if strings.Contains(lower, "plan") && strings.Contains(lower, "trip") {
		itinerary = true
	}
	return
}

// detectStyle checks the keyword groups in fixed priority order; the first
// group with a hit wins.
func detectStyle(lower string) domain.TravelStyle {
	groups := []struct {
		style domain.TravelStyle
		words []string
	}{
		{domain.StyleRelaxed, []string{"peaceful", "calm", "relax"}},
		{domain.StyleAdventurous, []string{"adventure", "trek", "thrill"}},
		{domain.StyleNature, []string{"nature", "green", "park"}},
		{domain.StyleCultural, []string{"history", "heritage", "museum"}},
	}
	for _, g := range groups {
		if containsAny(lower, g.words) {
			return g.style
		}
	}
	return ""
}

func detectWhen(lower string) domain.TimeRef {
	if strings.Contains(lower, "tomorrow") || strings.Contains(lower, "tmrw") {
		return domain.Tomorrow
	}
	return domain.Today
}
