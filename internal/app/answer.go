package app

import (
	"fmt"
	"strings"

	"github.com/sree-1908/migo-travelai/internal/domain"
)

// Answer rendering. The only wire contract here is **bold** markup and
// newline-delimited lines; the presentation layer does the rest.

const greeting = "👋 Hi, I'm Migo, your travel companion."

func renderPlaceNotFound(place string) string {
	lines := []string{
		greeting,
		"",
		fmt.Sprintf("I tried to look up “%s”, but I couldn't find it or the location service blocked me.", place),
		"Can you try another nearby city or rephrase the place name?",
	}
	return strings.Join(lines, "\n")
}

// preferenceLine summarizes what we understood, so the user can correct us.
func preferenceLine(p domain.StructuredRequest) string {
	var parts []string
	if p.PlaceName != "" {
		parts = append(parts, fmt.Sprintf("a day in **%s**", p.PlaceName))
	}
	if p.Budget != nil {
		parts = append(parts, fmt.Sprintf("around **₹%d**", *p.Budget))
	}
	switch p.TravelStyle {
	case domain.StyleRelaxed:
		parts = append(parts, "with a calm, relaxed vibe")
	case domain.StyleAdventurous:
		parts = append(parts, "with something a bit adventurous")
	}
	if !p.WantsWeather && p.WantsPlaces && !p.WantsItinerary {
		parts = append(parts, "mainly to explore places to visit")
	} else if p.WantsItinerary {
		parts = append(parts, "with a clear 1-day plan")
	}
	if len(parts) == 0 {
		return ""
	}
	text := parts[0]
	if len(parts) > 1 {
		text += " " + strings.Join(parts[1:], ", ")
	}
	return fmt.Sprintf("Got it — you're looking for %s. Let me plan around that.", text)
}

func weatherLine(city string, w *domain.WeatherOutcome) string {
	if w == nil || !w.OK {
		return fmt.Sprintf("I tried to fetch the weather for **%s**, but the weather service failed.", city)
	}
	rain := ""
	if w.RainChance != nil {
		rain = fmt.Sprintf(" with about %d%% chance of rain", *w.RainChance)
	}
	return fmt.Sprintf("In **%s** it's currently around **%.1f°C**, %s%s.", city, w.TemperatureC, w.Description, rain)
}

func renderAnswer(p domain.StructuredRequest, city string, resp domain.Response) string {
	lines := []string{greeting, ""}
	if pl := preferenceLine(p); pl != "" {
		lines = append(lines, pl, "")
	}

	// The three templates are mutually exclusive: weather-only, places-only,
	// and the combined form that covers everything else.
	switch {
	case p.WantsWeather && !p.WantsPlaces && !p.WantsItinerary:
		lines = append(lines, weatherLine(city, resp.Weather))

	case p.WantsPlaces && !p.WantsWeather && !p.WantsItinerary:
		switch {
		case resp.Places != nil && resp.Places.OK && len(resp.Places.Places) > 0:
			lines = append(lines, fmt.Sprintf("Here are some places you can visit in and around **%s**:", city), "")
			for i, c := range resp.Places.Places {
				lines = append(lines, fmt.Sprintf("   %d. **%s**", i+1, c.Name))
			}
		case resp.Places != nil && resp.Places.OK:
			lines = append(lines, fmt.Sprintf("I couldn't find clear tourist spots near **%s**, but I can still help you plan a day there.", city))
		default:
			lines = append(lines, fmt.Sprintf("I tried to look up attractions around **%s**, but there was an issue contacting the places service.", city))
		}

	default:
		if p.WantsWeather {
			lines = append(lines, weatherLine(city, resp.Weather), "")
		}
		if p.WantsPlaces {
			switch {
			case resp.Places != nil && resp.Places.OK && len(resp.Places.Places) > 0:
				lines = append(lines, "Here are some places you can go:", "")
				for i, c := range resp.Places.Places {
					lines = append(lines, fmt.Sprintf("   %d. **%s**", i+1, c.Name))
				}
				lines = append(lines, "")
			case resp.Places != nil && resp.Places.OK:
				lines = append(lines, fmt.Sprintf("I couldn't find specific attractions near **%s**, but I can still suggest a general plan.", city), "")
			default:
				lines = append(lines, fmt.Sprintf("I tried to fetch nearby attractions around **%s**, but the places service failed.", city), "")
			}
		}
		if p.WantsItinerary {
			lines = append(lines, itineraryLines(city, resp.Itinerary)...)
		}
	}

	// Nothing beyond the greeting: ask for more to go on.
	if len(lines) <= 2 {
		lines = append(lines, "Tell me where you're going and what matters to you (budget, peaceful, must-see spots), and I'll plan around that. 🙂")
	}
	return strings.Join(lines, "\n")
}

func itineraryLines(city string, it *domain.ItineraryOutcome) []string {
	if it == nil || !it.OK {
		return []string{"I tried to build a day plan, but there wasn't enough attraction data to create a full itinerary.", ""}
	}

	s := it.Slots
	if s.Morning == nil && s.Afternoon == nil && s.Evening == nil {
		return []string{"I couldn't build a detailed hour-by-hour plan, but those places are a good starting point for a 1-day trip.", ""}
	}

	var lines []string
	if it.Budget > 0 {
		lines = append(lines, fmt.Sprintf("Here's a simple 1-day **budget-friendly** plan for **%s**:", city))
	} else {
		lines = append(lines, fmt.Sprintf("Here's a simple 1-day plan for **%s**:", city))
	}
	if s.Morning != nil {
		lines = append(lines, fmt.Sprintf("   🌅 Morning: **%s** (approx ₹%d)", s.Morning.Name, s.Morning.EstimatedCost))
	}
	if s.Afternoon != nil {
		lines = append(lines, fmt.Sprintf("   🌤 Afternoon: **%s** (approx ₹%d)", s.Afternoon.Name, s.Afternoon.EstimatedCost))
	}
	if s.Evening != nil {
		lines = append(lines, fmt.Sprintf("   🌆 Evening: **%s** (approx ₹%d)", s.Evening.Name, s.Evening.EstimatedCost))
	}
	if it.Budget > 0 {
		lines = append(lines, fmt.Sprintf("   💰 Estimated attraction spend: ~₹%d", it.EstimatedAttractionCost))
		left := it.RemainingBudget
		if left < 0 {
			left = 0 // display only; the stored value stays signed
		}
		lines = append(lines, fmt.Sprintf("   💸 Your budget: ₹%d · Left for food & travel: ~₹%d", it.Budget, left))
	}
	lines = append(lines, "")
	return lines
}
