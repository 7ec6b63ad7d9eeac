package app_test

import (
	"testing"

	"github.com/sree-1908/migo-travelai/internal/app"
	"github.com/sree-1908/migo-travelai/internal/domain"
)

func TestParse_FullTripQuery(t *testing.T) {
	p := app.Parse("Plan a 1 day peaceful trip to Bangalore under 1500")

	if p.PlaceName != "Bangalore" {
		t.Fatalf("place = %q, want Bangalore", p.PlaceName)
	}
	if p.Budget == nil || *p.Budget != 1500 {
		t.Fatalf("budget = %v, want 1500", p.Budget)
	}
	if !p.WantsPlaces || !p.WantsItinerary {
		t.Fatalf("wantsPlaces=%v wantsItinerary=%v, want both true", p.WantsPlaces, p.WantsItinerary)
	}
	if p.WantsWeather {
		t.Fatalf("wantsWeather should be false")
	}
	if p.TravelStyle != domain.StyleRelaxed {
		t.Fatalf("style = %q, want relaxed", p.TravelStyle)
	}
	if p.When != domain.Today {
		t.Fatalf("when = %q, want today", p.When)
	}
}

func TestParse_WeatherOnly(t *testing.T) {
	p := app.Parse("weather in Mysore")

	if p.PlaceName != "Mysore" {
		t.Fatalf("place = %q, want Mysore", p.PlaceName)
	}
	if !p.WantsWeather || p.WantsPlaces || p.WantsItinerary {
		t.Fatalf("intents = %v/%v/%v, want weather only", p.WantsWeather, p.WantsPlaces, p.WantsItinerary)
	}
	if p.Budget != nil {
		t.Fatalf("budget = %v, want nil", *p.Budget)
	}
}

func TestParse_Budget(t *testing.T) {
	cases := []struct {
		query string
		want  int // -1 means no budget
	}{
		{"trip to Goa under 1500", 1500},
		{"within 1,000 please", 1000},
		{"budget 800 for the day", 800},
		{"less than 2000", 2000},
		{"up to 650", 650},
		{"visit 1500 Street", -1},        // bare number, no budget phrase
		{"room 500 at the station", -1},  // ditto
		{"thunderstorms around here", -1},
	}
	for _, c := range cases {
		p := app.Parse(c.query)
		if c.want == -1 {
			if p.Budget != nil {
				t.Errorf("%q: budget = %d, want nil", c.query, *p.Budget)
			}
			continue
		}
		if p.Budget == nil || *p.Budget != c.want {
			t.Errorf("%q: budget = %v, want %d", c.query, p.Budget, c.want)
		}
	}
}

func TestParse_PlacePatternFamilies(t *testing.T) {
	cases := []struct {
		query, want string
	}{
		{"going to Kolkata tomorrow", "Kolkata"},
		{"somewhere near Hyderabad", "Hyderabad"},
		{"around Mysore this weekend", "Mysore"},
		{"a day at Hampi, please", "Hampi"},
		{"what should I do", ""},   // no family matches
		{"go to tomorrow", ""},     // cleaning empties every family
	}
	for _, c := range cases {
		if p := app.Parse(c.query); p.PlaceName != c.want {
			t.Errorf("%q: place = %q, want %q", c.query, p.PlaceName, c.want)
		}
	}
}

func TestParse_DefaultIntents(t *testing.T) {
	// No intent keyword at all: assume places + itinerary.
	p := app.Parse("going to Chennai")
	if !p.WantsPlaces || !p.WantsItinerary || p.WantsWeather {
		t.Fatalf("defaults = %v/%v/%v, want places+itinerary", p.WantsWeather, p.WantsPlaces, p.WantsItinerary)
	}
}

func TestParse_ItineraryImpliesPlaces(t *testing.T) {
	p := app.Parse("itinerary for Jaipur")
	if !p.WantsItinerary {
		t.Fatalf("wantsItinerary should be true")
	}
	if !p.WantsPlaces {
		t.Fatalf("wantsItinerary without wantsPlaces violates the invariant")
	}
}

func TestParse_StylePriority(t *testing.T) {
	cases := []struct {
		query string
		want  domain.TravelStyle
	}{
		{"a peaceful trek in Manali", domain.StyleRelaxed}, // relaxed wins over adventurous
		{"trek near Rishikesh", domain.StyleAdventurous},
		{"green spaces in Bangalore", domain.StyleNature},
		{"museum day in Delhi", domain.StyleCultural},
		{"trip to Pune", ""},
	}
	for _, c := range cases {
		if p := app.Parse(c.query); p.TravelStyle != c.want {
			t.Errorf("%q: style = %q, want %q", c.query, p.TravelStyle, c.want)
		}
	}
}

func TestParse_TimeReference(t *testing.T) {
	if p := app.Parse("weather in Pune tmrw"); p.When != domain.Tomorrow {
		t.Fatalf("when = %q, want tomorrow", p.When)
	}
	if p := app.Parse("weather in Pune"); p.When != domain.Today {
		t.Fatalf("when = %q, want today", p.When)
	}
}

func TestParse_Deterministic(t *testing.T) {
	const q = "Plan a 1 day peaceful trip to Bangalore under 1500 and tell me the weather"
	a, b := app.Parse(q), app.Parse(q)
	if a.PlaceName != b.PlaceName || a.WantsWeather != b.WantsWeather ||
		a.WantsPlaces != b.WantsPlaces || a.WantsItinerary != b.WantsItinerary ||
		a.TravelStyle != b.TravelStyle || a.When != b.When ||
		(a.Budget == nil) != (b.Budget == nil) {
		t.Fatalf("parse is not deterministic: %+v vs %+v", a, b)
	}
	if !a.WantsWeather {
		t.Fatalf("combined query should also want weather")
	}
}
