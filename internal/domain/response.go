package domain

// Per-step outcome wrappers. A nil outcome on Response means the step never
// ran; OK=false means it ran and failed, with the reason in Error.

type GeoOutcome struct {
	OK          bool    `json:"ok"`
	PlaceInput  string  `json:"placeNameInput,omitempty"`
	Lat         float64 `json:"lat,omitempty"`
	Lon         float64 `json:"lon,omitempty"`
	DisplayName string  `json:"displayName,omitempty"`
	NotFound    bool    `json:"notFound,omitempty"`
	Error       string  `json:"error,omitempty"`
}

type WeatherOutcome struct {
	OK           bool    `json:"ok"`
	TemperatureC float64 `json:"temperatureC,omitempty"`
	Description  string  `json:"description,omitempty"`
	RainChance   *int    `json:"rainChance,omitempty"`
	Error        string  `json:"error,omitempty"`
}

type PlacesOutcome struct {
	OK       bool        `json:"ok"`
	Places   []Candidate `json:"places,omitempty"`
	RawCount int         `json:"rawCount"`
	Error    string      `json:"error,omitempty"`
}

type ItineraryOutcome struct {
	OK bool `json:"ok"`
	Itinerary
	Error string `json:"error,omitempty"`
}

// Response is the full answer for one query: the rendered natural-language
// text plus every intermediate result, so callers can see what ran.
type Response struct {
	Answer    string            `json:"answer"`
	Parsed    StructuredRequest `json:"parsed"`
	Geocode   *GeoOutcome       `json:"geocode"`
	Weather   *WeatherOutcome   `json:"weather"`
	Places    *PlacesOutcome    `json:"places"`
	Itinerary *ItineraryOutcome `json:"itinerary"`
}
